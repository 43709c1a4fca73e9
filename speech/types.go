package speech

import "time"

// PauseToken is the reserved marker for a timed silence. It appears in both
// the token sequence and the phoneme sequence and is never expanded into
// clips.
const PauseToken = "pause_here"

// UnknownPhoneme is substituted for characters the fallback table cannot map.
// It shows up in the output on purpose so coverage gaps stay visible.
const UnknownPhoneme = "UNKNOWN"

// DefaultWordGap is the silence inserted for each pause marker.
const DefaultWordGap = 500 * time.Millisecond
