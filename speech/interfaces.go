package speech

// Dictionary supplies candidate pronunciations for a lowercase word. Each
// candidate is a space-separated sequence of ARPABET codes, possibly carrying
// stress digits. An empty result signals the word has no entry.
type Dictionary interface {
	Lookup(word string) []string
}

// ClipPlayer plays a single audio clip and returns once playback finished.
type ClipPlayer interface {
	PlayFile(path string) error
}
