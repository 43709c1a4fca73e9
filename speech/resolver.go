package speech

import "strings"

// Resolver maps tokens to phoneme strings through a pronunciation
// dictionary, generating fallback phonemes for words the dictionary does not
// know.
type Resolver struct {
	dict Dictionary
}

// NewResolver creates a resolver backed by the given dictionary.
func NewResolver(dict Dictionary) *Resolver {
	return &Resolver{dict: dict}
}

// Resolve returns one phoneme string per token, index-aligned with the input
// sequence, along with the words that required fallback generation in
// first-encountered order (duplicates kept). Pause tokens pass through
// unchanged. A dictionary miss never aborts the run.
func (r *Resolver) Resolve(tokens []string) (sounds, unrecognized []string) {
	sounds = make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == PauseToken {
			sounds = append(sounds, PauseToken)
			continue
		}

		candidates := r.dict.Lookup(token)
		if len(candidates) == 0 {
			unrecognized = append(unrecognized, token)
			sounds = append(sounds, FallbackPhonemes(token))
			continue
		}
		sounds = append(sounds, StripStress(candidates[0]))
	}
	return sounds, unrecognized
}

// StripStress removes stress digits from a dictionary pronunciation without
// altering symbol order or spacing. Stripping is idempotent.
func StripStress(pronunciation string) string {
	var b strings.Builder
	b.Grow(len(pronunciation))
	for i := 0; i < len(pronunciation); i++ {
		if c := pronunciation[i]; c < '0' || c > '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
