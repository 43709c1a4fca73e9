package speech

import (
	"fmt"
	"strings"
)

// Result holds the outcome of one conversion run. Tokens and Sounds are
// always the same length and index-aligned.
type Result struct {
	Tokens       []string
	Sounds       []string
	Unrecognized []string
}

// Converter ties the tokenizer and resolver together behind a single call,
// independent of any UI event model.
type Converter struct {
	resolver *Resolver
}

// NewConverter creates a converter backed by the given dictionary.
func NewConverter(dict Dictionary) *Converter {
	return &Converter{resolver: NewResolver(dict)}
}

// Convert runs the normalization and resolution stages on raw text. It is
// pure apart from dictionary lookups and retains no state between calls.
func (c *Converter) Convert(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	tokens := Tokenize(text)
	sounds, unrecognized := c.resolver.Resolve(tokens)
	return &Result{
		Tokens:       tokens,
		Sounds:       sounds,
		Unrecognized: unrecognized,
	}, nil
}

// Report renders the phoneme sequence one entry per line, followed by the
// unrecognized-word section whenever any lookups missed.
func (r *Result) Report() string {
	var b strings.Builder
	b.WriteString(strings.Join(r.Sounds, "\n"))
	if len(r.Unrecognized) > 0 {
		b.WriteString("\n\nUnrecognized Words and Generated Phonemes:\n")
		for _, word := range r.Unrecognized {
			fmt.Fprintf(&b, "%s: %s\n", word, FallbackPhonemes(word))
		}
	}
	return b.String()
}
