package speech

import (
	"regexp"
	"strings"
)

// pauseDelimiters are the punctuation marks that trigger a pause when they
// end a word.
const pauseDelimiters = ",!?:;."

// wordSeparators matches the characters a word boundary can sit on: spaces,
// newlines, tabs and literal double quotes.
var wordSeparators = regexp.MustCompile("[ \n\t\"]")

// Tokenize splits raw text into an ordered sequence of lowercase word tokens
// interspersed with pause markers.
//
// A word whose final character is a pause delimiter has that one character
// stripped and a pause token inserted right after it. Only a single trailing
// character is ever stripped, so a word like "wait..." keeps "wait.." as its
// token and falls through to the fallback generator later on.
//
// Blank split artifacts (empty strings, lone spaces) from consecutive
// separators are filtered out in one linear pass. Empty input yields an
// empty sequence.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	parts := wordSeparators.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, word := range parts {
		pause := false
		if word != "" && strings.IndexByte(pauseDelimiters, word[len(word)-1]) >= 0 {
			word = word[:len(word)-1]
			pause = true
		}
		if word != "" && word != " " {
			tokens = append(tokens, strings.ToLower(word))
		}
		if pause {
			tokens = append(tokens, PauseToken)
		}
	}
	return tokens
}
