package speech

import "strings"

// fallbackTable maps each lowercase ASCII letter to a substitute ARPABET
// code. The mapping only approximates English pronunciation; it exists so a
// word missing from the dictionary still produces audible output. Note that
// q reuses k's phoneme and x expands to two codes.
var fallbackTable = map[rune]string{
	'a': "AE", 'e': "EH", 'i': "IH", 'o': "OW", 'u': "UH",
	'b': "B", 'c': "CH", 'd': "D", 'f': "F", 'g': "G",
	'h': "HH", 'j': "JH", 'k': "K", 'l': "L", 'm': "M",
	'n': "N", 'p': "P", 'q': "K", 'r': "R", 's': "S",
	't': "T", 'v': "V", 'w': "W", 'x': "K S", 'y': "Y",
	'z': "Z", ' ': PauseToken,
}

// FallbackPhonemes derives a phoneme string for a word that has no
// dictionary entry. It is a pure per-character mapping: characters outside
// the table become the UNKNOWN sentinel rather than being dropped, and the
// mapped codes are joined with single spaces in input order.
func FallbackPhonemes(word string) string {
	codes := make([]string, 0, len(word))
	for _, r := range word {
		code, ok := fallbackTable[r]
		if !ok {
			code = UnknownPhoneme
		}
		codes = append(codes, code)
	}
	return strings.Join(codes, " ")
}
