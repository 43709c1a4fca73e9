package speech

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "hello world with punctuation",
			input:    "Hello, world!",
			expected: []string{"hello", PauseToken, "world", PauseToken},
		},
		{
			name:     "plain words",
			input:    "one two three",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "newlines and tabs",
			input:    "first\nsecond\tthird",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "quotes are separators",
			input:    `she said "hi" again`,
			expected: []string{"she", "said", "hi", "again"},
		},
		{
			name:     "consecutive whitespace leaves no blanks",
			input:    "a   b",
			expected: []string{"a", "b"},
		},
		{
			name:     "uppercase is lowered",
			input:    "GOOD Morning",
			expected: []string{"good", "morning"},
		},
		{
			name:     "lone punctuation becomes just a pause",
			input:    " , . ",
			expected: []string{PauseToken, PauseToken},
		},
		{
			name:     "all pause delimiters",
			input:    "a, b! c? d: e; f.",
			expected: []string{"a", PauseToken, "b", PauseToken, "c", PauseToken, "d", PauseToken, "e", PauseToken, "f", PauseToken},
		},
		{
			name:  "only one trailing mark is stripped",
			input: "wait...",
			// Leftover punctuation stays in the token; the fallback
			// generator will surface it as UNKNOWN later.
			expected: []string{"wait..", PauseToken},
		},
		{
			name:     "mid-word punctuation is kept",
			input:    "it's fine",
			expected: []string{"it's", "fine"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    " \n\t ",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	// Already-normalized text (lowercase, no trailing punctuation, single
	// spaces) must tokenize to itself.
	inputs := []string{
		"hello world",
		"the quick brown fox",
		"a",
	}

	for _, input := range inputs {
		first := Tokenize(input)
		second := Tokenize(joinTokens(first))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Tokenize not idempotent for %q: %v vs %v", input, first, second)
		}
	}
}

func joinTokens(tokens []string) string {
	out := ""
	for i, tok := range tokens {
		if i > 0 {
			out += " "
		}
		out += tok
	}
	return out
}
