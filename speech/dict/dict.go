// Package dict provides pronunciation lookups backed by dictionaries in the
// CMU Pronouncing Dictionary text format.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// variantSuffix matches the "(2)" style marker cmudict uses for alternate
// pronunciations of the same headword.
var variantSuffix = regexp.MustCompile(`\(\d+\)$`)

// Dictionary maps lowercase words to their candidate pronunciations in file
// order, base entry first. Pronunciations keep their stress digits; callers
// strip them as needed.
type Dictionary struct {
	entries map[string][]string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]string)}
}

// Add appends a pronunciation candidate for a word. The word is lowercased;
// the pronunciation is stored as given.
func (d *Dictionary) Add(word, pronunciation string) {
	word = strings.ToLower(word)
	d.entries[word] = append(d.entries[word], pronunciation)
}

// Load reads entries in cmudict format: "WORD  PH AH0 N IY1 M Z" per line,
// alternates written as WORD(2), comment lines starting with ";;;".
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and phonemes, got %q", lineNum, line)
		}

		word := variantSuffix.ReplaceAllString(fields[0], "")
		d.Add(word, strings.Join(fields[1:], " "))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the candidate pronunciations for a word, or nil when the
// word has no entry. Matching is case-insensitive.
func (d *Dictionary) Lookup(word string) []string {
	return d.entries[strings.ToLower(word)]
}

// Len reports how many distinct words have entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
