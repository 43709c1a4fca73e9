package speech

import (
	"errors"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	c := NewConverter(fakeDict{entries: map[string][]string{
		"hello": {"HH EH1 L OW0"},
		"world": {"W ER1 L D"},
	}})

	res, err := c.Convert("Hello, world!")
	if err != nil {
		t.Fatal(err)
	}

	wantTokens := []string{"hello", PauseToken, "world", PauseToken}
	if len(res.Tokens) != len(wantTokens) {
		t.Fatalf("tokens = %v, want %v", res.Tokens, wantTokens)
	}
	for i, tok := range wantTokens {
		if res.Tokens[i] != tok {
			t.Errorf("token %d = %q, want %q", i, res.Tokens[i], tok)
		}
	}

	if len(res.Sounds) != len(res.Tokens) {
		t.Errorf("sounds and tokens must be the same length: %d vs %d", len(res.Sounds), len(res.Tokens))
	}
	if res.Sounds[0] != "HH EH L OW" {
		t.Errorf("sounds[0] = %q, want digits stripped", res.Sounds[0])
	}
	if len(res.Unrecognized) != 0 {
		t.Errorf("unrecognized = %v, want none", res.Unrecognized)
	}
}

func TestConvertEmptyText(t *testing.T) {
	c := NewConverter(fakeDict{})

	for _, input := range []string{"", "   ", "\n\t"} {
		if _, err := c.Convert(input); !errors.Is(err, ErrNoText) {
			t.Errorf("Convert(%q) err = %v, want ErrNoText", input, err)
		}
	}
}

func TestReport(t *testing.T) {
	c := NewConverter(fakeDict{entries: map[string][]string{
		"hello": {"HH EH1 L OW0"},
	}})

	res, err := c.Convert("hello zzq")
	if err != nil {
		t.Fatal(err)
	}

	report := res.Report()
	if !strings.Contains(report, "HH EH L OW") {
		t.Error("report missing resolved phonemes")
	}
	if !strings.Contains(report, "Unrecognized Words and Generated Phonemes:") {
		t.Error("report missing unrecognized-word section")
	}
	if !strings.Contains(report, "zzq: Z Z K") {
		t.Error("report missing fallback line for zzq")
	}
}

func TestReportWithoutMisses(t *testing.T) {
	c := NewConverter(fakeDict{entries: map[string][]string{
		"hello": {"HH EH1 L OW0"},
	}})

	res, err := c.Convert("hello")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(res.Report(), "Unrecognized") {
		t.Error("report should omit the unrecognized section when all words resolved")
	}
}
