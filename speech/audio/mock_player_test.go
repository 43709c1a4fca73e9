package audio

import (
	"errors"
	"testing"
)

func TestMockPlayerRecordsOrder(t *testing.T) {
	m := NewMockPlayer()

	for _, path := range []string{"a.wav", "b.wav", "a.wav"} {
		if err := m.PlayFile(path); err != nil {
			t.Fatal(err)
		}
	}

	played := m.Played()
	if len(played) != 3 {
		t.Fatalf("recorded %d plays, want 3", len(played))
	}
	if played[0] != "a.wav" || played[1] != "b.wav" || played[2] != "a.wav" {
		t.Errorf("order = %v", played)
	}

	m.Reset()
	if len(m.Played()) != 0 {
		t.Error("Reset did not clear plays")
	}
}

func TestMockPlayerFailOn(t *testing.T) {
	m := NewMockPlayer()
	boom := errors.New("boom")
	m.FailOn["bad.wav"] = boom

	if err := m.PlayFile("good.wav"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := m.PlayFile("bad.wav"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	// Failed plays are still recorded.
	if len(m.Played()) != 2 {
		t.Errorf("recorded %d plays, want 2", len(m.Played()))
	}
}
