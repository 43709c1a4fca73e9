package speech

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// recordingPlayer captures every clip path it is asked to play.
type recordingPlayer struct {
	mu     sync.Mutex
	played []string
	err    error
}

func (p *recordingPlayer) PlayFile(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, path)
	return p.err
}

func writeClips(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("RIFF"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildPlan(t *testing.T) {
	dir := t.TempDir()
	writeClips(t, dir, "HH.wav", "EH.wav", "L.wav", "OW.wav", "W.wav")

	sounds := []string{"HH EH L OW", PauseToken, "W"}
	seq := NewSequencer(&recordingPlayer{}, 0)

	plan, diags := seq.BuildPlan(sounds, dir)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(plan) != 6 {
		t.Fatalf("plan has %d steps, want 6", len(plan))
	}
	if plan[4].Kind != StepPause {
		t.Errorf("step 4 should be a pause, got %v", plan[4])
	}
	if plan[5].Path != filepath.Join(dir, "W.wav") {
		t.Errorf("step 5 path = %q", plan[5].Path)
	}
}

func TestBuildPlanMissingClip(t *testing.T) {
	dir := t.TempDir()
	// K.wav deliberately absent.
	writeClips(t, dir, "AE.wav", "T.wav")

	seq := NewSequencer(&recordingPlayer{}, 0)
	plan, diags := seq.BuildPlan([]string{"K AE T"}, dir)

	if len(plan) != 2 {
		t.Errorf("plan has %d steps, want 2 (missing clip skipped)", len(plan))
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Phoneme != "K" {
		t.Errorf("diagnostic phoneme = %q, want K", diags[0].Phoneme)
	}
	if !strings.HasSuffix(diags[0].Path, "K.wav") {
		t.Errorf("diagnostic path = %q, want .../K.wav", diags[0].Path)
	}
	if !strings.Contains(diags[0].String(), "Audio file not found") {
		t.Errorf("diagnostic message = %q", diags[0].String())
	}
}

func TestBuildPlanAcceptsMP3(t *testing.T) {
	dir := t.TempDir()
	writeClips(t, dir, "K.mp3")

	seq := NewSequencer(&recordingPlayer{}, 0)
	plan, diags := seq.BuildPlan([]string{"K"}, dir)

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(plan) != 1 || !strings.HasSuffix(plan[0].Path, "K.mp3") {
		t.Fatalf("plan = %v, want the mp3 clip", plan)
	}
}

func TestSpeakPlaysInOrder(t *testing.T) {
	dir := t.TempDir()
	writeClips(t, dir, "Z.wav", "K.wav")

	player := &recordingPlayer{}
	seq := NewSequencer(player, time.Millisecond)

	diags, err := seq.Speak(context.Background(), []string{"Z Z K", PauseToken}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []string{
		filepath.Join(dir, "Z.wav"),
		filepath.Join(dir, "Z.wav"),
		filepath.Join(dir, "K.wav"),
	}
	if len(player.played) != len(want) {
		t.Fatalf("played %d clips, want %d", len(player.played), len(want))
	}
	for i, path := range want {
		if player.played[i] != path {
			t.Errorf("clip %d = %q, want %q", i, player.played[i], path)
		}
	}
}

func TestSpeakContinuesPastMissingClip(t *testing.T) {
	dir := t.TempDir()
	// Scenario: K.wav missing while the other clips exist. Playback must
	// finish for everything else with exactly one diagnostic.
	writeClips(t, dir, "AE.wav", "T.wav", "S.wav")

	player := &recordingPlayer{}
	seq := NewSequencer(player, time.Millisecond)

	diags, err := seq.Speak(context.Background(), []string{"K AE T", PauseToken, "S"}, dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if len(player.played) != 3 {
		t.Errorf("played %d clips, want 3", len(player.played))
	}
}

func TestPlayErrorIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeClips(t, dir, "AE.wav", "B.wav")

	player := &recordingPlayer{err: os.ErrPermission}
	seq := NewSequencer(player, time.Millisecond)

	if _, err := seq.Speak(context.Background(), []string{"AE B"}, dir); err != nil {
		t.Fatalf("playback errors must not abort the batch: %v", err)
	}
	if len(player.played) != 2 {
		t.Errorf("played %d clips, want 2", len(player.played))
	}
}

func TestPlayCancellation(t *testing.T) {
	dir := t.TempDir()
	writeClips(t, dir, "AE.wav")

	player := &recordingPlayer{}
	seq := NewSequencer(player, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, _ := seq.BuildPlan([]string{"AE", PauseToken, "AE"}, dir)
	if err := seq.Play(ctx, plan); err == nil {
		t.Error("expected cancellation error")
	}
	if len(player.played) != 0 {
		t.Errorf("played %d clips after cancellation, want 0", len(player.played))
	}
}

func TestSpeakRequiresAudioDir(t *testing.T) {
	seq := NewSequencer(&recordingPlayer{}, 0)
	if _, err := seq.Speak(context.Background(), []string{"AE"}, ""); err != ErrNoAudioDir {
		t.Errorf("err = %v, want ErrNoAudioDir", err)
	}
}

func TestPlayRequiresPlayer(t *testing.T) {
	seq := NewSequencer(nil, 0)
	if err := seq.Play(context.Background(), Plan{{Kind: StepPause}}); err != ErrNoPlayer {
		t.Errorf("err = %v, want ErrNoPlayer", err)
	}
}
