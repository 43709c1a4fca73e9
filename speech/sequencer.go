package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// StepKind discriminates playback plan entries.
type StepKind int

const (
	// StepClip plays an audio clip to completion.
	StepClip StepKind = iota
	// StepPause sleeps for the configured word gap.
	StepPause
)

// Step is a single playback action.
type Step struct {
	Kind StepKind
	Path string // clip path; empty for pauses
}

// Plan is an ordered list of playback actions. Execution is strictly
// sequential with no overlap and no skip-ahead.
type Plan []Step

// Diagnostic records a phoneme whose clip could not be found. Missing clips
// are skipped silently during playback; the diagnostic is the only trace.
type Diagnostic struct {
	Phoneme string
	Path    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Audio file not found: %s", d.Path)
}

// Sequencer expands phoneme sequences into playback plans and executes them
// through a ClipPlayer.
type Sequencer struct {
	player  ClipPlayer
	wordGap time.Duration
}

// NewSequencer creates a sequencer. A non-positive wordGap falls back to
// DefaultWordGap.
func NewSequencer(player ClipPlayer, wordGap time.Duration) *Sequencer {
	if wordGap <= 0 {
		wordGap = DefaultWordGap
	}
	return &Sequencer{player: player, wordGap: wordGap}
}

// BuildPlan expands each phoneme string into clip steps. Pause markers become
// pause steps. Every phoneme code maps to <dir>/<CODE>.wav, with <CODE>.mp3
// accepted when no wav exists; a code with no clip at all yields a diagnostic
// and no step. Existence is checked here and not cached.
func (s *Sequencer) BuildPlan(sounds []string, dir string) (Plan, []Diagnostic) {
	var plan Plan
	var diags []Diagnostic

	for _, sound := range sounds {
		if sound == PauseToken {
			plan = append(plan, Step{Kind: StepPause})
			continue
		}
		for _, phoneme := range strings.Split(sound, " ") {
			if phoneme == "" {
				continue
			}
			path, ok := findClip(dir, phoneme)
			if !ok {
				d := Diagnostic{Phoneme: phoneme, Path: path}
				diags = append(diags, d)
				log.Warn("audio clip not found", "phoneme", phoneme, "path", path)
				continue
			}
			plan = append(plan, Step{Kind: StepClip, Path: path})
		}
	}
	return plan, diags
}

// Play executes the plan in order, blocking: pauses sleep the word gap and
// clips play to completion before the next step starts. Cancellation is
// honored between steps only; a clip already playing finishes. A clip that
// fails to play is logged and skipped, matching the missing-file policy.
func (s *Sequencer) Play(ctx context.Context, plan Plan) error {
	if s.player == nil {
		return ErrNoPlayer
	}

	for _, step := range plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch step.Kind {
		case StepPause:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.wordGap):
			}
		case StepClip:
			if err := s.player.PlayFile(step.Path); err != nil {
				log.Warn("clip playback failed", "path", step.Path, "error", err)
			}
		}
	}
	return nil
}

// Speak builds the playback plan for sounds against dir and executes it,
// returning the diagnostics for any missing clips.
func (s *Sequencer) Speak(ctx context.Context, sounds []string, dir string) ([]Diagnostic, error) {
	if dir == "" {
		return nil, ErrNoAudioDir
	}
	plan, diags := s.BuildPlan(sounds, dir)
	return diags, s.Play(ctx, plan)
}

// findClip resolves the clip path for a phoneme code. The wav path is
// returned even on a miss so diagnostics name the expected file.
func findClip(dir, phoneme string) (string, bool) {
	wav := filepath.Join(dir, phoneme+".wav")
	if fileExists(wav) {
		return wav, true
	}
	if mp3 := filepath.Join(dir, phoneme+".mp3"); fileExists(mp3) {
		return mp3, true
	}
	return wav, false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
