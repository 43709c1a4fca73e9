package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Harsh-119/Personalized-Text-To-Speech/speech"
)

// convertedMsg carries the pipeline result for a conversion run.
type convertedMsg struct {
	result *speech.Result
}

// conversionFailedMsg reports a conversion that could not run.
type conversionFailedMsg struct {
	err error
}

// playbackFinishedMsg reports the end of a playback run, successful or not,
// along with the diagnostics for clips that were missing on disk.
type playbackFinishedMsg struct {
	diags []speech.Diagnostic
	err   error
}

// convertCmd runs the text-to-phoneme pipeline off the UI loop.
func convertCmd(converter *speech.Converter, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := converter.Convert(text)
		if err != nil {
			return conversionFailedMsg{err: err}
		}
		return convertedMsg{result: result}
	}
}

// speakCmd plays the resolved phoneme sequence. It blocks inside the command
// goroutine; the UI stays responsive and can cancel between steps.
func speakCmd(ctx context.Context, sequencer *speech.Sequencer, sounds []string, audioDir string) tea.Cmd {
	return func() tea.Msg {
		diags, err := sequencer.Speak(ctx, sounds, audioDir)
		return playbackFinishedMsg{diags: diags, err: err}
	}
}
