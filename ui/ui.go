// Package ui implements the interactive conversion form: a text entry, an
// audio directory field, a phoneme output view and a status line.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Harsh-119/Personalized-Text-To-Speech/speech"
)

// status reflects where the current run is.
type status int

const (
	statusIdle status = iota
	statusError
	statusPlaying
	statusComplete
)

// focusArea identifies which input currently receives keystrokes.
type focusArea int

const (
	focusText focusArea = iota
	focusDir
)

// Config contains the form's startup values.
type Config struct {
	// AudioDir pre-fills the audio directory field.
	AudioDir string
}

type keyMap struct {
	Speak  key.Binding
	Switch key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Speak, k.Switch, k.Stop, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Speak, k.Switch}, {k.Stop, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Speak: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "convert to speech"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop playback"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Model is the Bubble Tea model for the conversion form.
type Model struct {
	textInput textarea.Model
	dirInput  textinput.Model
	output    viewport.Model
	help      help.Model
	keys      keyMap

	converter *speech.Converter
	sequencer *speech.Sequencer

	status    status
	statusMsg string
	focus     focusArea

	// cancelPlayback stops the current run between playback steps; nil
	// when nothing is playing.
	cancelPlayback context.CancelFunc

	width  int
	height int
}

// NewModel builds the form model around an assembled pipeline.
func NewModel(cfg Config, converter *speech.Converter, sequencer *speech.Sequencer) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter text..."
	ta.SetHeight(5)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "Audio directory"
	ti.SetValue(cfg.AudioDir)

	vp := viewport.New(0, 10)

	return Model{
		textInput: ta,
		dirInput:  ti,
		output:    vp,
		help:      help.New(),
		keys:      defaultKeyMap(),
		converter: converter,
		sequencer: sequencer,
		status:    statusIdle,
		focus:     focusText,
	}
}

// NewProgram returns a ready-to-run Bubble Tea program for the form.
func NewProgram(cfg Config, converter *speech.Converter, sequencer *speech.Sequencer) *tea.Program {
	log.Debug("starting form", "audio_dir", cfg.AudioDir)
	return tea.NewProgram(NewModel(cfg, converter, sequencer), tea.WithAltScreen())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Width - 4
		if inner < 20 {
			inner = 20
		}
		m.textInput.SetWidth(inner)
		m.dirInput.Width = inner
		m.output.Width = inner
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stopPlayback()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.toggleFocus()
			return m, nil

		case key.Matches(msg, m.keys.Speak):
			return m.startConversion()

		case key.Matches(msg, m.keys.Stop):
			if m.status == statusPlaying {
				m.stopPlayback()
				m.setStatus(statusIdle, "Playback stopped.")
			}
			return m, nil
		}

	case convertedMsg:
		m.output.SetContent(msg.result.Report())
		m.output.GotoTop()
		m.setStatus(statusPlaying, "Playing audio...")

		ctx, cancel := context.WithCancel(context.Background())
		m.cancelPlayback = cancel
		return m, speakCmd(ctx, m.sequencer, msg.result.Sounds, strings.TrimSpace(m.dirInput.Value()))

	case conversionFailedMsg:
		m.setStatus(statusError, "ERROR: "+msg.err.Error())
		return m, nil

	case playbackFinishedMsg:
		m.cancelPlayback = nil
		switch {
		case msg.err == context.Canceled:
			// The user stopped playback; the esc handler already set
			// the status line.
		case msg.err != nil:
			m.setStatus(statusError, "ERROR: "+msg.err.Error())
		case len(msg.diags) > 0:
			m.setStatus(statusComplete, fmt.Sprintf(
				"Text-to-Speech conversion complete! (%d missing clips)", len(msg.diags)))
		default:
			m.setStatus(statusComplete, "Text-to-Speech conversion complete!")
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// startConversion validates the form and kicks off the pipeline.
func (m Model) startConversion() (tea.Model, tea.Cmd) {
	if m.status == statusPlaying {
		return m, nil
	}

	text := strings.TrimSpace(m.textInput.Value())
	dir := strings.TrimSpace(m.dirInput.Value())
	if text == "" || dir == "" {
		m.setStatus(statusError, "ERROR: Please enter both text and audio directory.")
		return m, nil
	}

	m.setStatus(statusPlaying, "Converting...")
	return m, convertCmd(m.converter, text)
}

func (m *Model) toggleFocus() {
	if m.focus == focusText {
		m.focus = focusDir
		m.textInput.Blur()
		m.dirInput.Focus()
	} else {
		m.focus = focusText
		m.dirInput.Blur()
		m.textInput.Focus()
	}
}

func (m *Model) setStatus(s status, msg string) {
	m.status = s
	m.statusMsg = msg
}

func (m *Model) stopPlayback() {
	if m.cancelPlayback != nil {
		m.cancelPlayback()
		m.cancelPlayback = nil
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.focus {
	case focusText:
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case focusDir:
		m.dirInput, cmd = m.dirInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.output, cmd = m.output.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// statusLine renders the current status with its style.
func (m Model) statusLine() string {
	msg := m.statusMsg
	switch m.status {
	case statusIdle:
		if msg == "" {
			msg = "Ready."
		}
		return statusIdleStyle.Render(msg)
	case statusError:
		return statusErrorStyle.Render(msg)
	case statusPlaying:
		return statusPlayingStyle.Render(msg)
	case statusComplete:
		return statusCompleteStyle.Render(msg)
	}
	return msg
}

// View implements tea.Model.
func (m Model) View() string {
	textBorder := blurredBorderStyle
	dirBorder := blurredBorderStyle
	if m.focus == focusText {
		textBorder = focusedBorderStyle
	} else {
		dirBorder = focusedBorderStyle
	}

	sections := []string{
		titleStyle.Render("Personalized Text-to-Speech"),
		labelStyle.Render("Enter text:"),
		textBorder.Render(m.textInput.View()),
		labelStyle.Render("Audio directory:"),
		dirBorder.Render(m.dirInput.View()),
		labelStyle.Render("Output:"),
		m.output.View(),
		m.statusLine(),
		m.help.View(m.keys),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
