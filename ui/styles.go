package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5a56e0", Dark: "#7571f9"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#5a56e0", Dark: "#7571f9"})

	blurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#bcbcbc", Dark: "#4a4a4a"})

	statusIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9b9b9b", Dark: "#5c5c5c"})

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ff5f5f"})

	statusPlayingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#0868ac", Dark: "#59b4ff"})

	statusCompleteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#5fd75f"})
)
