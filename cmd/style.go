package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/attune/internal/alignment"
	"github.com/abhisek/attune/internal/journey"
)

// Color palette — soft, calm tones.
var (
	colPrimary = lipgloss.Color("#A78BFA") // Lavender
	colAccent  = lipgloss.Color("#F0ABFC") // Orchid
	colSuccess = lipgloss.Color("#34D399") // Mint
	colWarn    = lipgloss.Color("#FBBF24") // Amber
	colText    = lipgloss.Color("#F8FAFC") // White
	colTextDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	accentStyle = lipgloss.NewStyle().
			Foreground(colAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colSuccess)

	warnStyle = lipgloss.NewStyle().
			Foreground(colWarn)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colTextDim).
			Italic(true)
)

// renderScoreBar renders a 20-cell bar for a 0-100 score.
func renderScoreBar(score int) string {
	filled := score / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return fmt.Sprintf("%s %s", accentStyle.Render(bar), bodyStyle.Render(fmt.Sprintf("%d/100", score)))
}

// slotIcon returns the display icon for a path's slot state.
func slotIcon(st journey.SlotState) string {
	switch st {
	case journey.SlotMastered:
		return "✦"
	case journey.SlotActive:
		return "◉"
	case journey.SlotLocked:
		return "🔒"
	default:
		return "○"
	}
}

// renderStreak formats one streak counter line.
func renderStreak(label string, s alignment.Streak) string {
	flame := " "
	if s.Current > 0 {
		flame = "🔥"
	}
	return fmt.Sprintf("  %s %-12s %s", flame, label,
		bodyStyle.Render(fmt.Sprintf("%d day(s), best %d", s.Current, s.Longest)))
}
