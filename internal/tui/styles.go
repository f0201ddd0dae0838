// Package tui provides the interactive rehearsal screen for readafter.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/readafter/internal/pinyin"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - progress, pinyin
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - current segment
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, neighbours
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - status
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
	ColorError     = lipgloss.Color("#e63946") // Errors
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Segment styles
var (
	CurrentSegmentStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(1, 2).
				Margin(1, 0)

	NeighbourSegmentStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 3)

	PinyinStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Margin(1, 2)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	InputPromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	InputTextStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
)

// ToneStyles colour pinyin by tone.
var ToneStyles = map[pinyin.Tone]lipgloss.Style{
	pinyin.Tone1: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
	pinyin.Tone2: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d")),
	pinyin.Tone3: lipgloss.NewStyle().Foreground(lipgloss.Color("#a8e6cf")),
	pinyin.Tone4: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")),
	pinyin.Tone5: lipgloss.NewStyle().Foreground(ColorMuted),
}

// ToneStyle returns the style for tone t.
func ToneStyle(t pinyin.Tone) lipgloss.Style {
	if s, ok := ToneStyles[t]; ok {
		return s
	}
	return PinyinStyle
}
