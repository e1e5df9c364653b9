package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Primary colors
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple

	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	// UI colors
	ColorBorder      = lipgloss.Color("#6B7280") // Gray
	ColorBorderLight = lipgloss.Color("#9CA3AF") // Light gray
	ColorText        = lipgloss.Color("#F9FAFB") // Almost white
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Gray
	ColorHighlight   = lipgloss.Color("#8B5CF6") // Light purple
	ColorPlaceholder = lipgloss.Color("#374151")

	ColorSelected = lipgloss.Color("#7C3AED") // Purple
)

type Theme struct {
	PanelBorder lipgloss.Border

	TitleStyle      lipgloss.Style
	HeaderStyle     lipgloss.Style
	NormalTextStyle lipgloss.Style
	MutedTextStyle  lipgloss.Style
	HighlightStyle  lipgloss.Style

	SelectedItemStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	SuccessStyle      lipgloss.Style
	WarningStyle      lipgloss.Style

	PlaceholderStyle lipgloss.Style
	TagChipStyle     lipgloss.Style
	ActiveChipStyle  lipgloss.Style
	ModalStyle       lipgloss.Style
	ToastStyle       lipgloss.Style
	ToastFadedStyle  lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		PanelBorder: lipgloss.RoundedBorder(),

		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1),

		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1),

		NormalTextStyle: lipgloss.NewStyle().
			Foreground(ColorText),

		MutedTextStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		HighlightStyle: lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true),

		SelectedItemStyle: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Background(lipgloss.Color("#312E81")), // Dark purple

		ErrorStyle: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		WarningStyle: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		PlaceholderStyle: lipgloss.NewStyle().
			Foreground(ColorPlaceholder),

		TagChipStyle: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("#1E3A8A")).
			Padding(0, 1),

		ActiveChipStyle: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1),

		ModalStyle: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 2),

		ToastStyle: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(lipgloss.Color("#4CAF50")).
			Padding(0, 1),

		ToastFadedStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(lipgloss.Color("#064E3B")).
			Padding(0, 1),
	}
}

const (
	IconGallery = "▦"
	IconImage   = "🖼"
	IconVideo   = "🎞"
	IconPlay    = "▶"
	IconTag     = "🏷"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconSearch  = "🔍"
)

func StatusBadge(text string, statusType string, theme *Theme) string {
	var style lipgloss.Style

	switch statusType {
	case "success":
		style = theme.SuccessStyle.Background(lipgloss.Color("#065F46"))
	case "error":
		style = theme.ErrorStyle.Background(lipgloss.Color("#7F1D1D"))
	case "warning":
		style = theme.WarningStyle.Background(lipgloss.Color("#78350F"))
	case "info":
		style = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Background(lipgloss.Color("#1E3A8A")).
			Bold(true)
	default:
		style = theme.NormalTextStyle
	}

	return style.Padding(0, 1).Render(text)
}

func KeyHelp(key, description string, theme *Theme) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("#1F2937"))

	return keyStyle.Render(key) + " " + theme.MutedTextStyle.Render(description)
}

func Separator(width int, char string, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(char, width))
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func formatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
