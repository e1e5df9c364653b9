package tui

import (
	"strings"

	"tagGallery/gallery"

	"github.com/charmbracelet/lipgloss"
)

type previewState struct {
	name    string
	content string
	info    string
	loading bool
	err     error
}

func (a *App) renderDetailPanel(width, height int) string {
	theme := a.theme
	layout := a.layout.Calculate()
	innerWidth := max(width-4, 1)

	var lines []string

	detail, _ := a.scene.Detail()
	if detail == nil {
		lines = append(lines,
			theme.HeaderStyle.Width(innerWidth).Render(IconImage+" Detail"),
			"",
			theme.MutedTextStyle.Render("Select an image with Enter"),
		)
		return a.detailBox(width, height, lines)
	}

	icon := IconImage
	if detail.Kind == gallery.KindVideo {
		icon = IconVideo
	}
	lines = append(lines, theme.HeaderStyle.Width(innerWidth).Render(truncate(icon+" "+detail.Caption, innerWidth-2)))

	info := StatusBadge(detail.Kind.String(), "info", theme)
	if a.preview.info != "" {
		info += " " + theme.MutedTextStyle.Render(a.preview.info)
	}
	lines = append(lines, info)
	lines = append(lines, a.renderPreview(detail, layout.PreviewWidth, layout.PreviewHeight))

	if detail.Player != nil {
		lines = append(lines, a.renderPlayerState(detail.Player))
	}
	lines = append(lines, theme.MutedTextStyle.Render(truncate(detail.MediaURL, innerWidth)))

	lines = append(lines, Separator(innerWidth, "─", ColorBorderLight))
	lines = append(lines, theme.TitleStyle.Render(IconTag+" Tags"))
	lines = append(lines, a.tagEditor.RenderChips(innerWidth, a.currentMode == TagListMode, theme)...)
	lines = append(lines, a.tagEditor.InputView())

	return a.detailBox(width, height, lines)
}

func (a *App) detailBox(width, height int, lines []string) string {
	return lipgloss.NewStyle().
		Border(a.theme.PanelBorder).
		BorderForeground(a.panelBorderColor(TagListMode, TagInputMode)).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderPreview(detail *gallery.Detail, width, height int) string {
	theme := a.theme
	switch {
	case a.preview.loading || a.preview.name != detail.Record.Name:
		return LabelBlock(width, height, a.spinner.View()+" loading", theme.MutedTextStyle)
	case a.preview.err != nil:
		return LabelBlock(width, height, IconCross+" failed to load media", theme.ErrorStyle)
	}

	content := a.preview.content
	if detail.Player != nil && detail.Player.OverlayVisible() {
		content = overlayLine(content, width, theme.ActiveChipStyle.Render(IconPlay+" Play"))
	}
	return content
}

// overlayLine replaces the middle line of a rendered block with label,
// centered across width.
func overlayLine(block string, width int, label string) string {
	lines := strings.Split(block, "\n")
	if len(lines) == 0 {
		return block
	}
	lines[len(lines)/2] = lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
	return strings.Join(lines, "\n")
}

func (a *App) renderPlayerState(p *gallery.Player) string {
	theme := a.theme
	var state string
	switch {
	case p.Ended():
		state = theme.MutedTextStyle.Render("■ ended") + "  " + KeyHelp("space", "replay", theme)
	case p.Paused():
		state = theme.MutedTextStyle.Render("❚❚ paused") + "  " + KeyHelp("space", "play", theme)
	default:
		state = theme.SuccessStyle.Render(IconPlay+" playing") + "  " + KeyHelp("space", "pause", theme)
	}

	var attrs []string
	if p.Controls {
		attrs = append(attrs, "controls")
	}
	if p.Loop {
		attrs = append(attrs, "loop")
	}
	if p.Preload != "" {
		attrs = append(attrs, "preload="+p.Preload)
	}
	return state + "\n" + theme.MutedTextStyle.Render(strings.Join(attrs, " · "))
}
