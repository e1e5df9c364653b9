package tui

import (
	"strings"

	"tagGallery/gallery"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TagEditor holds the tag chips of the selected record, the chip cursor used
// for deletion and the tag entry input.
type TagEditor struct {
	chips  []gallery.TagChip
	cursor int
	input  textinput.Model
}

func NewTagEditor() *TagEditor {
	input := textinput.New()
	input.Prompt = "+ "
	input.Placeholder = "Enter tag"
	input.CharLimit = 128
	return &TagEditor{input: input}
}

func (te *TagEditor) LoadChips(chips []gallery.TagChip) {
	te.chips = chips
	if te.cursor >= len(chips) {
		te.cursor = max(len(chips)-1, 0)
	}
}

func (te *TagEditor) Chips() []gallery.TagChip {
	return te.chips
}

func (te *TagEditor) Cursor() int {
	return te.cursor
}

func (te *TagEditor) MoveLeft() {
	if te.cursor > 0 {
		te.cursor--
	}
}

func (te *TagEditor) MoveRight() {
	if te.cursor < len(te.chips)-1 {
		te.cursor++
	}
}

func (te *TagEditor) SelectedChip() (gallery.TagChip, bool) {
	if te.cursor < 0 || te.cursor >= len(te.chips) {
		return gallery.TagChip{}, false
	}
	return te.chips[te.cursor], true
}

func (te *TagEditor) StartEditing() tea.Cmd {
	return te.input.Focus()
}

func (te *TagEditor) StopEditing() {
	te.input.Blur()
}

func (te *TagEditor) IsEditing() bool {
	return te.input.Focused()
}

func (te *TagEditor) Value() string {
	return te.input.Value()
}

func (te *TagEditor) Clear() {
	te.input.Reset()
}

func (te *TagEditor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	te.input, cmd = te.input.Update(msg)
	return cmd
}

func (te *TagEditor) InputView() string {
	return te.input.View()
}

// RenderChips lays the chips out in rows no wider than width. The chip under
// the cursor is highlighted when active is set.
func (te *TagEditor) RenderChips(width int, active bool, theme *Theme) []string {
	if len(te.chips) == 0 {
		return []string{theme.MutedTextStyle.Render("No tags")}
	}

	var lines []string
	var line []string
	lineWidth := 0
	for i, chip := range te.chips {
		style := theme.TagChipStyle
		if active && i == te.cursor {
			style = theme.ActiveChipStyle
		}
		rendered := style.Render(truncate(chip.Text, max(width-6, 1)) + " ×")
		w := lipgloss.Width(rendered)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineWidth = nil, 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		line = append(line, rendered)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return lines
}
