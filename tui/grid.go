package tui

import (
	"strconv"
	"strings"

	"tagGallery/gallery"

	"github.com/charmbracelet/lipgloss"
)

// Grid panel chrome: two border rows plus the header and filter lines.
const gridChromeRows = 4

type GridGeometry struct {
	Cols           int
	ThumbWidth     int
	ThumbHeight    int
	CellWidth      int
	CellHeight     int
	ViewportHeight int
}

// NewGridGeometry fits thumbnail cells into a panel of the given outer size.
// A cell is the thumbnail, a caption line and a spacer line, padded by one
// column on each side.
func NewGridGeometry(panelWidth, panelHeight, thumbWidth, thumbHeight int) GridGeometry {
	thumbWidth = max(thumbWidth, 1)
	thumbHeight = max(thumbHeight, 1)
	g := GridGeometry{
		ThumbWidth:     thumbWidth,
		ThumbHeight:    thumbHeight,
		CellWidth:      thumbWidth + 2,
		CellHeight:     thumbHeight + 2,
		ViewportHeight: max(panelHeight-gridChromeRows, 1),
	}
	innerWidth := panelWidth - 4
	g.Cols = max(innerWidth/g.CellWidth, 1)
	return g
}

func (g GridGeometry) VisibleRows() int {
	return max(g.ViewportHeight/g.CellHeight, 1)
}

// Bounds places every cell relative to the top of the viewport when the grid
// is scrolled down by scrollRow rows.
func (g GridGeometry) Bounds(grid []gallery.Placeholder, scrollRow int) map[int]gallery.Rect {
	bounds := make(map[int]gallery.Rect, len(grid))
	for i, p := range grid {
		row := i / g.Cols
		bounds[p.ID] = gallery.Rect{
			Top:    (row - scrollRow) * g.CellHeight,
			Height: g.ThumbHeight + 1,
		}
	}
	return bounds
}

// GridBrowser tracks the cursor and scroll position over the drawn grid.
type GridBrowser struct {
	geometry  GridGeometry
	count     int
	cursor    int
	scrollRow int
}

func NewGridBrowser() *GridBrowser {
	return &GridBrowser{geometry: GridGeometry{Cols: 1, CellHeight: 1, ViewportHeight: 1}}
}

func (gb *GridBrowser) SetGeometry(g GridGeometry) {
	gb.geometry = g
	gb.ensureVisible()
}

func (gb *GridBrowser) Geometry() GridGeometry {
	return gb.geometry
}

// SetCount updates the number of cells, keeping the cursor in range.
func (gb *GridBrowser) SetCount(n int) {
	gb.count = n
	if gb.cursor >= n {
		gb.cursor = max(n-1, 0)
	}
	gb.ensureVisible()
}

// Reset moves back to the first cell, as after the grid is rebuilt from a
// different set of records.
func (gb *GridBrowser) Reset() {
	gb.cursor = 0
	gb.scrollRow = 0
}

func (gb *GridBrowser) Cursor() int {
	return gb.cursor
}

func (gb *GridBrowser) ScrollRow() int {
	return gb.scrollRow
}

func (gb *GridBrowser) MoveLeft() {
	gb.moveTo(gb.cursor - 1)
}

func (gb *GridBrowser) MoveRight() {
	gb.moveTo(gb.cursor + 1)
}

func (gb *GridBrowser) MoveUp() {
	gb.moveTo(gb.cursor - gb.geometry.Cols)
}

func (gb *GridBrowser) MoveDown() {
	if gb.cursor+gb.geometry.Cols < gb.count {
		gb.moveTo(gb.cursor + gb.geometry.Cols)
	}
}

func (gb *GridBrowser) PageUp() {
	gb.moveTo(gb.cursor - gb.geometry.Cols*gb.geometry.VisibleRows())
}

func (gb *GridBrowser) PageDown() {
	gb.moveTo(gb.cursor + gb.geometry.Cols*gb.geometry.VisibleRows())
}

func (gb *GridBrowser) Home() {
	gb.moveTo(0)
}

func (gb *GridBrowser) End() {
	gb.moveTo(gb.count - 1)
}

func (gb *GridBrowser) moveTo(i int) {
	if gb.count == 0 {
		gb.cursor = 0
		return
	}
	gb.cursor = min(max(i, 0), gb.count-1)
	gb.ensureVisible()
}

func (gb *GridBrowser) ensureVisible() {
	row := gb.cursor / gb.geometry.Cols
	visible := gb.geometry.VisibleRows()
	if row < gb.scrollRow {
		gb.scrollRow = row
	}
	if row >= gb.scrollRow+visible {
		gb.scrollRow = row - visible + 1
	}
	lastRow := 0
	if gb.count > 0 {
		lastRow = (gb.count - 1) / gb.geometry.Cols
	}
	if gb.scrollRow > lastRow {
		gb.scrollRow = lastRow
	}
}

// VisibleRange is the half-open index range of cells on screen.
func (gb *GridBrowser) VisibleRange() (int, int) {
	start := gb.scrollRow * gb.geometry.Cols
	end := min(start+gb.geometry.Cols*gb.geometry.VisibleRows(), gb.count)
	return min(start, end), end
}

func (a *App) renderGridPanel(width, height int) string {
	theme := a.theme
	grid, _ := a.scene.Grid()
	geo := a.browser.Geometry()

	var lines []string

	header := IconGallery + " Gallery"
	if len(grid) > 0 {
		header += theme.MutedTextStyle.Render(" (" + strconv.Itoa(len(grid)) + ")")
	}
	lines = append(lines, theme.HeaderStyle.Width(width-4).Render(header))

	switch {
	case a.currentMode == FilterMode:
		lines = append(lines, a.filterInput.View())
	case a.ctrl.Filter() != "":
		lines = append(lines, StatusBadge(IconSearch+" tag: "+a.ctrl.Filter(), "info", theme)+
			theme.MutedTextStyle.Render("  esc to clear"))
	default:
		lines = append(lines, Separator(width-4, "─", ColorBorderLight))
	}

	switch {
	case len(grid) == 0 && a.isLoading:
		lines = append(lines, a.spinner.View()+" Loading images...")
	case len(grid) == 0 && a.ctrl.Filter() != "":
		lines = append(lines, theme.MutedTextStyle.Render("No images tagged like \""+a.ctrl.Filter()+"\""))
	case len(grid) == 0:
		lines = append(lines, theme.MutedTextStyle.Render("No images"))
	default:
		lines = append(lines, a.renderGridRows(grid, geo))
	}

	return lipgloss.NewStyle().
		Border(theme.PanelBorder).
		BorderForeground(a.panelBorderColor(GridMode, FilterMode)).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderGridRows(grid []gallery.Placeholder, geo GridGeometry) string {
	start, end := a.browser.VisibleRange()
	var rows []string
	for rowStart := start; rowStart < end; rowStart += geo.Cols {
		var cells []string
		for i := rowStart; i < min(rowStart+geo.Cols, end); i++ {
			cells = append(cells, a.renderCell(grid[i], geo, i == a.browser.Cursor()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

func (a *App) renderCell(p gallery.Placeholder, geo GridGeometry, selected bool) string {
	theme := a.theme
	w, h := geo.ThumbWidth, geo.ThumbHeight

	var thumb string
	switch {
	case p.Failed():
		thumb = LabelBlock(w, h, IconCross+" error", theme.ErrorStyle)
	case p.Source != "":
		if rendered, ok := a.renderer.Cached(p.Source, w, h); ok {
			thumb = rendered
		} else {
			thumb = LabelBlock(w, h, "…", theme.MutedTextStyle)
		}
	default:
		thumb = PlaceholderBlock(w, h, "░", theme)
	}

	caption := p.Record.Name
	if p.PlayIcon {
		caption = IconPlay + " " + caption
	}
	captionStyle := theme.MutedTextStyle
	if selected {
		captionStyle = theme.SelectedItemStyle
	}
	caption = captionStyle.Width(w).Render(truncate(caption, w))

	marker := " "
	if selected {
		marker = lipgloss.NewStyle().Foreground(ColorSelected).Render("▌")
	}
	markerCol := strings.TrimSuffix(strings.Repeat(marker+"\n", h+1), "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		markerCol,
		lipgloss.JoinVertical(lipgloss.Left, thumb, caption),
		" ",
	)
}
