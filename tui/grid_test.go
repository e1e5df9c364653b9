package tui

import (
	"testing"

	"tagGallery/gallery"
)

func TestNewGridGeometry(t *testing.T) {
	tests := []struct {
		name               string
		panelW, panelH     int
		thumbW, thumbH     int
		wantCols, wantRows int
		wantViewport       int
	}{
		{"several columns", 60, 29, 4, 2, 9, 6, 25},
		{"narrow panel keeps one column", 10, 20, 16, 6, 1, 2, 16},
		{"short panel keeps one row", 60, 6, 4, 2, 9, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGridGeometry(tt.panelW, tt.panelH, tt.thumbW, tt.thumbH)
			if g.Cols != tt.wantCols {
				t.Errorf("Cols = %d, want %d", g.Cols, tt.wantCols)
			}
			if g.VisibleRows() != tt.wantRows {
				t.Errorf("VisibleRows = %d, want %d", g.VisibleRows(), tt.wantRows)
			}
			if g.ViewportHeight != tt.wantViewport {
				t.Errorf("ViewportHeight = %d, want %d", g.ViewportHeight, tt.wantViewport)
			}
		})
	}
}

func TestGridBounds(t *testing.T) {
	g := GridGeometry{Cols: 2, ThumbWidth: 4, ThumbHeight: 2, CellWidth: 6, CellHeight: 4, ViewportHeight: 8}
	grid := []gallery.Placeholder{{ID: 10}, {ID: 11}, {ID: 12}, {ID: 13}, {ID: 14}}

	bounds := g.Bounds(grid, 1)
	want := map[int]int{10: -4, 11: -4, 12: 0, 13: 0, 14: 4}
	for id, top := range want {
		if bounds[id].Top != top {
			t.Errorf("cell %d top = %d, want %d", id, bounds[id].Top, top)
		}
		if bounds[id].Height != 3 {
			t.Errorf("cell %d height = %d, want 3", id, bounds[id].Height)
		}
	}
}

func TestGridBrowserNavigation(t *testing.T) {
	gb := NewGridBrowser()
	gb.SetGeometry(GridGeometry{Cols: 3, CellHeight: 4, ViewportHeight: 8})
	gb.SetCount(10)

	gb.MoveRight()
	gb.MoveDown()
	if gb.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", gb.Cursor())
	}

	gb.MoveDown()
	gb.MoveDown()
	if gb.Cursor() != 7 {
		t.Errorf("cursor = %d, want 7 after down past the last full row", gb.Cursor())
	}
	if gb.ScrollRow() != 1 {
		t.Errorf("scroll row = %d, want 1", gb.ScrollRow())
	}

	gb.End()
	if gb.Cursor() != 9 || gb.ScrollRow() != 2 {
		t.Errorf("End: cursor %d scroll %d", gb.Cursor(), gb.ScrollRow())
	}
	start, end := gb.VisibleRange()
	if start != 6 || end != 10 {
		t.Errorf("visible range = [%d,%d)", start, end)
	}

	gb.Home()
	if gb.Cursor() != 0 || gb.ScrollRow() != 0 {
		t.Errorf("Home: cursor %d scroll %d", gb.Cursor(), gb.ScrollRow())
	}

	gb.MoveLeft()
	gb.MoveUp()
	if gb.Cursor() != 0 {
		t.Errorf("cursor moved before the first cell: %d", gb.Cursor())
	}
}

func TestGridBrowserClampsOnShrink(t *testing.T) {
	gb := NewGridBrowser()
	gb.SetGeometry(GridGeometry{Cols: 2, CellHeight: 4, ViewportHeight: 4})
	gb.SetCount(8)
	gb.End()

	gb.SetCount(3)
	if gb.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", gb.Cursor())
	}
	if gb.ScrollRow() != 1 {
		t.Errorf("scroll row = %d, want 1", gb.ScrollRow())
	}

	gb.SetCount(0)
	if gb.Cursor() != 0 || gb.ScrollRow() != 0 {
		t.Errorf("empty grid: cursor %d scroll %d", gb.Cursor(), gb.ScrollRow())
	}
}
