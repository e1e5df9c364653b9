package tui

type Layout struct {
	WindowWidth  int
	WindowHeight int
	Breakpoints  LayoutBreakpoints
}

type LayoutBreakpoints struct {
	MinWidth  int
	MinHeight int
}

type AdaptiveLayout struct {
	GridPanelWidth   int
	DetailPanelWidth int
	ContentHeight    int
	PreviewWidth     int
	PreviewHeight    int
}

func NewLayout() *Layout {
	return &Layout{
		Breakpoints: LayoutBreakpoints{
			MinWidth:  60,
			MinHeight: 20,
		},
	}
}

func (l *Layout) Update(width, height int) {
	l.WindowWidth = width
	l.WindowHeight = height
}

func (l *Layout) Calculate() AdaptiveLayout {
	detailWidth := min(max(l.WindowWidth*2/5, 30), 70)
	gridWidth := l.WindowWidth - detailWidth
	if gridWidth < 24 {
		gridWidth = 24
		detailWidth = max(l.WindowWidth-gridWidth, 0)
	}

	contentHeight := max(l.WindowHeight-1, 0)

	// Inner detail width minus border and padding.
	previewWidth := max(detailWidth-4, 1)
	previewHeight := max(min(contentHeight/2, previewWidth/2), 1)

	return AdaptiveLayout{
		GridPanelWidth:   gridWidth,
		DetailPanelWidth: detailWidth,
		ContentHeight:    contentHeight,
		PreviewWidth:     previewWidth,
		PreviewHeight:    previewHeight,
	}
}

func (l *Layout) IsMinimumSize() bool {
	return l.WindowWidth >= l.Breakpoints.MinWidth &&
		l.WindowHeight >= l.Breakpoints.MinHeight
}
