package gallery

import "slices"

const (
	DefaultLazyThreshold = 0.1
	DefaultLazyMargin    = 2
)

// Rect is a placeholder's vertical extent in rows, relative to the top of the
// viewport. Top may be negative when scrolled past.
type Rect struct {
	Top    int
	Height int
}

// LazyLoader assigns thumbnail sources to placeholders once they come within
// margin rows of the viewport. Each placeholder is watched until it loads and
// is then forgotten.
type LazyLoader struct {
	margin    int
	threshold float64
	watched   map[int]*Placeholder
}

func NewLazyLoader(margin int, threshold float64) *LazyLoader {
	if margin < 0 {
		margin = 0
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultLazyThreshold
	}
	return &LazyLoader{
		margin:    margin,
		threshold: threshold,
		watched:   make(map[int]*Placeholder),
	}
}

// Initialize drops every registration. Safe to call repeatedly.
func (l *LazyLoader) Initialize() {
	l.Disconnect()
}

func (l *LazyLoader) Disconnect() {
	l.watched = make(map[int]*Placeholder)
}

func (l *LazyLoader) Register(p *Placeholder) {
	if p == nil {
		return
	}
	l.watched[p.ID] = p
}

func (l *LazyLoader) Watching(id int) bool {
	_, ok := l.watched[id]
	return ok
}

func (l *LazyLoader) Len() int {
	return len(l.watched)
}

// Observe checks every watched placeholder with known bounds against a viewport
// of the given height. It returns the IDs whose source it assigned.
func (l *LazyLoader) Observe(viewportHeight int, bounds map[int]Rect) []int {
	var loaded []int
	for id, p := range l.watched {
		rect, ok := bounds[id]
		if !ok {
			continue
		}
		if intersectionRatio(rect, viewportHeight, l.margin) < l.threshold {
			continue
		}
		if p.ThumbnailURL() != "" && p.Source == "" && !p.Loaded {
			p.Loaded = true
			p.Source = p.ThumbnailURL()
			loaded = append(loaded, id)
		}
		delete(l.watched, id)
	}
	slices.Sort(loaded)
	return loaded
}

func intersectionRatio(r Rect, viewportHeight, margin int) float64 {
	if r.Height <= 0 || viewportHeight <= 0 {
		return 0
	}
	top := max(r.Top, -margin)
	bottom := min(r.Top+r.Height, viewportHeight+margin)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(r.Height)
}
