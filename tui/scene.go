package tui

import (
	"sync"
	"time"

	"tagGallery/gallery"
)

// Scene is the display state the controller draws into. The controller calls
// it from command goroutines while the bubbletea loop reads it, so every
// access goes through the mutex.
type Scene struct {
	mu sync.Mutex

	grid    []gallery.Placeholder
	gridSeq int

	detail    *gallery.Detail
	detailSeq int

	errors        []error
	toasts        []gallery.Toast
	newToasts     int
	clearTagInput bool
}

var _ gallery.View = (*Scene)(nil)

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) RenderGrid(grid []gallery.Placeholder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = grid
	s.gridSeq++
}

func (s *Scene) RenderDetail(detail gallery.Detail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = &detail
	s.detailSeq++
}

func (s *Scene) ClearTagInput() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearTagInput = true
}

func (s *Scene) Notify(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, err)
}

func (s *Scene) ShowToast(toast gallery.Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = append(s.toasts, toast)
	s.newToasts++
}

// Grid returns the placeholders last drawn and a counter that changes on
// every redraw.
func (s *Scene) Grid() ([]gallery.Placeholder, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gallery.Placeholder, len(s.grid))
	copy(out, s.grid)
	return out, s.gridSeq
}

// UpdatePlaceholder replaces the cell with the same ID, if it is still drawn.
func (s *Scene) UpdatePlaceholder(p gallery.Placeholder) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.grid {
		if s.grid[i].ID == p.ID {
			s.grid[i] = p
			return true
		}
	}
	return false
}

// Detail returns the current detail pane, if any, and its redraw counter.
// The Player is shared so playback state survives between frames.
func (s *Scene) Detail() (*gallery.Detail, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return nil, s.detailSeq
	}
	d := *s.detail
	return &d, s.detailSeq
}

// PendingError is the oldest error the user has not dismissed.
func (s *Scene) PendingError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errors) == 0 {
		return nil
	}
	return s.errors[0]
}

func (s *Scene) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errors) > 0 {
		s.errors = s.errors[1:]
	}
}

// TakeClearTagInput reports whether the controller asked for the tag input
// to be cleared since the last call.
func (s *Scene) TakeClearTagInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := s.clearTagInput
	s.clearTagInput = false
	return cleared
}

// TakeNewToasts returns the toasts shown since the last call.
func (s *Scene) TakeNewToasts() []gallery.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.newToasts == 0 {
		return nil
	}
	out := make([]gallery.Toast, s.newToasts)
	copy(out, s.toasts[len(s.toasts)-s.newToasts:])
	s.newToasts = 0
	return out
}

// Toasts drops removed toasts and returns the ones still on screen.
func (s *Scene) Toasts(now time.Time) []gallery.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.Phase(now) != gallery.ToastRemoved {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
	if s.newToasts > len(kept) {
		s.newToasts = len(kept)
	}
	out := make([]gallery.Toast, len(kept))
	copy(out, kept)
	return out
}
