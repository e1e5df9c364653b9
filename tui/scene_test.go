package tui

import (
	"errors"
	"testing"
	"time"

	"tagGallery/gallery"
)

func TestSceneErrorsQueueUntilDismissed(t *testing.T) {
	s := NewScene()
	first := errors.New("first")
	s.Notify(first)
	s.Notify(errors.New("second"))
	s.Notify(nil)

	if s.PendingError() != first {
		t.Fatalf("pending = %v, want first", s.PendingError())
	}
	s.DismissError()
	if s.PendingError() == nil || s.PendingError().Error() != "second" {
		t.Fatalf("pending = %v, want second", s.PendingError())
	}
	s.DismissError()
	if s.PendingError() != nil {
		t.Error("queue should be empty")
	}
}

func TestSceneToastLifecycle(t *testing.T) {
	s := NewScene()
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.ShowToast(gallery.NewToast("Copied!", created))

	if got := s.TakeNewToasts(); len(got) != 1 {
		t.Fatalf("new toasts = %d, want 1", len(got))
	}
	if got := s.TakeNewToasts(); len(got) != 0 {
		t.Errorf("toasts handed out twice")
	}

	if got := s.Toasts(created.Add(time.Second)); len(got) != 1 {
		t.Errorf("toast gone before its hold time")
	}
	if got := s.Toasts(created.Add(2 * time.Second)); len(got) != 0 {
		t.Errorf("toast still shown after removal")
	}
}

func TestSceneUpdatePlaceholder(t *testing.T) {
	s := NewScene()
	s.RenderGrid([]gallery.Placeholder{{ID: 1}, {ID: 2}})
	_, seq := s.Grid()

	if !s.UpdatePlaceholder(gallery.Placeholder{ID: 2, Source: "/t/b.jpg", Loaded: true}) {
		t.Fatal("placeholder 2 not found")
	}
	if s.UpdatePlaceholder(gallery.Placeholder{ID: 9}) {
		t.Error("updated a placeholder that is not drawn")
	}

	grid, seq2 := s.Grid()
	if grid[1].Source != "/t/b.jpg" {
		t.Errorf("source = %q", grid[1].Source)
	}
	if seq2 != seq {
		t.Error("updating one cell should not count as a redraw")
	}
}

func TestSceneClearTagInputIsOneShot(t *testing.T) {
	s := NewScene()
	s.ClearTagInput()
	if !s.TakeClearTagInput() {
		t.Error("clear request lost")
	}
	if s.TakeClearTagInput() {
		t.Error("clear request reported twice")
	}
}
