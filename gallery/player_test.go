package gallery

import "testing"

func TestPlayerOverlay(t *testing.T) {
	p := NewPlayer()
	if !p.Controls || !p.Loop || p.Preload != "metadata" {
		t.Fatalf("unexpected player defaults: %+v", p)
	}

	p.LoadedMetadata()
	if !p.OverlayVisible() {
		t.Error("overlay should show after metadata loads while paused")
	}

	p.ClickOverlay()
	if p.OverlayVisible() || p.Paused() {
		t.Error("overlay should hide while playing")
	}

	p.Pause()
	if !p.OverlayVisible() {
		t.Error("overlay should show when paused")
	}

	p.Play()
	p.End()
	if !p.OverlayVisible() || !p.Ended() {
		t.Error("overlay should show when ended")
	}

	p.Pause()
	if !p.OverlayVisible() {
		t.Error("overlay should stay visible after pause on an ended video")
	}
}
