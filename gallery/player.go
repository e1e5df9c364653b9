package gallery

// Player tracks the state of a video detail element and its play overlay.
// The overlay shows whenever the video is paused or has ended and hides while
// it plays. Not safe for concurrent use.
type Player struct {
	Controls bool
	Loop     bool
	Preload  string

	playing bool
	ended   bool
	overlay bool
}

func NewPlayer() *Player {
	return &Player{
		Controls: true,
		Loop:     true,
		Preload:  "metadata",
		overlay:  true,
	}
}

func (p *Player) Paused() bool {
	return !p.playing
}

func (p *Player) Ended() bool {
	return p.ended
}

func (p *Player) OverlayVisible() bool {
	return p.overlay
}

// ClickOverlay starts playback.
func (p *Player) ClickOverlay() {
	p.Play()
}

func (p *Player) Play() {
	p.playing = true
	p.ended = false
	p.overlay = false
}

func (p *Player) Pause() {
	p.playing = false
	if !p.ended {
		p.overlay = true
	}
}

func (p *Player) End() {
	p.playing = false
	p.ended = true
	p.overlay = true
}

func (p *Player) LoadedMetadata() {
	if p.Paused() {
		p.overlay = true
	}
}
