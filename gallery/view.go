package gallery

// ErrorThumbnailURL replaces a thumbnail source that failed to load.
const ErrorThumbnailURL = "https://via.placeholder.com/150?text=Error"

// Placeholder is one grid cell standing in for a record until its thumbnail
// source is assigned by the lazy loader.
type Placeholder struct {
	ID       int
	Record   MediaRecord
	Kind     MediaKind
	PlayIcon bool
	Source   string
	Loaded   bool
}

func (p Placeholder) ThumbnailURL() string {
	return p.Record.ThumbnailURL
}

func (p Placeholder) Failed() bool {
	return p.Source == ErrorThumbnailURL
}

// TagChip is a rendered tag with its delete target.
type TagChip struct {
	Text   string
	SHA256 string
}

// Detail describes the detail pane for the selected record.
type Detail struct {
	Record   MediaRecord
	Kind     MediaKind
	MediaURL string
	Caption  string
	Tags     []TagChip
	// Player is nil for images.
	Player *Player
}

// View is everything the controller needs from a display. Implementations must
// not call back into the controller synchronously.
type View interface {
	RenderGrid(grid []Placeholder)
	RenderDetail(detail Detail)
	ClearTagInput()
	Notify(err error)
	ShowToast(toast Toast)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool
