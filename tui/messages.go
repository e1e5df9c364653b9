package tui

type Mode int

const (
	GridMode Mode = iota
	TagListMode
	TagInputMode
	FilterMode
	ConfirmRenameMode
	HelpMode
)

func (m Mode) String() string {
	switch m {
	case GridMode:
		return "grid"
	case TagListMode:
		return "tags"
	case TagInputMode:
		return "tag input"
	case FilterMode:
		return "filter"
	case ConfirmRenameMode:
		return "confirm"
	case HelpMode:
		return "help"
	}
	return "unknown"
}

type RefreshedMsg struct {
	Count int
	Error error
}

type TagActionDoneMsg struct {
	Error error
}

type RenameDoneMsg struct {
	Ran   bool
	Error error
}

type CopiedMsg struct {
	Error error
}

type ThumbnailLoadedMsg struct {
	ID     int
	Source string
	Error  error
}

type PreviewLoadedMsg struct {
	Name    string
	Content string
	Info    string
	Error   error
}

type MediaOpenedMsg struct {
	Name  string
	Error error
}

type ToastTickMsg struct{}

type StatusTickMsg struct {
	ID int
}
