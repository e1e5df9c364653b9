package gallery

import (
	"errors"
	"fmt"
)

var ErrNoSelection = errors.New("no image selected")

type TagAction string

const (
	ActionAdd    TagAction = "add"
	ActionDelete TagAction = "delete"
)

// StatusCoder is implemented by transport errors that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch images: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) UserMessage() string {
	return "Failed to load images. Check the log for details."
}

type TagActionError struct {
	Action TagAction
	SHA256 string
	Tag    string
	Err    error
}

func (e *TagActionError) Error() string {
	return fmt.Sprintf("failed to %s tag %q for %s: %v", e.Action, e.Tag, e.SHA256, e.Err)
}

func (e *TagActionError) Unwrap() error { return e.Err }

func (e *TagActionError) UserMessage() string {
	var sc StatusCoder
	if errors.As(e.Err, &sc) {
		return fmt.Sprintf("Failed to %s tag. See the log for details.", e.Action)
	}
	return fmt.Sprintf("An error occurred while trying to %s the tag.", e.Action)
}

type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("failed to copy text: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

func (e *ClipboardError) UserMessage() string {
	return "Failed to copy. Clipboard access may require a secure context, an explicit user action, or a clipboard utility (xclip, xsel, wl-copy)."
}

type RenameError struct {
	Err error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename failed: %v", e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

func (e *RenameError) UserMessage() string {
	return "Rename failed. See the log for details."
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNoSelection) {
		return "Please select an image first."
	}
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return err.Error()
}
