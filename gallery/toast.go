package gallery

import "time"

const (
	ToastFadeInDelay = 10 * time.Millisecond
	ToastHold        = 1500 * time.Millisecond
	ToastFadeOut     = 500 * time.Millisecond
)

type ToastPhase int

const (
	ToastEntering ToastPhase = iota
	ToastVisible
	ToastFading
	ToastRemoved
)

func (p ToastPhase) String() string {
	switch p {
	case ToastEntering:
		return "entering"
	case ToastVisible:
		return "visible"
	case ToastFading:
		return "fading"
	default:
		return "removed"
	}
}

// Toast is a transient confirmation message. Its phase is a pure function of
// the time elapsed since Created.
type Toast struct {
	Message string
	Created time.Time
}

func NewToast(message string, now time.Time) Toast {
	return Toast{Message: message, Created: now}
}

func (t Toast) Phase(now time.Time) ToastPhase {
	elapsed := now.Sub(t.Created)
	switch {
	case elapsed < ToastFadeInDelay:
		return ToastEntering
	case elapsed < ToastHold:
		return ToastVisible
	case elapsed < ToastHold+ToastFadeOut:
		return ToastFading
	default:
		return ToastRemoved
	}
}

// RemoveAt is when the toast leaves the display tree.
func (t Toast) RemoveAt() time.Time {
	return t.Created.Add(ToastHold + ToastFadeOut)
}
