package gallery

import (
	"testing"
	"time"
)

func TestToastPhases(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	toast := NewToast("Copied!", start)

	tests := []struct {
		after    time.Duration
		expected ToastPhase
	}{
		{after: 0, expected: ToastEntering},
		{after: 10 * time.Millisecond, expected: ToastVisible},
		{after: 1499 * time.Millisecond, expected: ToastVisible},
		{after: 1500 * time.Millisecond, expected: ToastFading},
		{after: 1999 * time.Millisecond, expected: ToastFading},
		{after: 2 * time.Second, expected: ToastRemoved},
	}

	for _, tt := range tests {
		if got := toast.Phase(start.Add(tt.after)); got != tt.expected {
			t.Errorf("Phase(+%v) = %v, want %v", tt.after, got, tt.expected)
		}
	}

	if want := start.Add(2 * time.Second); !toast.RemoveAt().Equal(want) {
		t.Errorf("RemoveAt() = %v, want %v", toast.RemoveAt(), want)
	}
}
