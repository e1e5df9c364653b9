package gallery

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		expected MediaKind
	}{
		{name: "lowercase webm", file: "clip.webm", expected: KindVideo},
		{name: "uppercase webm", file: "clip.WEBM", expected: KindVideo},
		{name: "mixed case webm", file: "clip.WeBm", expected: KindVideo},
		{name: "png", file: "photo.png", expected: KindImage},
		{name: "gif", file: "anim.gif", expected: KindImage},
		{name: "mp4 is not video", file: "movie.mp4", expected: KindImage},
		{name: "webm in the middle", file: "clip.webm.jpg", expected: KindImage},
		{name: "empty name", file: "", expected: KindImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.file); got != tt.expected {
				t.Errorf("KindOf(%q) = %v, want %v", tt.file, got, tt.expected)
			}
		})
	}
}

func TestMediaRecordHelpers(t *testing.T) {
	r := MediaRecord{Name: "a b.png", SHA256: "abc"}

	if got := r.MediaPath(); got != "/images/a b.png" {
		t.Errorf("MediaPath() = %q", got)
	}
	if tags := r.TagList(); tags == nil || len(tags) != 0 {
		t.Errorf("TagList() on nil tags = %#v, want empty slice", tags)
	}
	if r.IsVideo() {
		t.Error("png should not be a video")
	}
}
