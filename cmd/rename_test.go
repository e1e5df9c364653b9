package cmd

import (
	"bytes"
	"strings"
	"testing"

	"tagGallery/gallery"
)

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"sure\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			confirm := promptConfirm(strings.NewReader(tt.input), &out)
			if got := confirm(gallery.RenamePrompt); got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.HasPrefix(out.String(), gallery.RenamePrompt) {
				t.Errorf("prompt not printed: %q", out.String())
			}
		})
	}
}

func TestCLIViewPrintsDetail(t *testing.T) {
	var out bytes.Buffer
	v := &cliView{out: &out}
	v.RenderDetail(gallery.Detail{
		Caption: "a.webm",
		Kind:    gallery.KindVideo,
		Tags:    gallery.RenderTagList([]string{"cat", "night"}, "sha-a"),
	})

	if got, want := out.String(), "a.webm\twebm\tcat, night\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
