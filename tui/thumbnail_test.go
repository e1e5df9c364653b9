package tui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestThumbnailRenderSize(t *testing.T) {
	tests := []struct {
		name          string
		imgW, imgH    int
		width, height int
	}{
		{"square into wide cell", 20, 20, 8, 3},
		{"wide into square cell", 40, 10, 6, 6},
		{"tiny upscaled", 2, 2, 10, 4},
	}

	renderer := NewThumbnailRenderer(NewCache(4))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := renderer.Render(testPNG(t, tt.imgW, tt.imgH), tt.width, tt.height)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			lines := strings.Split(out, "\n")
			if len(lines) != tt.height {
				t.Fatalf("got %d lines, want %d", len(lines), tt.height)
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != tt.width {
					t.Errorf("line %d has width %d, want %d", i, w, tt.width)
				}
			}
		})
	}
}

func TestThumbnailRenderRejectsBadInput(t *testing.T) {
	renderer := NewThumbnailRenderer(NewCache(4))
	if _, err := renderer.Render([]byte("plain text"), 4, 2); err == nil {
		t.Error("expected an error for non-image data")
	}
	if _, err := renderer.Render(nil, 4, 2); err == nil {
		t.Error("expected an error for empty data")
	}
	if _, err := renderer.Render(testPNG(t, 4, 4), 0, 2); err == nil {
		t.Error("expected an error for a zero width")
	}
}

func TestRenderCachedStoresBySize(t *testing.T) {
	renderer := NewThumbnailRenderer(NewCache(4))
	data := testPNG(t, 8, 8)

	if _, err := renderer.RenderCached("/thumbnails/a.jpg", data, 4, 2); err != nil {
		t.Fatal(err)
	}
	if _, ok := renderer.Cached("/thumbnails/a.jpg", 4, 2); !ok {
		t.Error("rendered thumbnail not cached")
	}
	if _, ok := renderer.Cached("/thumbnails/a.jpg", 8, 4); ok {
		t.Error("cache hit for a different size")
	}
}

func TestGetImageInfo(t *testing.T) {
	renderer := NewThumbnailRenderer(NewCache(1))
	w, h, format, err := renderer.GetImageInfo(testPNG(t, 12, 7))
	if err != nil {
		t.Fatal(err)
	}
	if w != 12 || h != 7 || format != "png" {
		t.Errorf("got %dx%d %s", w, h, format)
	}
}
