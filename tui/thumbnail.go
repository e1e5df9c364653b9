package tui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// canvasColor fills the letterbox around thumbnails that do not match the
// cell's aspect ratio.
var canvasColor = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}

type ThumbnailRenderer struct {
	cache *Cache
}

func NewThumbnailRenderer(cache *Cache) *ThumbnailRenderer {
	return &ThumbnailRenderer{cache: cache}
}

// Render draws image bytes as a block of width x height terminal cells. Each
// cell holds two vertical pixels using the upper half block glyph.
func (tr *ThumbnailRenderer) Render(data []byte, width, height int) (string, error) {
	if width < 1 || height < 1 {
		return "", fmt.Errorf("invalid thumbnail size %dx%d", width, height)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no image data")
	}
	if !filetype.IsImage(data) {
		return "", fmt.Errorf("data is not an image")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	pxHeight := height * 2
	fitted := imaging.Fit(img, width, pxHeight, imaging.Lanczos)
	canvas := imaging.PasteCenter(imaging.New(width, pxHeight, canvasColor), fitted)

	var sb strings.Builder
	for y := 0; y < pxHeight; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			top := canvas.NRGBAAt(x, y)
			bottom := canvas.NRGBAAt(x, y+1)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		sb.WriteString("\x1b[0m")
	}
	return sb.String(), nil
}

// RenderCached renders data for source unless the same source and size was
// rendered before.
func (tr *ThumbnailRenderer) RenderCached(source string, data []byte, width, height int) (string, error) {
	if rendered, ok := tr.cache.Get(source, width, height); ok {
		return rendered, nil
	}
	rendered, err := tr.Render(data, width, height)
	if err != nil {
		return "", err
	}
	tr.cache.Set(source, width, height, rendered)
	return rendered, nil
}

func (tr *ThumbnailRenderer) Cached(source string, width, height int) (string, bool) {
	return tr.cache.Get(source, width, height)
}

func (tr *ThumbnailRenderer) GetImageInfo(data []byte) (width, height int, format string, err error) {
	if len(data) == 0 {
		return 0, 0, "", fmt.Errorf("no image data")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", err
	}
	return cfg.Width, cfg.Height, format, nil
}

// PlaceholderBlock fills a width x height cell with a pattern. It stands in
// for thumbnails that have no source yet.
func PlaceholderBlock(width, height int, pattern string, theme *Theme) string {
	line := strings.Repeat(pattern, width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return theme.PlaceholderStyle.Render(strings.Join(lines, "\n"))
}

// LabelBlock centers label in a width x height cell.
func LabelBlock(width, height int, label string, style lipgloss.Style) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(truncate(label, width)))
}
