package tui

import (
	"fmt"
	"time"

	"tagGallery/gallery"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func (a *App) refresh() tea.Cmd {
	a.isLoading = true
	ctrl, ctx := a.ctrl, a.ctx
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			records, err := ctrl.FetchAll(ctx)
			return RefreshedMsg{Count: len(records), Error: err}
		},
	)
}

func (a *App) submitTag() tea.Cmd {
	if _, ok := a.ctrl.Selected(); !ok {
		return nil
	}
	a.ctrl.SetTagInput(a.tagEditor.Value())
	a.isLoading = true
	ctrl, ctx := a.ctrl, a.ctx
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			return TagActionDoneMsg{Error: ctrl.SubmitTag(ctx)}
		},
	)
}

func (a *App) deleteTag(chip gallery.TagChip) tea.Cmd {
	a.isLoading = true
	ctrl, ctx := a.ctrl, a.ctx
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			return TagActionDoneMsg{Error: ctrl.DeleteTag(ctx, chip.SHA256, chip.Text)}
		},
	)
}

// renameAll hands the answer from the confirmation modal to the controller.
func (a *App) renameAll(confirmed bool) tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	answer := func(string) bool { return confirmed }
	if !confirmed {
		ran, err := ctrl.RenameAll(ctx, answer)
		return func() tea.Msg { return RenameDoneMsg{Ran: ran, Error: err} }
	}
	a.isLoading = true
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			ran, err := ctrl.RenameAll(ctx, answer)
			return RenameDoneMsg{Ran: ran, Error: err}
		},
	)
}

// copySelected copies the selected record's name or full path. The clipboard
// helper may be an external process, so it runs off the event loop.
func (a *App) copySelected(fullPath bool) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		if fullPath {
			return CopiedMsg{Error: ctrl.CopyFullPath()}
		}
		return CopiedMsg{Error: ctrl.CopyFilename()}
	}
}

func (a *App) loadThumbnail(p gallery.Placeholder) tea.Cmd {
	client, renderer, ctx := a.fetcher, a.renderer, a.ctx
	geo := a.browser.Geometry()
	w, h := geo.ThumbWidth, geo.ThumbHeight
	return func() tea.Msg {
		if _, ok := renderer.Cached(p.Source, w, h); ok {
			return ThumbnailLoadedMsg{ID: p.ID, Source: p.Source}
		}
		data, err := client.FetchThumbnail(ctx, p.Source)
		if err == nil {
			_, err = renderer.RenderCached(p.Source, data, w, h)
		}
		return ThumbnailLoadedMsg{ID: p.ID, Source: p.Source, Error: err}
	}
}

// loadPreview fetches what the detail pane shows: the media itself for
// images and the thumbnail for videos.
func (a *App) loadPreview(detail gallery.Detail) tea.Cmd {
	a.preview = previewState{name: detail.Record.Name, loading: true}

	client, renderer, ctx := a.fetcher, a.renderer, a.ctx
	layout := a.layout.Calculate()
	w, h := layout.PreviewWidth, layout.PreviewHeight
	return func() tea.Msg {
		var data []byte
		var err error
		if detail.Kind == gallery.KindVideo {
			data, err = client.FetchThumbnail(ctx, detail.Record.ThumbnailURL)
		} else {
			data, err = client.FetchMedia(ctx, detail.Record.Name)
		}
		if err != nil {
			return PreviewLoadedMsg{Name: detail.Record.Name, Error: err}
		}

		content, err := renderer.Render(data, w, h)
		if err != nil {
			return PreviewLoadedMsg{Name: detail.Record.Name, Error: err}
		}
		info := formatFileSize(int64(len(data)))
		if width, height, format, err := renderer.GetImageInfo(data); err == nil {
			info = fmt.Sprintf("%dx%d %s, %s", width, height, format, info)
		}
		return PreviewLoadedMsg{Name: detail.Record.Name, Content: content, Info: info}
	}
}

func (a *App) openMedia(name string) tea.Cmd {
	target := a.fetcher.MediaURL(name)
	open := a.openURL
	return func() tea.Msg {
		logrus.WithField("url", target).Debug("Opening media")
		return MediaOpenedMsg{Name: name, Error: open(target)}
	}
}

// observe runs the lazy loader over the cells as currently laid out and starts
// a load for every placeholder that just received its source.
func (a *App) observe() tea.Cmd {
	if !a.layout.IsMinimumSize() {
		return nil
	}
	grid, _ := a.scene.Grid()
	if len(grid) == 0 {
		return nil
	}
	geo := a.browser.Geometry()
	loaded := a.ctrl.Observe(geo.ViewportHeight, geo.Bounds(grid, a.browser.ScrollRow()))

	cmds := make([]tea.Cmd, 0, len(loaded))
	for _, p := range loaded {
		a.scene.UpdatePlaceholder(p)
		a.inflight[p.ID] = true
		cmds = append(cmds, a.loadThumbnail(p))
	}
	return tea.Batch(cmds...)
}

// reloadEvicted fetches again the visible cells whose rendered thumbnail fell
// out of the cache. The lazy loader is not involved since the source is
// already assigned. A cell reloads at most once while it stays on screen.
func (a *App) reloadEvicted() []tea.Cmd {
	grid, _ := a.scene.Grid()
	geo := a.browser.Geometry()
	start, end := a.browser.VisibleRange()

	visible := make(map[int]bool, end-start)
	var cmds []tea.Cmd
	for i := start; i < min(end, len(grid)); i++ {
		p := grid[i]
		visible[p.ID] = true
		if p.Source == "" || p.Failed() || a.inflight[p.ID] || a.reloaded[p.ID] {
			continue
		}
		if _, ok := a.renderer.Cached(p.Source, geo.ThumbWidth, geo.ThumbHeight); ok {
			continue
		}
		logrus.WithFields(logrus.Fields{"id": p.ID, "source": p.Source}).Debug("Reloading evicted thumbnail")
		a.reloaded[p.ID] = true
		a.inflight[p.ID] = true
		cmds = append(cmds, a.loadThumbnail(p))
	}
	for id := range a.reloaded {
		if !visible[id] {
			delete(a.reloaded, id)
		}
	}
	return cmds
}

// toastTicks wakes the loop at each phase change of t so the status bar
// redraws.
func (a *App) toastTicks(t gallery.Toast) tea.Cmd {
	now := a.now()
	var cmds []tea.Cmd
	for _, at := range []time.Time{
		t.Created.Add(gallery.ToastFadeInDelay),
		t.Created.Add(gallery.ToastHold),
		t.RemoveAt(),
	} {
		cmds = append(cmds, tea.Tick(max(at.Sub(now), time.Millisecond), func(time.Time) tea.Msg {
			return ToastTickMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (a *App) setStatus(message string, seconds int) tea.Cmd {
	a.statusMessage = message
	a.statusTimeout++
	id := a.statusTimeout
	return tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return StatusTickMsg{ID: id}
	})
}
