package gallery

import (
	"context"
	"strings"
	"sync"
	"time"

	"tagGallery/utils"

	"github.com/sirupsen/logrus"
)

// RenamePrompt is asked before the bulk rename runs.
const RenamePrompt = "Are you sure you want to rename all files by SHA256? This cannot be undone."

// Client is the backend surface the controller drives.
type Client interface {
	FetchAll(ctx context.Context) ([]MediaRecord, error)
	AddTag(ctx context.Context, sha, tag string) error
	DeleteTag(ctx context.Context, sha, tag string) error
	RenameAll(ctx context.Context) error
}

type Options struct {
	// MediaBasePath is prepended to file names by CopyFullPath.
	MediaBasePath string
	// LazyMargin is taken as given; zero loads only cells inside the viewport.
	LazyMargin    int
	LazyThreshold float64
	Now           func() time.Time
}

// Controller owns the UI state: the record cache, the selection, the grid and
// its lazy loader. Its methods may be called from any goroutine; the view is
// never called while the state lock is held.
type Controller struct {
	client    Client
	view      View
	clipboard Clipboard
	basePath  string
	now       func() time.Time

	mu       sync.Mutex
	records  []MediaRecord
	selected *MediaRecord
	grid     []*Placeholder
	lazy     *LazyLoader
	nextID   int
	filter   string
	tagInput string

	fetchSeq   uint64
	appliedSeq uint64
}

func NewController(client Client, view View, clipboard Clipboard, opts Options) *Controller {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		client:    client,
		view:      view,
		clipboard: clipboard,
		basePath:  opts.MediaBasePath,
		now:       now,
		lazy:      NewLazyLoader(opts.LazyMargin, opts.LazyThreshold),
	}
}

// Records returns a copy of the cache.
func (c *Controller) Records() []MediaRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneRecords(c.records)
}

func (c *Controller) Record(sha string) (MediaRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(sha)
}

func (c *Controller) findLocked(sha string) (MediaRecord, bool) {
	for _, r := range c.records {
		if r.SHA256 == sha {
			return r.clone(), true
		}
	}
	return MediaRecord{}, false
}

func (c *Controller) Selected() (MediaRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return MediaRecord{}, false
	}
	return c.selected.clone(), true
}

func (c *Controller) Grid() []Placeholder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gridSnapshotLocked()
}

func (c *Controller) gridSnapshotLocked() []Placeholder {
	out := make([]Placeholder, len(c.grid))
	for i, p := range c.grid {
		out[i] = *p
		out[i].Record = p.Record.clone()
	}
	return out
}

func (c *Controller) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *Controller) SetTagInput(value string) {
	c.mu.Lock()
	c.tagInput = value
	c.mu.Unlock()
}

func (c *Controller) TagInput() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tagInput
}

// FetchAll loads the collection and, unless a newer fetch has already been
// applied, replaces the cache and redraws the grid.
func (c *Controller) FetchAll(ctx context.Context) ([]MediaRecord, error) {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	records, err := c.client.FetchAll(ctx)
	if err != nil {
		ferr := &FetchError{Err: err}
		logrus.WithError(err).Error("Failed to fetch images")
		c.view.Notify(ferr)
		return nil, ferr
	}

	c.mu.Lock()
	if seq < c.appliedSeq {
		logrus.WithFields(logrus.Fields{"seq": seq, "applied": c.appliedSeq}).Debug("Discarding stale image list")
		current := cloneRecords(c.records)
		c.mu.Unlock()
		return current, nil
	}
	c.appliedSeq = seq
	c.records = cloneRecords(records)
	c.lazy.Initialize()
	grid := c.renderGridLocked(FilterByTag(c.records, c.filter))
	c.mu.Unlock()

	logrus.WithField("count", len(records)).Debug("Image list refreshed")
	c.view.RenderGrid(grid)
	return cloneRecords(records), nil
}

// RenderGrid rebuilds the grid from records in order.
func (c *Controller) RenderGrid(records []MediaRecord) {
	c.mu.Lock()
	grid := c.renderGridLocked(records)
	c.mu.Unlock()
	c.view.RenderGrid(grid)
}

func (c *Controller) renderGridLocked(records []MediaRecord) []Placeholder {
	c.lazy.Disconnect()
	c.grid = make([]*Placeholder, 0, len(records))
	for _, r := range records {
		kind := r.Kind()
		p := &Placeholder{
			ID:       c.nextID,
			Record:   r.clone(),
			Kind:     kind,
			PlayIcon: kind == KindVideo,
		}
		c.nextID++
		c.grid = append(c.grid, p)
		c.lazy.Register(p)
	}
	return c.gridSnapshotLocked()
}

// ApplyFilter redraws the grid with the records whose tags contain query.
func (c *Controller) ApplyFilter(query string) {
	query = strings.TrimSpace(query)
	c.mu.Lock()
	c.filter = query
	grid := c.renderGridLocked(FilterByTag(c.records, query))
	c.mu.Unlock()
	c.view.RenderGrid(grid)
}

// Observe runs lazy loading for the current grid and returns the placeholders
// whose sources were just assigned.
func (c *Controller) Observe(viewportHeight int, bounds map[int]Rect) []Placeholder {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := c.lazy.Observe(viewportHeight, bounds)
	loaded := make([]Placeholder, 0, len(ids))
	for _, id := range ids {
		if p := c.placeholderLocked(id); p != nil {
			loaded = append(loaded, *p)
		}
	}
	return loaded
}

// ThumbnailFailed swaps the failed source for the error image.
func (c *Controller) ThumbnailFailed(id int) (Placeholder, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.placeholderLocked(id)
	if p == nil {
		return Placeholder{}, false
	}
	p.Source = ErrorThumbnailURL
	return *p, true
}

func (c *Controller) placeholderLocked(id int) *Placeholder {
	for _, p := range c.grid {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Select shows the detail of the record behind a placeholder.
func (c *Controller) Select(id int) bool {
	c.mu.Lock()
	p := c.placeholderLocked(id)
	var record MediaRecord
	if p != nil {
		record = p.Record.clone()
	}
	c.mu.Unlock()

	if p == nil {
		return false
	}
	c.ShowDetail(record)
	return true
}

func (c *Controller) ShowDetail(record MediaRecord) {
	record = record.clone()
	c.mu.Lock()
	c.selected = &record
	c.mu.Unlock()

	kind := record.Kind()
	detail := Detail{
		Record:   record,
		Kind:     kind,
		MediaURL: record.MediaPath(),
		Caption:  record.Name,
		Tags:     RenderTagList(record.TagList(), record.SHA256),
	}
	if kind == KindVideo {
		detail.Player = NewPlayer()
	}
	c.view.RenderDetail(detail)
}

// RenderTagList builds one chip per tag bound to sha.
func RenderTagList(tags []string, sha string) []TagChip {
	chips := make([]TagChip, 0, len(tags))
	for _, t := range tags {
		chips = append(chips, TagChip{Text: t, SHA256: sha})
	}
	return chips
}

// SubmitTag adds the trimmed tag input to the selected record.
func (c *Controller) SubmitTag(ctx context.Context) error {
	c.mu.Lock()
	var sha string
	if c.selected != nil {
		sha = c.selected.SHA256
	}
	tag := strings.TrimSpace(c.tagInput)
	c.mu.Unlock()
	return c.AddTag(ctx, sha, tag)
}

func (c *Controller) AddTag(ctx context.Context, sha, tag string) error {
	return c.tagAction(ctx, ActionAdd, sha, tag)
}

func (c *Controller) DeleteTag(ctx context.Context, sha, tag string) error {
	return c.tagAction(ctx, ActionDelete, sha, tag)
}

func (c *Controller) tagAction(ctx context.Context, action TagAction, sha, tag string) error {
	if sha == "" || tag == "" {
		return nil
	}

	entry := logrus.WithFields(logrus.Fields{"action": action, "sha": sha, "tag": tag})
	entry.Info("Tag action")

	var err error
	if action == ActionAdd {
		err = c.client.AddTag(ctx, sha, tag)
	} else {
		err = c.client.DeleteTag(ctx, sha, tag)
	}
	if err != nil {
		terr := &TagActionError{Action: action, SHA256: sha, Tag: tag, Err: err}
		entry.WithError(err).Error("Tag action failed")
		c.view.Notify(terr)
		return terr
	}

	if action == ActionAdd {
		c.mu.Lock()
		c.tagInput = ""
		c.mu.Unlock()
		c.view.ClearTagInput()
	}
	return c.refreshDetail(ctx, sha)
}

func (c *Controller) refreshDetail(ctx context.Context, sha string) error {
	if _, err := c.FetchAll(ctx); err != nil {
		return err
	}
	if found, ok := c.Record(sha); ok {
		c.ShowDetail(found)
	}
	return nil
}

func (c *Controller) Copy(text string) error {
	if err := c.clipboard.WriteAll(text); err != nil {
		cerr := &ClipboardError{Err: err}
		logrus.WithError(err).Error("Failed to copy text")
		c.view.Notify(cerr)
		return cerr
	}
	logrus.WithField("text", text).Debug("Copied to clipboard")
	c.view.ShowToast(NewToast("Copied!", c.now()))
	return nil
}

func (c *Controller) CopyFilename() error {
	selected, ok := c.Selected()
	if !ok {
		c.view.Notify(ErrNoSelection)
		return ErrNoSelection
	}
	return c.Copy(selected.Name)
}

func (c *Controller) CopyFullPath() error {
	selected, ok := c.Selected()
	if !ok {
		c.view.Notify(ErrNoSelection)
		return ErrNoSelection
	}
	return c.Copy(utils.FullPath(c.basePath, selected.Name))
}

// RenameAll asks for confirmation, then renames every stored file on the
// server and reloads the cache. It reports false when the user declined.
func (c *Controller) RenameAll(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if confirm == nil || !confirm(RenamePrompt) {
		logrus.Info("Rename cancelled")
		return false, nil
	}

	if err := c.client.RenameAll(ctx); err != nil {
		rerr := &RenameError{Err: err}
		logrus.WithError(err).Error("Rename failed")
		c.view.Notify(rerr)
		return true, rerr
	}

	logrus.Info("Renamed all files")
	if _, err := c.FetchAll(ctx); err != nil {
		return true, err
	}
	return true, nil
}
