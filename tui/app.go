package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tagGallery/config"
	"tagGallery/fetcher"
	"tagGallery/gallery"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type App struct {
	ctx       context.Context
	ctrl      *gallery.Controller
	fetcher   fetcher.GalleryFetcher
	scene     *Scene
	renderer  *ThumbnailRenderer
	browser   *GridBrowser
	tagEditor *TagEditor
	layout    *Layout
	theme     *Theme
	config    *config.Config
	openURL   func(string) error
	now       func() time.Time

	currentMode  Mode
	previousMode Mode

	filterInput textinput.Model
	spinner     spinner.Model
	preview     previewState

	gridSeq   int
	detailSeq int

	// Thumbnail loads in flight, and cells already reloaded after eviction
	// while they stayed on screen.
	inflight map[int]bool
	reloaded map[int]bool

	statusMessage string
	statusTimeout int
	isLoading     bool
}

func NewApp(ctx context.Context, cfg *config.Config, client fetcher.GalleryFetcher, clip gallery.Clipboard) *App {
	scene := NewScene()
	ctrl := gallery.NewController(client, scene, clip, gallery.Options{
		MediaBasePath: cfg.MediaBasePath,
		LazyMargin:    cfg.LazyLoadMargin,
		LazyThreshold: cfg.LazyLoadThreshold,
	})

	filter := textinput.New()
	filter.Prompt = IconSearch + " "
	filter.Placeholder = "Filter by tag..."
	filter.CharLimit = 128

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return &App{
		ctx:         ctx,
		ctrl:        ctrl,
		fetcher:     client,
		scene:       scene,
		renderer:    NewThumbnailRenderer(NewCache(cfg.ThumbnailCacheSize)),
		browser:     NewGridBrowser(),
		tagEditor:   NewTagEditor(),
		layout:      NewLayout(),
		theme:       DefaultTheme(),
		config:      cfg,
		openURL:     browser.OpenURL,
		now:         time.Now,
		currentMode: GridMode,
		filterInput: filter,
		spinner:     spin,
		inflight:    make(map[int]bool),
		reloaded:    make(map[int]bool),
	}
}

func (a *App) Init() tea.Cmd {
	return a.refresh()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.Update(msg.Width, msg.Height)
		if cmd := a.resize(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if cmd := a.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		if a.isLoading || a.preview.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case RefreshedMsg:
		a.isLoading = false
		if msg.Error == nil {
			cmds = append(cmds, a.setStatus(fmt.Sprintf("%s Loaded %d images", IconCheck, msg.Count), 2))
		}

	case TagActionDoneMsg:
		a.isLoading = false

	case RenameDoneMsg:
		a.isLoading = false
		switch {
		case !msg.Ran:
			cmds = append(cmds, a.setStatus("Rename cancelled", 2))
		case msg.Error == nil:
			cmds = append(cmds, a.setStatus(IconCheck+" Renamed all files", 3))
		}

	case CopiedMsg:
		if msg.Error == nil {
			logrus.Debug("Copied selection to clipboard")
		}

	case ThumbnailLoadedMsg:
		delete(a.inflight, msg.ID)
		if msg.Error != nil {
			logrus.WithError(msg.Error).WithFields(logrus.Fields{
				"id":     msg.ID,
				"source": msg.Source,
			}).Warn("Thumbnail failed to load")
			if p, ok := a.ctrl.ThumbnailFailed(msg.ID); ok {
				a.scene.UpdatePlaceholder(p)
			}
		}

	case PreviewLoadedMsg:
		if msg.Name == a.preview.name {
			a.preview = previewState{
				name:    msg.Name,
				content: msg.Content,
				info:    msg.Info,
				err:     msg.Error,
			}
			if msg.Error != nil {
				logrus.WithError(msg.Error).WithField("name", msg.Name).Warn("Preview failed to load")
			}
			if detail, _ := a.scene.Detail(); detail != nil && detail.Player != nil {
				detail.Player.LoadedMetadata()
			}
		}

	case MediaOpenedMsg:
		if msg.Error != nil {
			logrus.WithError(msg.Error).WithField("name", msg.Name).Error("Failed to open media")
			cmds = append(cmds, a.setStatus(IconCross+" Could not open "+msg.Name, 3))
		}

	case StatusTickMsg:
		if msg.ID == a.statusTimeout {
			a.statusMessage = ""
		}

	case ToastTickMsg:
		a.scene.Toasts(a.now())
	}

	cmds = append(cmds, a.sync()...)
	return a, tea.Batch(cmds...)
}

// sync pulls what the controller drew into the scene since the last update
// and starts the loads that follow from it.
func (a *App) sync() []tea.Cmd {
	var cmds []tea.Cmd

	grid, gridSeq := a.scene.Grid()
	a.browser.SetCount(len(grid))
	if gridSeq != a.gridSeq {
		a.gridSeq = gridSeq
		logrus.WithField("cells", len(grid)).Debug("Grid redrawn")
	}

	if detail, detailSeq := a.scene.Detail(); detailSeq != a.detailSeq && detail != nil {
		a.detailSeq = detailSeq
		a.tagEditor.LoadChips(detail.Tags)
		if detail.Record.Name != a.preview.name || a.preview.err != nil {
			cmds = append(cmds, a.loadPreview(*detail), a.spinner.Tick)
		} else if detail.Player != nil {
			detail.Player.LoadedMetadata()
		}
	}

	if a.scene.TakeClearTagInput() {
		a.tagEditor.Clear()
	}
	for _, t := range a.scene.TakeNewToasts() {
		cmds = append(cmds, a.toastTicks(t))
	}

	if cmd := a.observe(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return append(cmds, a.reloadEvicted()...)
}

// resize lays the grid out again and redraws the preview at its new size.
func (a *App) resize() tea.Cmd {
	layout := a.layout.Calculate()
	a.browser.SetGeometry(NewGridGeometry(
		layout.GridPanelWidth,
		layout.ContentHeight,
		a.config.ThumbnailWidth,
		a.config.ThumbnailHeight,
	))
	a.filterInput.Width = max(layout.GridPanelWidth-8, 10)
	a.tagEditor.input.Width = max(layout.DetailPanelWidth-8, 10)

	if detail, _ := a.scene.Detail(); detail != nil {
		return tea.Batch(a.loadPreview(*detail), a.spinner.Tick)
	}
	return nil
}

func (a *App) View() string {
	if !a.layout.IsMinimumSize() {
		return "Terminal too small. Minimum size: 60x20"
	}

	if err := a.scene.PendingError(); err != nil {
		return a.renderModal(
			a.theme.ErrorStyle.Render(IconCross+" "+gallery.UserMessage(err)),
			KeyHelp("Enter", "dismiss", a.theme),
			ColorError,
		)
	}

	switch a.currentMode {
	case HelpMode:
		return a.renderHelp()
	case ConfirmRenameMode:
		return a.renderModal(
			a.theme.WarningStyle.Render(gallery.RenamePrompt),
			KeyHelp("y", "rename", a.theme)+"  "+KeyHelp("n", "cancel", a.theme),
			ColorWarning,
		)
	}

	return a.renderMainView(a.layout.Calculate())
}

func (a *App) renderMainView(layout AdaptiveLayout) string {
	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderGridPanel(layout.GridPanelWidth, layout.ContentHeight),
		a.renderDetailPanel(layout.DetailPanelWidth, layout.ContentHeight),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainContent,
		a.renderStatusBar(),
	)
}

func (a *App) panelBorderColor(modes ...Mode) lipgloss.Color {
	for _, m := range modes {
		if a.currentMode == m {
			return ColorPrimary
		}
	}
	return ColorBorder
}

func (a *App) renderModal(body, hints string, border lipgloss.Color) string {
	width := min(a.layout.WindowWidth-4, 60)
	box := a.theme.ModalStyle.
		BorderForeground(border).
		Width(width).
		Render(lipgloss.NewStyle().Width(width-4).Render(body) + "\n\n" + hints)
	return lipgloss.Place(a.layout.WindowWidth, a.layout.WindowHeight, lipgloss.Center, lipgloss.Center, box)
}

func (a *App) renderStatusBar() string {
	theme := a.theme
	separator := theme.MutedTextStyle.Render(" │ ")

	var left string
	switch {
	case a.isLoading:
		left = a.spinner.View() + " Working..."
	case a.statusMessage != "":
		if strings.HasPrefix(a.statusMessage, IconCross) {
			left = theme.ErrorStyle.Render(a.statusMessage)
		} else if strings.HasPrefix(a.statusMessage, IconCheck) {
			left = theme.SuccessStyle.Render(a.statusMessage)
		} else {
			left = theme.NormalTextStyle.Render(a.statusMessage)
		}
	default:
		left = strings.Join(a.hints(), separator)
	}

	right := a.renderToasts()
	gap := a.layout.WindowWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(left, a.layout.WindowWidth)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderToasts() string {
	now := a.now()
	var out []string
	for _, t := range a.scene.Toasts(now) {
		switch t.Phase(now) {
		case gallery.ToastVisible:
			out = append(out, a.theme.ToastStyle.Render(t.Message))
		case gallery.ToastEntering, gallery.ToastFading:
			out = append(out, a.theme.ToastFadedStyle.Render(t.Message))
		}
	}
	return strings.Join(out, " ")
}

func (a *App) hints() []string {
	theme := a.theme
	switch a.currentMode {
	case TagListMode:
		return []string{
			KeyHelp("←→", "choose", theme),
			KeyHelp("d", "delete", theme),
			KeyHelp("a", "add", theme),
			KeyHelp("Tab", "grid", theme),
			KeyHelp("?", "help", theme),
		}
	case TagInputMode:
		return []string{
			KeyHelp("Type", "tag", theme),
			KeyHelp("Enter", "add", theme),
			KeyHelp("Esc", "done", theme),
		}
	case FilterMode:
		return []string{
			KeyHelp("Type", "filter", theme),
			KeyHelp("Enter", "done", theme),
			KeyHelp("Esc", "clear", theme),
		}
	}
	return []string{
		KeyHelp("←↑↓→", "move", theme),
		KeyHelp("Enter", "select", theme),
		KeyHelp("/", "filter", theme),
		KeyHelp("a", "tag", theme),
		KeyHelp("y/Y", "copy", theme),
		KeyHelp("?", "help", theme),
		KeyHelp("q", "quit", theme),
	}
}

func (a *App) renderHelp() string {
	return `╔══════════════════════════════════════════════════════════════╗
║                      tagGallery TUI Help                     ║
╠══════════════════════════════════════════════════════════════╣
║ Grid:                                                        ║
║   ←↑↓→, hjkl  Move between thumbnails                        ║
║   PgUp/PgDn   Page up/down                                   ║
║   Home/End    First/last thumbnail                           ║
║   Enter       Show the selected image                        ║
║   /           Filter by tag                                  ║
║   Esc         Clear the filter                               ║
║   r           Reload images from the server                  ║
║                                                              ║
║ Detail:                                                      ║
║   a           Add a tag                                      ║
║   Tab         Focus the tag list                             ║
║   d, x        Delete the focused tag                         ║
║   y           Copy filename                                  ║
║   Y           Copy full path                                 ║
║   Space, p    Play/pause video                               ║
║   o           Open media in the system viewer                ║
║                                                              ║
║ Global:                                                      ║
║   R           Rename all files by SHA256                     ║
║   ?           Show/hide this help                            ║
║   q, Ctrl+C   Quit application                               ║
╚══════════════════════════════════════════════════════════════╝

Press esc to return...`
}

func initLogging(cfg *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return err
	}
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     14,
	})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil && logrus.GetLevel() < level {
		logrus.SetLevel(level)
	}
	logrus.WithField("ts", time.Now().Format(time.RFC3339)).Info("tui session start")
	return nil
}

func Run(ctx context.Context, cfg *config.Config) error {
	if err := initLogging(cfg); err != nil {
		return err
	}
	// Viewer processes must not write over the terminal UI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	client, err := fetcher.NewGalleryFetcher(cfg.ServerURL, cfg.RequestTimeout)
	if err != nil {
		return err
	}

	app := NewApp(ctx, cfg, client, systemClipboard{})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}
