package plume

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plumekit/plume/internal/debug"
)

// frameMsg drives one validation-and-render pass.
type frameMsg time.Time

// appKeyMap holds the app-level key bindings.
type appKeyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

func defaultKeyMap() appKeyMap {
	return appKeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
	}
}

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for the validation loop.
// Default is 30 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithRoot adds a display object to the stage before the app starts.
func WithRoot(root DisplayObject) AppOption {
	return func(a *App) error {
		if root == nil {
			return fmt.Errorf("root must not be nil")
		}
		a.pendingRoot = root
		return nil
	}
}

// WithTheme sets the theme available through App.Theme. Default is
// DefaultTheme.
func WithTheme(t *Theme) AppOption {
	return func(a *App) error {
		if t == nil {
			return fmt.Errorf("theme must not be nil")
		}
		a.theme = t
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that runs before the app-level
// bindings. If the handler returns true, the key is consumed.
func WithGlobalKeyHandler(fn func(tea.KeyMsg) bool) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = fn
		return nil
	}
}

// WithQuitKeys replaces the default quit binding (q, ctrl+c).
func WithQuitKeys(keys ...string) AppOption {
	return func(a *App) error {
		if len(keys) == 0 {
			return fmt.Errorf("at least one quit key is required")
		}
		a.keys.Quit = key.NewBinding(key.WithKeys(keys...))
		return nil
	}
}

// WithoutAltScreen keeps the app in the main terminal buffer instead of the
// alternate screen.
func WithoutAltScreen() AppOption {
	return func(a *App) error {
		a.altScreen = false
		return nil
	}
}

// App hosts a Stage inside a terminal event loop. Each frame it advances
// the stage (scheduler tick plus validation pass) and repaints the display
// tree onto a canvas.
type App struct {
	stage  *Stage
	canvas *Canvas
	theme  *Theme
	focus  *FocusManager
	keys   appKeyMap

	frameDuration    time.Duration
	altScreen        bool
	globalKeyHandler func(tea.KeyMsg) bool
	pendingRoot      DisplayObject
}

// NewApp creates an app with a zero-sized stage. The stage takes the
// terminal's size once the event loop delivers it.
func NewApp(opts ...AppOption) (*App, error) {
	a := &App{
		stage:         NewStage(0, 0),
		canvas:        NewCanvas(0, 0),
		theme:         DefaultTheme(),
		focus:         NewFocusManager(),
		keys:          defaultKeyMap(),
		frameDuration: time.Second / 30,
		altScreen:     true,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("configuring app: %w", err)
		}
	}
	if a.pendingRoot != nil {
		a.stage.AddChild(a.pendingRoot)
		a.pendingRoot = nil
	}
	return a, nil
}

// Stage returns the hosted stage.
func (a *App) Stage() *Stage { return a.stage }

// Theme returns the app theme.
func (a *App) Theme() *Theme { return a.theme }

// Focus returns the keyboard focus manager. Register focusable controls to
// put them in the tab order.
func (a *App) Focus() *FocusManager { return a.focus }

// Run starts the terminal event loop and blocks until the app quits.
func (a *App) Run() error {
	var progOpts []tea.ProgramOption
	if a.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(a, progOpts...).Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.tickFrame()
}

func (a *App) tickFrame() tea.Cmd {
	return tea.Tick(a.frameDuration, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		debug.Log("window size %dx%d", msg.Width, msg.Height)
		a.stage.Resize(float64(msg.Width), float64(msg.Height))
		a.canvas = NewCanvas(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.globalKeyHandler != nil && a.globalKeyHandler(msg) {
			return a, nil
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Next):
			a.focus.Next()
		case key.Matches(msg, a.keys.Prev):
			a.focus.Prev()
		case key.Matches(msg, a.keys.Activate):
			a.focus.Activate()
		}
		return a, nil

	case frameMsg:
		a.stage.Advance()
		a.canvas.Clear()
		for _, child := range a.stage.Children() {
			RenderTree(a.canvas, child)
		}
		return a, a.tickFrame()
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	return a.canvas.String()
}
