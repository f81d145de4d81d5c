package screen

import (
	"image/color"
	"log/slog"

	"midnight/internal/core/countdown"
	"midnight/internal/core/stage"
	"midnight/internal/ui/animation"
	"midnight/internal/ui/celebration"
	"midnight/internal/ui/display"
	"midnight/internal/ui/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines the root window.
type Config struct {
	Title      string
	Footer     string
	Fullscreen bool
}

const (
	defaultWidth  = float32(960)
	defaultHeight = float32(560)
	screenKey     = "screen"
)

var (
	backgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	footerColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
)

// Window is the root view. It shows the digit display until the countdown
// completes and the celebration view afterwards, never both.
type Window struct {
	app         fyne.App
	window      fyne.Window
	config      Config
	stage       *stage.Stage
	sampler     *countdown.Sampler
	engine      *animation.Engine
	panel       *display.Panel
	celebration *celebration.View
	slot        *fyne.Container
	footer      *canvas.Text
	logger      *slog.Logger
	active      bool
	onClose     func()
}

// New creates the root window around a sampler and a celebration view.
func New(app fyne.App, config Config, sampler *countdown.Sampler, celebrationView *celebration.View, engine *animation.Engine, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	panel := display.New(engine)
	panel.Apply(animation.CountdownPresence().Initial)

	footer := canvas.NewText(style.Tracked(config.Footer), footerColor)
	footer.TextSize = 11
	footer.Alignment = fyne.TextAlignCenter

	slot := container.NewStack(panel.Content())
	footerBox := container.NewPadded(container.NewCenter(footer))
	root := container.NewStack(
		canvas.NewRectangle(backgroundColor),
		container.NewBorder(nil, footerBox, nil, nil, slot),
		celebrationView.Layer(),
	)
	window.SetContent(root)

	screen := &Window{
		app:         app,
		window:      window,
		config:      config,
		stage:       stage.New(logger),
		sampler:     sampler,
		engine:      engine,
		panel:       panel,
		celebration: celebrationView,
		slot:        slot,
		footer:      footer,
		logger:      logger.With("component", "screen"),
	}

	screen.stage.OnChange(func(stage.ViewState) {
		screen.showCelebration()
	})
	sampler.OnComplete(func() {
		fyne.Do(screen.complete)
	})
	window.SetCloseIntercept(func() {
		screen.Deactivate()
		if screen.onClose != nil {
			screen.onClose()
		}
		window.Close()
	})

	screen.applyWindowMode()
	return screen
}

// SetOnClose sets the handler run after the window is closed and the countdown
// released.
func (screen *Window) SetOnClose(handler func()) {
	screen.onClose = handler
}

// Activate shows the window, plays the countdown entrance and acquires the
// sampler's ticker.
func (screen *Window) Activate() {
	if screen.active {
		screen.window.Show()
		screen.window.RequestFocus()
		return
	}
	screen.active = true

	screen.window.Show()
	if screen.stage.State() == stage.StateCountdown {
		presence := animation.CountdownPresence()
		screen.engine.Play(screenKey, presence.Initial, presence.Animate, presence.Transition, screen.panel.Apply, nil)
	}

	events := screen.sampler.Subscribe(4)
	go func() {
		for event := range events {
			if event.Type != countdown.EventTick {
				continue
			}
			parts := event.Parts
			fyne.Do(func() {
				screen.panel.SetParts(parts)
			})
		}
	}()
	screen.sampler.Start()
}

// Deactivate releases the sampler's ticker and stops running transitions.
// Safe to call more than once.
func (screen *Window) Deactivate() {
	if !screen.active {
		return
	}
	screen.active = false
	screen.sampler.Stop()
	screen.celebration.Deactivate()
	screen.engine.StopAll()
	screen.logger.Info("countdown released",
		slog.String("state", string(screen.stage.State())),
		slog.Duration("remaining", screen.sampler.Remaining()))
}

// State returns the current view state.
func (screen *Window) State() stage.ViewState {
	return screen.stage.State()
}

// Show brings the window to front.
func (screen *Window) Show() {
	screen.window.Show()
	screen.window.RequestFocus()
}

func (screen *Window) complete() {
	screen.panel.SetParts(countdown.Parts{})
	screen.stage.Advance()
}

// showCelebration runs the exit of the countdown panel and only then mounts
// the celebration view and plays its entrance.
func (screen *Window) showCelebration() {
	outgoing := animation.CountdownPresence()
	screen.engine.Play(screenKey, outgoing.Animate, outgoing.Exit, outgoing.Transition, screen.panel.Apply, func() {
		incoming := animation.CelebrationPresence()
		screen.slot.Objects = []fyne.CanvasObject{screen.celebration.Content()}
		screen.slot.Refresh()
		screen.celebration.Activate()
		screen.engine.Play(screenKey, incoming.Initial, incoming.Animate, incoming.Transition, screen.celebration.Apply, nil)
	})
}

func (screen *Window) applyWindowMode() {
	if screen.config.Fullscreen {
		screen.window.SetFullScreen(true)
		return
	}
	screen.window.SetFullScreen(false)
	screen.window.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	screen.window.CenterOnScreen()
}
