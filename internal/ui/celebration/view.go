package celebration

import (
	"image/color"
	"log/slog"

	"midnight/internal/core/clock"
	"midnight/internal/core/model"
	"midnight/internal/ui/animation"
	"midnight/internal/ui/confetti"
	"midnight/internal/ui/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	headlineSize = float32(128)
	taglineSize  = float32(22)
	confettiKey  = "celebration:confetti"
)

var (
	headlineColor = color.NRGBA{R: 253, G: 224, B: 71, A: 255}
	taglineColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 153}
)

// View is the screen shown once the countdown has finished.
type View struct {
	engine   *animation.Engine
	clock    clock.Clock
	layer    *confetti.Layer
	burster  *Burster
	headline *canvas.Text
	tagline  *canvas.Text
	content  *fyne.Container
	logger   *slog.Logger
}

// New creates the celebration view. It stays inert until Activate.
func New(config model.CelebrationConfig, engine *animation.Engine, clk clock.Clock, logger *slog.Logger) *View {
	if clk == nil {
		clk = clock.System
	}
	if logger == nil {
		logger = slog.Default()
	}

	headline := canvas.NewText(config.Headline, headlineColor)
	headline.TextSize = headlineSize
	headline.TextStyle = fyne.TextStyle{Bold: true}
	headline.Alignment = fyne.TextAlignCenter

	tagline := canvas.NewText(style.Tracked(config.Tagline), taglineColor)
	tagline.TextSize = taglineSize
	tagline.Alignment = fyne.TextAlignCenter

	layer := confetti.NewLayer()
	view := &View{
		engine:   engine,
		clock:    clk,
		layer:    layer,
		burster:  NewBurster(layer, config.Window, logger),
		headline: headline,
		tagline:  tagline,
		content:  container.NewCenter(container.NewVBox(headline, tagline)),
		logger:   logger.With("component", "celebration"),
	}
	view.Apply(animation.CelebrationPresence().Initial)
	return view
}

// Content returns the headline block.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Layer returns the confetti surface, meant to sit above every other object.
func (view *View) Layer() fyne.CanvasObject {
	return view.layer
}

// Activate opens the emission window and starts the per-frame burst loop.
// The loop ends on its own when the window closes.
func (view *View) Activate() {
	view.burster.Begin(view.clock.Now())
	view.engine.Frames(confettiKey, view.clock.Now, view.burster.Frame)
}

// Deactivate closes the emission window, stops the burst loop and drops the
// particles still on screen.
func (view *View) Deactivate() {
	view.burster.Stop()
	view.engine.Stop(confettiKey)
	if live := view.layer.Live(); live > 0 {
		view.logger.Debug("dropping confetti", slog.Int("particles", live))
	}
	view.layer.Clear()
}

// Celebrating reports whether bursts are still being emitted.
func (view *View) Celebrating() bool {
	return view.burster.Active()
}

// Apply sets the view's visual state.
func (view *View) Apply(frame animation.Keyframe) {
	view.headline.Color = style.Fade(headlineColor, frame.Opacity)
	view.headline.TextSize = headlineSize * frame.Scale
	view.tagline.Color = style.Fade(taglineColor, frame.Opacity)
	view.tagline.TextSize = taglineSize * frame.Scale
	view.content.Refresh()
}
