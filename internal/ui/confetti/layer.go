package confetti

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Layer is a transparent widget that renders confetti bursts over whatever
// sits beneath it. It runs its own frame loop while particles are alive.
type Layer struct {
	widget.BaseWidget

	mu      sync.Mutex
	system  *System
	loop    *fyne.Animation
	running bool
}

// NewLayer creates an empty confetti layer.
func NewLayer() *Layer {
	layer := &Layer{
		system: NewSystem(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	layer.ExtendBaseWidget(layer)
	return layer
}

// Emit launches a burst.
func (layer *Layer) Emit(options Options) {
	size := layer.Size()
	layer.mu.Lock()
	layer.system.Spawn(options, float64(size.Width), float64(size.Height))
	startLoop := !layer.running
	layer.running = true
	layer.mu.Unlock()

	if startLoop {
		layer.startLoop()
	}
}

// Live returns the number of particles on screen.
func (layer *Layer) Live() int {
	layer.mu.Lock()
	defer layer.mu.Unlock()
	return layer.system.Len()
}

// Clear drops every particle and stops the frame loop.
func (layer *Layer) Clear() {
	layer.mu.Lock()
	layer.system = NewSystem(layer.system.rng)
	loop := layer.loop
	layer.loop = nil
	layer.running = false
	layer.mu.Unlock()

	if loop != nil {
		loop.Stop()
	}
	layer.Refresh()
}

func (layer *Layer) startLoop() {
	var loop *fyne.Animation
	loop = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick: func(float32) {
			layer.mu.Lock()
			if layer.loop != loop {
				layer.mu.Unlock()
				return
			}
			layer.system.Step()
			empty := layer.system.Len() == 0
			if empty {
				layer.running = false
				layer.loop = nil
			}
			layer.mu.Unlock()

			layer.Refresh()
			if empty {
				loop.Stop()
			}
		},
	}

	layer.mu.Lock()
	layer.loop = loop
	layer.mu.Unlock()
	loop.Start()
}

// CreateRenderer implements fyne.Widget.
func (layer *Layer) CreateRenderer() fyne.WidgetRenderer {
	return &layerRenderer{layer: layer}
}

type layerRenderer struct {
	layer   *Layer
	pieces  []*canvas.Rectangle
	objects []fyne.CanvasObject
}

func (renderer *layerRenderer) Layout(fyne.Size) {
	renderer.Refresh()
}

func (renderer *layerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (renderer *layerRenderer) Refresh() {
	renderer.layer.mu.Lock()
	particles := append([]Particle(nil), renderer.layer.system.Particles()...)
	renderer.layer.mu.Unlock()

	for len(renderer.pieces) < len(particles) {
		piece := canvas.NewRectangle(nil)
		renderer.pieces = append(renderer.pieces, piece)
	}
	renderer.objects = renderer.objects[:0]
	for i, particle := range particles {
		piece := renderer.pieces[i]
		piece.FillColor = particle.Tint()
		// Wobble flattens the piece to fake a tumbling rotation.
		height := particle.Size * (0.3 + 0.7*math.Abs(math.Cos(particle.Wobble)))
		piece.Resize(fyne.NewSize(float32(particle.Size), float32(height)))
		piece.Move(fyne.NewPos(float32(particle.X), float32(particle.Y)))
		piece.Show()
		renderer.objects = append(renderer.objects, piece)
		piece.Refresh()
	}
	for _, piece := range renderer.pieces[len(particles):] {
		piece.Hide()
	}
}

func (renderer *layerRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *layerRenderer) Destroy() {}
