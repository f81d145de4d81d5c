package display

import (
	"image/color"

	"midnight/internal/core/countdown"
	"midnight/internal/ui/animation"
	"midnight/internal/ui/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

const (
	digitSize = float32(72)
	labelSize = float32(13)
	colonSize = float32(54)
)

var (
	digitColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 102}
	colonColor = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
)

// Panel renders the four labeled digit groups of a countdown.
type Panel struct {
	engine   *animation.Engine
	presence animation.Presence
	groups   map[Unit]*group
	colons   []*canvas.Text
	parts    countdown.Parts
	frame    animation.Keyframe
	content  *fyne.Container
}

// New creates a panel showing all zeros.
func New(engine *animation.Engine) *Panel {
	panel := &Panel{
		engine:   engine,
		presence: animation.DigitPresence(),
		groups:   make(map[Unit]*group, len(Units)),
		frame:    animation.Keyframe{Opacity: 1, Scale: 1},
	}

	row := container.NewHBox()
	for i, unit := range Units {
		if i > 0 {
			colon := canvas.NewText(":", colonColor)
			colon.TextSize = colonSize
			colon.TextStyle = fyne.TextStyle{Monospace: true}
			panel.colons = append(panel.colons, colon)
			row.Add(container.NewVBox(colon))
		}
		g := newGroup(unit, panel.presence)
		panel.groups[unit] = g
		row.Add(g.box)
	}
	panel.content = container.NewCenter(row)
	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Parts returns the values currently shown.
func (panel *Panel) Parts() countdown.Parts {
	return panel.parts
}

// Text returns the glyph currently shown for unit.
func (panel *Panel) Text(unit Unit) string {
	g, ok := panel.groups[unit]
	if !ok {
		return ""
	}
	return g.current.Text
}

// SetParts shows new values. Text updates immediately; each changed group then
// plays its glyph swap.
func (panel *Panel) SetParts(parts countdown.Parts) {
	changes := Diff(panel.parts, parts)
	panel.parts = parts
	for _, change := range changes {
		panel.swap(change)
	}
}

// Apply sets the whole panel's visual state. The root view uses it for the
// screen transition.
func (panel *Panel) Apply(frame animation.Keyframe) {
	panel.frame = frame
	for _, colon := range panel.colons {
		colon.Color = style.Fade(colonColor, frame.Opacity)
		colon.TextSize = colonSize * frame.Scale
	}
	for _, unit := range Units {
		panel.groups[unit].render(frame)
	}
	panel.content.Refresh()
}

func (panel *Panel) swap(change Change) {
	g := panel.groups[change.Unit]
	g.leaving.Text = Format(change.Previous)
	g.current.Text = Format(change.Current)
	g.enter = panel.presence.Initial
	g.exit = panel.presence.Animate
	g.render(panel.frame)

	key := "digit:" + string(change.Unit)
	transition := panel.presence.Transition
	panel.engine.Play(key+":exit", panel.presence.Animate, panel.presence.Exit, transition,
		func(frame animation.Keyframe) {
			g.exit = frame
			g.render(panel.frame)
		}, nil)
	panel.engine.Play(key+":enter", panel.presence.Initial, panel.presence.Animate, transition,
		func(frame animation.Keyframe) {
			g.enter = frame
			g.render(panel.frame)
		}, nil)
}

// group is one labeled digit slot. The slot holds the entering glyph and the
// glyph that is leaving.
type group struct {
	unit    Unit
	current *canvas.Text
	leaving *canvas.Text
	label   *canvas.Text
	slot    *fyne.Container
	box     *fyne.Container
	enter   animation.Keyframe
	exit    animation.Keyframe
}

func newGroup(unit Unit, presence animation.Presence) *group {
	current := canvas.NewText(Format(0), digitColor)
	current.TextSize = digitSize
	current.TextStyle = fyne.TextStyle{Monospace: true}
	current.Alignment = fyne.TextAlignCenter

	leaving := canvas.NewText("", digitColor)
	leaving.TextSize = digitSize
	leaving.TextStyle = fyne.TextStyle{Monospace: true}
	leaving.Alignment = fyne.TextAlignCenter

	label := canvas.NewText(string(unit), labelColor)
	label.TextSize = labelSize
	label.Alignment = fyne.TextAlignCenter

	g := &group{
		unit:    unit,
		current: current,
		leaving: leaving,
		label:   label,
		enter:   presence.Animate,
		exit:    presence.Exit,
	}
	g.slot = container.New(&slotLayout{group: g}, leaving, current)
	g.box = container.NewVBox(g.slot, container.New(layout.NewCenterLayout(), label))
	g.render(animation.Keyframe{Opacity: 1, Scale: 1})
	return g
}

func (g *group) render(panel animation.Keyframe) {
	g.current.Color = style.Fade(digitColor, panel.Opacity*g.enter.Opacity)
	g.current.TextSize = digitSize * panel.Scale * g.enter.Scale
	g.leaving.Color = style.Fade(digitColor, panel.Opacity*g.exit.Opacity)
	g.leaving.TextSize = digitSize * panel.Scale * g.exit.Scale
	g.label.Color = style.Fade(labelColor, panel.Opacity)
	g.label.TextSize = labelSize * panel.Scale
	g.slot.Refresh()
	g.label.Refresh()
}

// slotLayout centers both glyphs in the slot, shifted by their frame offsets.
// The slot clips nothing; offsets stay within the glyph height.
type slotLayout struct {
	group *group
}

func (slot *slotLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	place := func(text *canvas.Text, offsetY float32) {
		textSize := text.MinSize()
		x := (size.Width - textSize.Width) / 2
		y := (size.Height-textSize.Height)/2 + offsetY
		text.Move(fyne.NewPos(x, y))
		text.Resize(textSize)
	}
	place(slot.group.current, slot.group.enter.OffsetY)
	place(slot.group.leaving, slot.group.exit.OffsetY)
}

func (slot *slotLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width := float32(0)
	height := float32(0)
	for _, object := range objects {
		size := object.MinSize()
		if size.Width > width {
			width = size.Width
		}
		if size.Height > height {
			height = size.Height
		}
	}
	return fyne.NewSize(width+16, height+8)
}
