package ui

import "github.com/metent/grus-gui-lib/engine/colors"

// ===== Engine-facing seams =====

// Renderer is what the UI needs from the engine to paint and to measure
// text. The sandbox backs it with the batched 2D renderer; tests back it
// with a deterministic stub.
type Renderer interface {
	// Draws a solid quad centered at (cx, cy) with w,h
	DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32)
	// Draws a segment of the given thickness
	DrawLine(x0, y0, x1, y1, thickness float32, color colors.Color)
	// Draws text top-left at (x,y)
	DrawText(x, y float32, text string, size float32, color colors.Color)
	// Measures text (w,h) for a given font size
	Measure(text string, size float32) (w, h float32)
}

// Input is the per-frame pointer state widgets react to.
type Input struct {
	MouseX, MouseY float32
	MouseDown      bool
	MousePressed   bool
	MouseReleased  bool
}

// ===== Immediate-UI context =====

type widgetState struct {
	hot    bool
	active bool
}

// Ctx carries everything that outlives a single frame: the renderer and
// input seams, the style, the cross-frame store and the widget
// interaction states. One Ctx per window.
type Ctx struct {
	R     Renderer
	I     Input
	Style *Style

	store *Store

	// Stable widget state (hot/active); fills once, then steady.
	state map[ID]widgetState

	repaint bool
}

func New(r Renderer, store *Store) *Ctx {
	if store == nil {
		store = NewStore()
	}
	return &Ctx{
		R:     r,
		Style: DefaultStyle(),
		store: store,
		state: make(map[ID]widgetState, 256),
	}
}

// BeginFrame installs the frame's input snapshot and clears the owed
// repaint from the previous pass.
func (c *Ctx) BeginFrame(in Input) {
	c.I = in
	c.repaint = false
}

// Store exposes the cross-frame state, e.g. for custom widgets.
func (c *Ctx) Store() *Store { return c.store }

// RequestRepaint signals that sizes handed out this frame were stale and
// the host should run another pass.
func (c *Ctx) RequestRepaint() { c.repaint = true }

// TakeRepaint reports and clears the owed repaint. The host calls this
// once after the frame.
func (c *Ctx) TakeRepaint() bool {
	r := c.repaint
	c.repaint = false
	return r
}

func (c *Ctx) widgetState(id ID) widgetState        { return c.state[id] }
func (c *Ctx) setWidgetState(id ID, st widgetState) { c.state[id] = st }

// ===== Painting helpers over the Renderer seam =====

func (c *Ctx) fillRect(r Rect, color colors.Color) {
	if r.Width() <= 0 || r.Height() <= 0 || color[3] <= 0 {
		return
	}
	c.R.DrawQuad(r.CenterX(), r.CenterY(), r.Width(), r.Height(), color, 0)
}

func (c *Ctx) strokeRect(r Rect, thickness float32, color colors.Color) {
	c.R.DrawLine(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, thickness, color)
	c.R.DrawLine(r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, thickness, color)
	c.R.DrawLine(r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, thickness, color)
	c.R.DrawLine(r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, thickness, color)
}
