package ui

// Region is the cursor/rectangle bookkeeping of an enclosing layout: the
// bounds content may occupy, and the insertion point where the next
// widget lands. The grid engine consults it once at open and then drives
// the cursor itself.
type Region struct {
	MaxRect Rect
	Cursor  Rect
}

func NewRegion(max Rect) Region {
	return Region{MaxRect: max, Cursor: max}
}

// CurrentRectAndCursor is the placement seam: drawable bounds plus the
// insertion point.
func (r *Region) CurrentRectAndCursor() (Rect, Rect) {
	return r.MaxRect, r.Cursor
}

// AvailableRect is what remains of the bounds at the current cursor.
func (r *Region) AvailableRect() Rect {
	return r.MaxRect.Intersect(r.Cursor)
}

// ===== UI: per-frame widget surface over a region =====

// UI is the ephemeral handle widgets draw through: a context, a region,
// and (inside Grid.Show) the grid negotiating cell sizes. A fresh UI is
// built every frame; only Ctx and its store persist.
type UI struct {
	ctx    *Ctx
	region Region
	grid   *GridLayout
}

func NewUI(ctx *Ctx, max Rect) *UI {
	assertNoNaN("ui bounds", max.Min.X, max.Min.Y, max.Max.X, max.Max.Y)
	return &UI{ctx: ctx, region: NewRegion(max)}
}

func (u *UI) Ctx() *Ctx     { return u.ctx }
func (u *UI) Style() *Style { return u.ctx.Style }
func (u *UI) InGrid() bool  { return u.grid != nil }
func (u *UI) Cursor() Rect  { return u.region.Cursor }
func (u *UI) MaxRect() Rect { return u.region.MaxRect }

// AvailableRect is the rectangle the next widget may use before it has
// measured itself. Inside a grid this is the engine's prediction from
// the previous frame's sizes; outside it is simply what is left of the
// region.
func (u *UI) AvailableRect() Rect {
	if u.grid != nil {
		return u.grid.RequestRect()
	}
	return u.region.AvailableRect()
}

// WrapWidth is the width text should wrap at, or +Inf when the layout
// places no hard limit.
func (u *UI) WrapWidth() float32 {
	if u.grid != nil {
		if !u.grid.WrapText() {
			return Inf
		}
		return u.grid.RequestRect().Width()
	}
	return u.region.AvailableRect().Width()
}

// AllocateSpace reserves room for a measured widget and moves the cursor.
// Returns the rect to paint into.
func (u *UI) AllocateSpace(desired Vec2) Rect {
	assertNoNaN("allocated size", desired.X, desired.Y)
	if u.grid != nil {
		return u.grid.ReportMeasured(desired)
	}
	// Plain top-down flow for non-grid content.
	r := RectFromMinSize(u.region.Cursor.Min, desired)
	u.region.Cursor.Min.Y = r.Max.Y + u.ctx.Style.Spacing.ItemSpacing.Y
	return r
}

// AddSpace inserts vertical blank space (non-grid layouts).
func (u *UI) AddSpace(amount float32) {
	if u.grid != nil {
		return
	}
	u.region.Cursor.Min.Y += amount
}

// EndRow closes the current grid row. Calling it outside a grid is a
// caller bug.
func (u *UI) EndRow() {
	if u.grid == nil {
		panic("ui: EndRow called outside a grid")
	}
	u.grid.EndRow()
}
