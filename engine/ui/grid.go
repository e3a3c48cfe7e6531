package ui

import (
	"fmt"

	"github.com/metent/grus-gui-lib/engine/colors"
)

// ===== Cross-frame size memory =====

// gridMemory remembers, per grid, the widest cell seen in each column and
// the tallest cell seen in each row. It is stored in the Ctx store under
// the grid's ID and read back the next frame so every cell in a column
// can be given the same width before its content has been measured.
type gridMemory struct {
	ColWidths  []float32
	RowHeights []float32
}

func (m *gridMemory) colWidth(col int) (float32, bool) {
	if col < len(m.ColWidths) {
		return m.ColWidths[col], true
	}
	return 0, false
}

func (m *gridMemory) rowHeight(row int) (float32, bool) {
	if row < len(m.RowHeights) {
		return m.RowHeights[row], true
	}
	return 0, false
}

// setMinColWidth widens column col to at least w. Widths only ever grow
// within a frame; shrinking happens by the caller dropping the memory.
func (m *gridMemory) setMinColWidth(col int, w float32) {
	for len(m.ColWidths) <= col {
		m.ColWidths = append(m.ColWidths, 0)
	}
	m.ColWidths[col] = maxf(m.ColWidths[col], w)
}

func (m *gridMemory) setMinRowHeight(row int, h float32) {
	for len(m.RowHeights) <= row {
		m.RowHeights = append(m.RowHeights, 0)
	}
	m.RowHeights[row] = maxf(m.RowHeights[row], h)
}

// fullWidth is the total width of the grid, gaps included.
func (m *gridMemory) fullWidth(xSpacing float32) float32 {
	var sum float32
	for _, w := range m.ColWidths {
		sum += w
	}
	gaps := len(m.ColWidths) - 1
	if gaps < 0 {
		gaps = 0
	}
	return sum + float32(gaps)*xSpacing
}

func (m *gridMemory) equal(o *gridMemory) bool {
	if len(m.ColWidths) != len(o.ColWidths) || len(m.RowHeights) != len(o.RowHeights) {
		return false
	}
	for i, w := range m.ColWidths {
		if o.ColWidths[i] != w {
			return false
		}
	}
	for i, h := range m.RowHeights {
		if o.RowHeights[i] != h {
			return false
		}
	}
	return true
}

func (m *gridMemory) clone() gridMemory {
	return gridMemory{
		ColWidths:  append([]float32(nil), m.ColWidths...),
		RowHeights: append([]float32(nil), m.RowHeights...),
	}
}

// ===== Grid layout engine =====

// GridLayout places widgets left-to-right, top-to-bottom, keeping all
// cells in a column the same width and all cells in a row the same
// height. Sizes come from the previous frame's memory; on the first
// frame the grid guesses, measures, commits what it saw and requests a
// repaint, so the layout settles by the second frame.
//
// The caller drives it cell by cell: RequestRect predicts the space a
// widget may use, ReportMeasured places the measured widget and moves
// on, EndRow wraps to the next row, Close commits the memory.
type GridLayout struct {
	ctx   *Ctx
	style *Style
	id    ID

	isFirstFrame bool
	prev         gridMemory
	curr         gridMemory

	initialAvailable Rect
	region           *Region

	numColumns  int
	spacing     Vec2
	minCellSize Vec2
	maxCellSize Vec2
	striped     bool

	col    int
	row    int
	closed bool
}

func (l *GridLayout) prevColWidth(col int) float32 {
	if w, ok := l.prev.colWidth(col); ok {
		return w
	}
	return l.minCellSize.X
}

func (l *GridLayout) prevRowHeight(row int) float32 {
	if h, ok := l.prev.rowHeight(row); ok {
		return h
	}
	return l.minCellSize.Y
}

// WrapText reports whether cell content should wrap instead of growing
// the column without bound.
func (l *GridLayout) WrapText() bool {
	return finite(l.maxCellSize.X)
}

// RequestRect predicts the rectangle the next widget may occupy, before
// the widget has measured itself.
func (l *GridLayout) RequestRect() Rect {
	l.ensureOpen("RequestRect")
	l.ensureColumn()
	return l.availableRect()
}

func (l *GridLayout) availableRect() Rect {
	isLastColumn := l.numColumns > 0 && l.col+1 == l.numColumns

	var width float32
	switch {
	case isLastColumn && l.isFirstFrame:
		// The widths of the earlier columns are still unknown, so
		// stretching to the right edge would misplace everything for
		// one frame. Stay narrow until the memory exists.
		if w, ok := l.curr.colWidth(l.col); ok {
			width = w
		} else {
			width = l.minCellSize.X
		}
	case isLastColumn:
		width = minf(l.initialAvailable.Max.X-l.region.Cursor.Min.X, l.maxCellSize.X)
	case finite(l.maxCellSize.X):
		width = l.maxCellSize.X
	default:
		if w, ok := l.prev.colWidth(l.col); ok {
			width = w
		} else if w, ok := l.curr.colWidth(l.col); ok {
			width = w
		} else {
			width = l.minCellSize.X
		}
	}
	// Something above in this column may already be wider.
	if w, ok := l.curr.colWidth(l.col); ok {
		width = maxf(width, w)
	}

	available := l.region.MaxRect.Intersect(l.region.Cursor)
	height := l.region.MaxRect.Max.Y - available.Min.Y
	height = clampf(height, l.minCellSize.Y, l.maxCellSize.Y)

	return RectFromMinSize(available.Min, V2(width, height))
}

// nextCell is the frame rect for a widget of the given size: at least as
// wide as the column was last frame and as tall as the row was.
func (l *GridLayout) nextCell(cursor Rect, childSize Vec2) Rect {
	var width float32
	if w, ok := l.prev.colWidth(l.col); ok {
		width = w
	}
	height := l.prevRowHeight(l.row)
	size := childSize.Max(V2(width, height))
	return RectFromMinSize(cursor.Min, size)
}

// ReportMeasured places a widget of the given measured size into the
// current cell, records the size in this frame's memory and advances to
// the next column. It returns the rect the widget should paint into:
// left aligned and vertically centered within the cell.
func (l *GridLayout) ReportMeasured(childSize Vec2) Rect {
	l.ensureOpen("ReportMeasured")
	l.ensureColumn()
	assertNoNaN("grid cell size", childSize.X, childSize.Y)
	if childSize.X < 0 || childSize.Y < 0 {
		panic(fmt.Sprintf("ui: negative grid cell size %v x %v", childSize.X, childSize.Y))
	}

	frame := l.nextCell(l.region.Cursor, childSize)
	widget := alignLeftCenter(childSize, frame)
	l.advance(frame, widget)
	return widget
}

func (l *GridLayout) advance(frame, widget Rect) {
	// The frame rect already absorbed the widget, so growth is visible
	// only against what last frame predicted for this column and row.
	dbg := l.style.Debug
	tooWide := widget.Width() > l.prevColWidth(l.col)
	tooHigh := widget.Height() > l.prevRowHeight(l.row)
	if (dbg.ShowExpandWidth && tooWide) || (dbg.ShowExpandHeight && tooHigh) {
		l.paintOverflow(widget, dbg.ShowExpandWidth && tooWide, dbg.ShowExpandHeight && tooHigh)
	}

	// The frame already covers the placed widget and last frame's
	// column width, so the memory never shrinks mid-session.
	l.curr.setMinColWidth(l.col, maxf(frame.Width(), l.minCellSize.X))
	l.curr.setMinRowHeight(l.row, maxf(frame.Height(), l.minCellSize.Y))

	l.region.Cursor.Min.X += l.prevColWidth(l.col) + l.spacing.X
	l.col++
}

func (l *GridLayout) paintOverflow(widget Rect, wide, high bool) {
	l.ctx.strokeRect(widget, 1, colors.LightBlue)
	const thickness = 2.5
	stroke := colors.DarkRed
	if wide {
		l.ctx.R.DrawLine(widget.Min.X, widget.Min.Y, widget.Min.X, widget.Max.Y, thickness, stroke)
		l.ctx.R.DrawLine(widget.Min.X, widget.CenterY(), widget.Max.X, widget.CenterY(), thickness, stroke)
		l.ctx.R.DrawLine(widget.Max.X, widget.Min.Y, widget.Max.X, widget.Max.Y, thickness, stroke)
	}
	if high {
		l.ctx.R.DrawLine(widget.Min.X, widget.Min.Y, widget.Max.X, widget.Min.Y, thickness, stroke)
		l.ctx.R.DrawLine(widget.CenterX(), widget.Min.Y, widget.CenterX(), widget.Max.Y, thickness, stroke)
		l.ctx.R.DrawLine(widget.Min.X, widget.Max.Y, widget.Max.X, widget.Max.Y, thickness, stroke)
	}
}

// EndRow wraps to the start of the next row. For a striped grid this is
// also where the background for the coming row is painted, speculatively
// sized from last frame's memory.
func (l *GridLayout) EndRow() {
	l.ensureOpen("EndRow")

	rowHeight := l.minCellSize.Y
	if h, ok := l.curr.rowHeight(l.row); ok {
		rowHeight = h
	}

	l.region.Cursor.Min.X = l.initialAvailable.Min.X
	l.region.Cursor.Min.Y += l.spacing.Y + rowHeight

	l.col = 0
	l.row++

	if l.striped && l.row%2 == 1 {
		if height, ok := l.prev.rowHeight(l.row); ok {
			size := V2(l.prev.fullWidth(l.spacing.X), height)
			rect := RectFromMinSize(l.region.Cursor.Min, size)
			rect = rect.Expand(0, 0.5*l.spacing.Y)
			// A little sideways overshoot reads better against the
			// surrounding content.
			rect = rect.Expand(2, 0)
			l.ctx.fillRect(rect, l.style.Visuals.FaintBg)
		}
	}
}

// Close commits this frame's memory. If it differs from what the grid
// predicted with, the new memory is stored and a repaint is requested so
// the next frame can lay out with correct sizes.
func (l *GridLayout) Close() {
	l.ensureOpen("Close")
	l.closed = true
	if !l.curr.equal(&l.prev) {
		l.ctx.store.Insert(l.id, l.curr.clone())
		l.ctx.RequestRepaint()
	}
}

func (l *GridLayout) ensureOpen(op string) {
	if l.closed {
		panic("ui: grid " + op + " after Close")
	}
}

func (l *GridLayout) ensureColumn() {
	if l.numColumns > 0 && l.col >= l.numColumns {
		panic(fmt.Sprintf("ui: grid row already has %d cells, call EndRow first", l.numColumns))
	}
}

func alignLeftCenter(size Vec2, frame Rect) Rect {
	y := frame.Min.Y + 0.5*(frame.Height()-size.Y)
	return RectFromMinSize(V2(frame.Min.X, y), size)
}

// ===== Builder =====

// Grid configures a grid before it is shown. Zero columns means the row
// length is up to the caller and the last column never stretches.
//
//	ui.NewGrid("settings").NumColumns(2).Striped(true).Show(u, func(u *ui.UI) {
//		Label(u, "Name")
//		Label(u, name)
//		u.EndRow()
//	})
type Grid struct {
	id ID

	numColumns int
	startRow   int

	striped    bool
	stripedSet bool

	minColWidth  float32
	minColSet    bool
	minRowHeight float32
	minRowSet    bool
	maxColWidth  float32
	maxColSet    bool
	maxRowHeight float32
	maxRowSet    bool

	spacing    Vec2
	spacingSet bool
}

// NewGrid creates a grid builder. The source string identifies the
// grid's memory across frames and must be unique within the store.
func NewGrid(source string) Grid {
	return Grid{id: NewID(source)}
}

func (g Grid) NumColumns(n int) Grid {
	if n < 0 {
		panic("ui: negative grid column count")
	}
	g.numColumns = n
	return g
}

// Striped paints a faint background behind every odd row.
func (g Grid) Striped(striped bool) Grid {
	g.striped = striped
	g.stripedSet = true
	return g
}

func (g Grid) MinColWidth(w float32) Grid {
	assertFinitePositive("min column width", w)
	g.minColWidth = w
	g.minColSet = true
	return g
}

func (g Grid) MinRowHeight(h float32) Grid {
	assertFinitePositive("min row height", h)
	g.minRowHeight = h
	g.minRowSet = true
	return g
}

// MaxColWidth caps column width. Setting it also makes cell text wrap
// instead of widening the column.
func (g Grid) MaxColWidth(w float32) Grid {
	assertFinitePositive("max column width", w)
	g.maxColWidth = w
	g.maxColSet = true
	return g
}

// MaxRowHeight caps the height offered to a cell before measurement.
func (g Grid) MaxRowHeight(h float32) Grid {
	assertFinitePositive("max row height", h)
	g.maxRowHeight = h
	g.maxRowSet = true
	return g
}

func (g Grid) Spacing(x, y float32) Grid {
	assertNoNaN("grid spacing", x, y)
	if x < 0 || y < 0 {
		panic("ui: negative grid spacing")
	}
	g.spacing = V2(x, y)
	g.spacingSet = true
	return g
}

// StartRow offsets the stripe parity, for grids that render a window of
// a larger virtual table.
func (g Grid) StartRow(row int) Grid {
	if row < 0 {
		panic("ui: negative grid start row")
	}
	g.startRow = row
	return g
}

// Begin attaches the grid to u and returns the layout engine. Most
// callers want Show; Begin is for code that drives cells directly.
func (g Grid) Begin(u *UI) *GridLayout {
	st := u.ctx.Style

	spacing := st.Spacing.ItemSpacing
	if g.spacingSet {
		spacing = g.spacing
	}
	minCell := st.Spacing.InteractSize
	if g.minColSet {
		minCell.X = g.minColWidth
	}
	if g.minRowSet {
		minCell.Y = g.minRowHeight
	}
	maxCell := V2(Inf, Inf)
	if g.maxColSet {
		maxCell.X = g.maxColWidth
	}
	if g.maxRowSet {
		maxCell.Y = g.maxRowHeight
	}
	if maxCell.X < minCell.X || maxCell.Y < minCell.Y {
		panic("ui: grid max cell size below min")
	}
	striped := st.Visuals.Striped
	if g.stripedSet {
		striped = g.striped
	}

	prev := gridMemory{}
	isFirst := true
	if v, ok := u.ctx.store.Load(g.id); ok {
		if m, ok := v.(gridMemory); ok {
			prev = m
			isFirst = false
		}
	}

	maxRect, cursor := u.region.CurrentRectAndCursor()

	l := &GridLayout{
		ctx:              u.ctx,
		style:            st,
		id:               g.id,
		isFirstFrame:     isFirst,
		prev:             prev,
		initialAvailable: maxRect.Intersect(cursor),
		region:           &u.region,
		numColumns:       g.numColumns,
		spacing:          spacing,
		minCellSize:      minCell,
		maxCellSize:      maxCell,
		striped:          striped,
		row:              g.startRow,
	}
	u.grid = l
	return l
}

// Show runs add inside the grid and commits the memory afterwards. The
// parent cursor is advanced past the grid's content.
func (g Grid) Show(u *UI, add func(*UI)) {
	child := &UI{ctx: u.ctx, region: u.region}
	layout := g.Begin(child)
	add(child)
	layout.Close()
	u.region.Cursor.Min.Y = maxf(u.region.Cursor.Min.Y, child.region.Cursor.Min.Y)
}
