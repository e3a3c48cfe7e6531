package ui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/metent/grus-gui-lib/engine/colors"
)

// fakeRenderer measures deterministically (width = chars * size/2,
// height = size) and records what gets painted.
type fakeRenderer struct {
	quads []quad
	lines int
	texts []string
}

type quad struct {
	CX, CY, W, H float32
}

func (f *fakeRenderer) DrawQuad(cx, cy, w, h float32, _ colors.Color, _ float32) {
	f.quads = append(f.quads, quad{cx, cy, w, h})
}

func (f *fakeRenderer) DrawLine(x0, y0, x1, y1, thickness float32, _ colors.Color) {
	f.lines++
}

func (f *fakeRenderer) DrawText(x, y float32, s string, size float32, _ colors.Color) {
	f.texts = append(f.texts, s)
}

func (f *fakeRenderer) Measure(s string, size float32) (float32, float32) {
	return float32(len(s)) * size * 0.5, size
}

func newTestCtx() (*Ctx, *fakeRenderer) {
	r := &fakeRenderer{}
	return New(r, nil), r
}

// runFrame opens g on a fresh 300x300 surface, reports the given cell
// sizes row by row, closes the grid and returns the committed memory
// plus whether the frame asked for a repaint.
func runFrame(t *testing.T, ctx *Ctx, g Grid, rows [][]Vec2) (gridMemory, bool) {
	t.Helper()
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l := g.Begin(u)
	for _, row := range rows {
		for _, size := range row {
			l.ReportMeasured(size)
		}
		l.EndRow()
	}
	l.Close()
	return l.curr, ctx.TakeRepaint()
}

func bareGrid(source string, cols int) Grid {
	return NewGrid(source).
		NumColumns(cols).
		MinColWidth(0).
		MinRowHeight(0).
		Spacing(4, 4)
}

func TestGridFirstFrameCommitsMeasuredSizes(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("g1", 2)

	rows := [][]Vec2{
		{V2(40, 20), V2(60, 20)},
		{V2(20, 20)},
	}
	mem, repaint := runFrame(t, ctx, g, rows)

	want := gridMemory{
		ColWidths:  []float32{40, 60},
		RowHeights: []float32{20, 20},
	}
	if diff := cmp.Diff(want, mem); diff != "" {
		t.Errorf("committed memory mismatch (-want +got):\n%s", diff)
	}
	if !repaint {
		t.Error("first frame measured new sizes but no repaint was requested")
	}
}

func TestGridConvergesOnSecondFrame(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("g1", 2)
	rows := [][]Vec2{
		{V2(40, 20), V2(60, 20)},
		{V2(20, 20)},
	}

	if _, repaint := runFrame(t, ctx, g, rows); !repaint {
		t.Fatal("first frame should request a repaint")
	}
	mem, repaint := runFrame(t, ctx, g, rows)
	if repaint {
		t.Error("second frame with identical content should not request a repaint")
	}
	want := gridMemory{
		ColWidths:  []float32{40, 60},
		RowHeights: []float32{20, 20},
	}
	if diff := cmp.Diff(want, mem); diff != "" {
		t.Errorf("memory changed on a content-identical frame (-want +got):\n%s", diff)
	}
}

func TestGridSingleRowScenario(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("g1-single", 2)

	mem, repaint := runFrame(t, ctx, g, [][]Vec2{{V2(40, 20), V2(60, 20)}})
	want := gridMemory{ColWidths: []float32{40, 60}, RowHeights: []float32{20}}
	if diff := cmp.Diff(want, mem); diff != "" {
		t.Fatalf("committed memory mismatch (-want +got):\n%s", diff)
	}
	if !repaint {
		t.Fatal("memory was absent, first close must request a repaint")
	}

	// Reopen with identical content: predictions now offer at least the
	// committed sizes, and the close is silent.
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l := g.Begin(u)
	if r := l.RequestRect(); r.Width() < 40 || r.Height() < 20 {
		t.Errorf("first cell prediction %vx%v, want at least 40x20", r.Width(), r.Height())
	}
	if r := l.ReportMeasured(V2(40, 20)); r.Size() != V2(40, 20) {
		t.Errorf("placed rect size %+v, want 40x20", r.Size())
	}
	if r := l.RequestRect(); r.Width() < 60 {
		t.Errorf("second cell prediction width %v, want at least 60", r.Width())
	}
	l.ReportMeasured(V2(60, 20))
	l.EndRow()
	l.Close()
	if ctx.TakeRepaint() {
		t.Error("identical reopen must not request a repaint")
	}
}

func TestGridMemoryNeverShrinks(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("shrink", 1)

	runFrame(t, ctx, g, [][]Vec2{{V2(100, 30)}})

	// The same cell now measures smaller. The committed sizes must hold
	// and no repaint is owed, since nothing changed.
	mem, repaint := runFrame(t, ctx, g, [][]Vec2{{V2(50, 10)}})
	want := gridMemory{ColWidths: []float32{100}, RowHeights: []float32{30}}
	if diff := cmp.Diff(want, mem); diff != "" {
		t.Errorf("memory shrank (-want +got):\n%s", diff)
	}
	if repaint {
		t.Error("repaint requested although the committed memory did not change")
	}
}

func TestGridMemoryGrowsWhenContentGrows(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("grow", 1)

	runFrame(t, ctx, g, [][]Vec2{{V2(50, 10)}})
	mem, repaint := runFrame(t, ctx, g, [][]Vec2{{V2(80, 10)}})

	want := gridMemory{ColWidths: []float32{80}, RowHeights: []float32{10}}
	if diff := cmp.Diff(want, mem); diff != "" {
		t.Errorf("memory did not grow (-want +got):\n%s", diff)
	}
	if !repaint {
		t.Error("growing content must request a repaint")
	}
}

func TestGridCommitIsIdempotent(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("idem", 2)
	rows := [][]Vec2{{V2(30, 15), V2(45, 15)}}

	runFrame(t, ctx, g, rows)
	entries := ctx.store.Len()
	for i := 0; i < 5; i++ {
		if _, repaint := runFrame(t, ctx, g, rows); repaint {
			t.Fatalf("frame %d: repaint requested on identical content", i+2)
		}
	}
	if got := ctx.store.Len(); got != entries {
		t.Errorf("store grew from %d to %d entries across identical frames", entries, got)
	}
}

func TestGridLastColumnFillsRemainingWidth(t *testing.T) {
	ctx, _ := newTestCtx()
	g := NewGrid("fill").NumColumns(3).MinColWidth(50).MinRowHeight(0).Spacing(4, 4)

	// First frame: the earlier column widths are unknown, so the last
	// column must not stretch.
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l := g.Begin(u)
	l.ReportMeasured(V2(10, 10))
	l.ReportMeasured(V2(10, 10))
	if got := l.RequestRect().Width(); got != 50 {
		t.Errorf("first frame last column width = %v, want min width 50", got)
	}
	l.ReportMeasured(V2(10, 10))
	l.EndRow()
	l.Close()
	ctx.TakeRepaint()

	// Second frame: two 50px columns plus two 4px gaps are spoken for,
	// the last column gets the rest of the 300px surface.
	ctx.BeginFrame(Input{})
	u = NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l = g.Begin(u)
	l.ReportMeasured(V2(10, 10))
	l.ReportMeasured(V2(10, 10))
	if got := l.RequestRect().Width(); got != 300-50-50-2*4 {
		t.Errorf("last column width = %v, want %v", got, 300-50-50-2*4)
	}
	l.ReportMeasured(V2(10, 10))
	l.EndRow()
	l.Close()
}

func TestGridMaxColWidthEnablesWrapping(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("wrap", 2).MaxColWidth(120)

	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l := g.Begin(u)
	if !l.WrapText() {
		t.Error("finite max column width should enable wrapping")
	}
	if got := l.RequestRect().Width(); got != 120 {
		t.Errorf("non-last column width = %v, want capped 120", got)
	}
}

func stripeRowCenters(r *fakeRenderer) []float32 {
	var ys []float32
	for _, q := range r.quads {
		ys = append(ys, q.CY)
	}
	return ys
}

func TestGridStripesOddRows(t *testing.T) {
	ctx, r := newTestCtx()
	g := bareGrid("stripes", 1).Striped(true)
	rows := [][]Vec2{
		{V2(50, 20)}, {V2(50, 20)}, {V2(50, 20)}, {V2(50, 20)},
	}

	// No memory yet: nothing to size the stripes with.
	runFrame(t, ctx, g, rows)
	if len(r.quads) != 0 {
		t.Fatalf("first frame painted %d stripes, want 0", len(r.quads))
	}

	runFrame(t, ctx, g, rows)
	// Rows are 20 high with 4 spacing; stripes cover rows 1 and 3,
	// expanded by half the vertical spacing on each side.
	want := []float32{24 - 2 + 12, 72 - 2 + 12}
	if diff := cmp.Diff(want, stripeRowCenters(r)); diff != "" {
		t.Errorf("stripe positions (-want +got):\n%s", diff)
	}
}

func TestGridStripeParityFollowsStartRow(t *testing.T) {
	ctx, r := newTestCtx()
	g := bareGrid("stripes-offset", 1).Striped(true).StartRow(1)
	rows := [][]Vec2{
		{V2(50, 20)}, {V2(50, 20)}, {V2(50, 20)}, {V2(50, 20)},
	}

	runFrame(t, ctx, g, rows)
	runFrame(t, ctx, g, rows)

	// Absolute row indices are 1..4, so the odd row entered mid-grid is
	// row 3, two rows down from the top.
	want := []float32{48 - 2 + 12}
	if diff := cmp.Diff(want, stripeRowCenters(r)); diff != "" {
		t.Errorf("stripe positions (-want +got):\n%s", diff)
	}
}

func TestGridColumnAlignment(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("align", 2)

	// Establish memory: column 0 is 80 wide.
	runFrame(t, ctx, g, [][]Vec2{
		{V2(80, 20), V2(30, 20)},
		{V2(10, 20), V2(30, 20)},
	})

	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l := g.Begin(u)
	l.ReportMeasured(V2(80, 20))
	l.EndRow()
	// Second row: the narrow cell is left-aligned inside the 80px
	// column, and the next cell starts past the full column width.
	got := l.ReportMeasured(V2(10, 20))
	if got.Min.X != 0 || got.Width() != 10 {
		t.Errorf("narrow cell rect = %+v, want left-aligned width 10", got)
	}
	next := l.RequestRect()
	if next.Min.X != 80+4 {
		t.Errorf("second column starts at %v, want %v", next.Min.X, 80+4)
	}
}

func TestGridVerticalCentering(t *testing.T) {
	ctx, _ := newTestCtx()
	g := bareGrid("center", 2)

	runFrame(t, ctx, g, [][]Vec2{{V2(40, 40), V2(40, 10)}})

	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
	l := g.Begin(u)
	l.ReportMeasured(V2(40, 40))
	short := l.ReportMeasured(V2(40, 10))
	// The 10px widget sits centered in the 40px row.
	if short.Min.Y != 15 || short.Height() != 10 {
		t.Errorf("short cell rect = %+v, want y=15 h=10", short)
	}
}

func TestGridOverflowDiagnostics(t *testing.T) {
	ctx, r := newTestCtx()
	ctx.Style.Debug.ShowExpandWidth = true
	ctx.Style.Debug.ShowExpandHeight = true
	g := NewGrid("overflow-debug").NumColumns(1).MinColWidth(30).MinRowHeight(10).Spacing(4, 4)

	// A cell matching the prediction draws no diagnostics.
	runFrame(t, ctx, g, [][]Vec2{{V2(30, 10)}})
	if r.lines != 0 {
		t.Fatalf("cell within the predicted size painted %d diagnostic lines", r.lines)
	}

	// The cell now outgrows last frame's 30x10 prediction on both axes:
	// 4 outline edges plus 3 marks per axis.
	runFrame(t, ctx, g, [][]Vec2{{V2(200, 80)}})
	if r.lines != 10 {
		t.Errorf("diagnostic line count = %d, want 10", r.lines)
	}
}

func TestGridOverflowDiagnosticsRespectAxisFlags(t *testing.T) {
	ctx, r := newTestCtx()
	ctx.Style.Debug.ShowExpandWidth = true
	g := NewGrid("overflow-width").NumColumns(1).MinColWidth(30).MinRowHeight(10).Spacing(4, 4)

	runFrame(t, ctx, g, [][]Vec2{{V2(30, 10)}})

	// Height-only growth stays quiet when only the width flag is set.
	runFrame(t, ctx, g, [][]Vec2{{V2(30, 80)}})
	if r.lines != 0 {
		t.Fatalf("height growth painted %d lines with only the width flag set", r.lines)
	}

	// Width growth paints the outline and the 3 width marks.
	runFrame(t, ctx, g, [][]Vec2{{V2(200, 80)}})
	if r.lines != 7 {
		t.Errorf("diagnostic line count = %d, want 7", r.lines)
	}
}

func TestGridContractPanics(t *testing.T) {
	expectPanic := func(t *testing.T, wantSub string, f func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic containing %q", wantSub)
			}
			if msg, ok := r.(string); ok && !strings.Contains(msg, wantSub) {
				t.Fatalf("panic %q does not mention %q", msg, wantSub)
			}
		}()
		f()
	}

	t.Run("too many cells in a row", func(t *testing.T) {
		ctx, _ := newTestCtx()
		u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
		l := bareGrid("overflow", 1).Begin(u)
		l.ReportMeasured(V2(10, 10))
		expectPanic(t, "EndRow", func() { l.ReportMeasured(V2(10, 10)) })
	})

	t.Run("use after close", func(t *testing.T) {
		ctx, _ := newTestCtx()
		u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
		l := bareGrid("closed", 1).Begin(u)
		l.Close()
		expectPanic(t, "Close", func() { l.ReportMeasured(V2(10, 10)) })
	})

	t.Run("NaN size", func(t *testing.T) {
		ctx, _ := newTestCtx()
		u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
		l := bareGrid("nan", 1).Begin(u)
		nan := Inf - Inf
		expectPanic(t, "NaN", func() { l.ReportMeasured(V2(nan, 10)) })
	})

	t.Run("negative size", func(t *testing.T) {
		ctx, _ := newTestCtx()
		u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))
		l := bareGrid("neg", 1).Begin(u)
		expectPanic(t, "negative", func() { l.ReportMeasured(V2(-1, 10)) })
	})
}

func TestSeparateGridsKeepSeparateMemory(t *testing.T) {
	ctx, _ := newTestCtx()
	a := bareGrid("grid-a", 1)
	b := bareGrid("grid-b", 1)

	memA, _ := runFrame(t, ctx, a, [][]Vec2{{V2(100, 10)}})
	memB, _ := runFrame(t, ctx, b, [][]Vec2{{V2(33, 10)}})

	if memA.ColWidths[0] == memB.ColWidths[0] {
		t.Error("grids with different identifiers share memory")
	}
	if ctx.store.Len() != 2 {
		t.Errorf("store has %d entries, want 2", ctx.store.Len())
	}
}
