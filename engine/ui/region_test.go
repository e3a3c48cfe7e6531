package ui

import "testing"

func TestFlowAllocationStacksDownward(t *testing.T) {
	ctx, _ := newTestCtx()
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(10, 20), V2(200, 200)))

	first := u.AllocateSpace(V2(50, 30))
	if first.Min != V2(10, 20) {
		t.Errorf("first rect at %+v, want region origin", first.Min)
	}

	second := u.AllocateSpace(V2(50, 30))
	wantY := float32(20 + 30 + 4) // previous bottom plus item spacing
	if second.Min.Y != wantY {
		t.Errorf("second rect at y=%v, want %v", second.Min.Y, wantY)
	}
}

func TestAddSpace(t *testing.T) {
	ctx, _ := newTestCtx()
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(200, 200)))

	u.AddSpace(25)
	r := u.AllocateSpace(V2(10, 10))
	if r.Min.Y != 25 {
		t.Errorf("rect at y=%v, want 25", r.Min.Y)
	}
}

func TestEndRowOutsideGridPanics(t *testing.T) {
	ctx, _ := newTestCtx()
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(200, 200)))

	defer func() {
		if recover() == nil {
			t.Error("EndRow outside a grid should panic")
		}
	}()
	u.EndRow()
}

func TestShowAdvancesParentCursorPastGrid(t *testing.T) {
	ctx, _ := newTestCtx()
	ctx.BeginFrame(Input{})
	u := NewUI(ctx, RectFromMinSize(V2(0, 0), V2(300, 300)))

	NewGrid("parent-advance").NumColumns(1).MinColWidth(0).MinRowHeight(0).Spacing(4, 4).Show(u, func(u *UI) {
		u.AllocateSpace(V2(50, 20))
		u.EndRow()
		u.AllocateSpace(V2(50, 20))
		u.EndRow()
	})

	// Two 20px rows, each followed by 4px spacing.
	after := u.AllocateSpace(V2(10, 10))
	if after.Min.Y != 48 {
		t.Errorf("content after the grid starts at y=%v, want 48", after.Min.Y)
	}
}
