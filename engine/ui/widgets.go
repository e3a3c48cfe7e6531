package ui

import (
	"strings"

	"github.com/metent/grus-gui-lib/engine/colors"
)

// Basic widgets. Each one measures itself, asks the enclosing layout for
// space and paints into whatever rect it got back. Inside a grid the
// rect may be wider or taller than the measurement; the extra space is
// the column/row alignment at work.

// ===== Label =====

func Label(u *UI, text string) {
	st := u.Style()
	lines := []string{text}
	if wrapW := u.WrapWidth(); finite(wrapW) {
		lines = wrapLines(u.ctx.R, text, st.FontSize, wrapW)
	}

	var w, lineH float32
	for _, line := range lines {
		lw, lh := u.ctx.R.Measure(line, st.FontSize)
		w = maxf(w, lw)
		lineH = maxf(lineH, lh)
	}
	rect := u.AllocateSpace(V2(w, lineH*float32(len(lines))))

	y := rect.Min.Y
	for _, line := range lines {
		u.ctx.R.DrawText(rect.Min.X, y, line, st.FontSize, st.Visuals.Text)
		y += lineH
	}
}

// WeakLabel draws secondary text in the muted color.
func WeakLabel(u *UI, text string) {
	st := u.Style()
	w, h := u.ctx.R.Measure(text, st.FontSize)
	rect := u.AllocateSpace(V2(w, h))
	u.ctx.R.DrawText(rect.Min.X, rect.Min.Y, text, st.FontSize, st.Visuals.WeakText)
}

// wrapLines breaks text into lines no wider than maxW, greedily by word.
// A single word wider than maxW gets its own line rather than being cut.
func wrapLines(r Renderer, text string, size, maxW float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		cand := cur + " " + word
		if w, _ := r.Measure(cand, size); w > maxW {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = cand
	}
	return append(lines, cur)
}

// ===== Interaction =====

// interact runs the hot/active state machine for a widget occupying
// rect this frame. Returns whether the pointer is over the widget and
// whether a click (press and release inside) completed.
func (c *Ctx) interact(id ID, rect Rect) (hovered, clicked bool) {
	st := c.widgetState(id)
	hovered = rect.Contains(c.I.MouseX, c.I.MouseY)
	st.hot = hovered
	if hovered && c.I.MousePressed {
		st.active = true
	}
	if st.active && c.I.MouseReleased {
		clicked = hovered
		st.active = false
	}
	c.setWidgetState(id, st)
	return hovered, clicked
}

// ===== Button =====

// Button returns true on the frame the button is clicked. The source
// string must be stable across frames and unique among widgets.
func Button(u *UI, source, label string) bool {
	ctx := u.ctx
	st := u.Style()
	tw, th := ctx.R.Measure(label, st.FontSize)
	pad := st.Spacing.ButtonPad
	size := V2(tw+2*pad.X, th+2*pad.Y).Max(st.Spacing.InteractSize)
	rect := u.AllocateSpace(size)

	id := NewID(source)
	hovered, clicked := ctx.interact(id, rect)

	fill := st.Visuals.ButtonFill
	switch {
	case ctx.widgetState(id).active:
		fill = st.Visuals.ActiveFill
	case hovered:
		fill = st.Visuals.HoverFill
	}
	ctx.fillRect(rect, fill)
	ctx.R.DrawText(rect.CenterX()-tw*0.5, rect.CenterY()-th*0.5, label, st.FontSize, st.Visuals.Text)
	return clicked
}

// ===== Checkbox =====

// Checkbox toggles *checked on click and returns true when it changed.
func Checkbox(u *UI, source string, checked *bool, label string) bool {
	ctx := u.ctx
	st := u.Style()
	icon := st.Spacing.IconWidth
	tw, th := ctx.R.Measure(label, st.FontSize)
	size := V2(icon+st.Spacing.IconSpacing+tw, maxf(icon, th)).Max(st.Spacing.InteractSize)
	rect := u.AllocateSpace(size)

	id := NewID(source)
	hovered, clicked := ctx.interact(id, rect)
	if clicked {
		*checked = !*checked
	}

	stroke := st.Visuals.Stroke
	if hovered {
		stroke = colors.White
	}
	box := RectFromMinSize(V2(rect.Min.X, rect.CenterY()-icon*0.5), V2(icon, icon))
	ctx.strokeRect(box, 1, stroke)
	if *checked {
		// Check mark: two segments inside the box.
		inset := box.Expand(-icon*0.22, -icon*0.22)
		midX := inset.Min.X + inset.Width()*0.35
		ctx.R.DrawLine(inset.Min.X, inset.CenterY(), midX, inset.Max.Y, 2, st.Visuals.Selection)
		ctx.R.DrawLine(midX, inset.Max.Y, inset.Max.X, inset.Min.Y, 2, st.Visuals.Selection)
	}
	ctx.R.DrawText(box.Max.X+st.Spacing.IconSpacing, rect.CenterY()-th*0.5, label, st.FontSize, st.Visuals.Text)
	return clicked
}

// ===== Radio button =====

// RadioButton returns true when clicked; the caller updates its own
// selection. The "circle" is a diamond, the closest the quad batcher
// gets without a disc primitive.
func RadioButton(u *UI, source string, selected bool, label string) bool {
	ctx := u.ctx
	st := u.Style()
	icon := st.Spacing.IconWidth
	tw, th := ctx.R.Measure(label, st.FontSize)
	size := V2(icon+st.Spacing.IconSpacing+tw, maxf(icon, th)).Max(st.Spacing.InteractSize)
	rect := u.AllocateSpace(size)

	id := NewID(source)
	hovered, clicked := ctx.interact(id, rect)

	outer := st.Visuals.Stroke
	if hovered {
		outer = colors.White
	}
	cx := rect.Min.X + icon*0.5
	cy := rect.CenterY()
	const eighthTurn = 0.7853981633974483 // pi/4
	ctx.R.DrawQuad(cx, cy, icon*0.72, icon*0.72, outer, eighthTurn)
	ctx.R.DrawQuad(cx, cy, icon*0.58, icon*0.58, colors.DarkGray, eighthTurn)
	if selected {
		ctx.R.DrawQuad(cx, cy, icon*0.34, icon*0.34, st.Visuals.Selection, eighthTurn)
	}
	ctx.R.DrawText(rect.Min.X+icon+st.Spacing.IconSpacing, cy-th*0.5, label, st.FontSize, st.Visuals.Text)
	return clicked
}
