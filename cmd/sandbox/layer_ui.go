package main

import (
	"fmt"
	"time"

	"github.com/metent/grus-gui-lib/engine/colors"
	"github.com/metent/grus-gui-lib/engine/core"
	"github.com/metent/grus-gui-lib/engine/gfx/renderer2d"
	"github.com/metent/grus-gui-lib/engine/scene"
	"github.com/metent/grus-gui-lib/engine/text"
	"github.com/metent/grus-gui-lib/engine/ui"
)

// uiLayer exercises the immediate-mode UI: a settings form, a striped
// table and a date picker, all laid out by size-remembering grids. Watch
// the title bar while resizing: the repaint counter only moves while the
// layout is still settling.
type uiLayer struct {
	r2d  *renderer2d.Renderer2D
	font *text.Font
	cam  *scene.OrthoCamera2D
	ctx  *ui.Ctx

	// demo state
	playerName string
	muted      bool
	striped    bool
	quality    int
	birthday   time.Time

	repaints int
}

func newUILayer(e *core.Engine, fontPath string) (*uiLayer, error) {
	r2d, err := renderer2d.New(e.Renderer, 10000)
	if err != nil {
		return nil, fmt.Errorf("create 2d renderer: %w", err)
	}
	font, err := text.LoadTTF(e.Renderer, fontPath, 32)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", fontPath, err)
	}

	w, h := e.Window.FramebufferSize()
	l := &uiLayer{
		r2d:        r2d,
		font:       font,
		cam:        scene.NewScreenSpace(w, h),
		playerName: "grus",
		striped:    true,
		quality:    1,
		birthday:   time.Date(1997, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	l.ctx = ui.New(&painter{r2d: r2d, font: font}, nil)
	return l, nil
}

func (l *uiLayer) OnAttach(e *core.Engine) {}
func (l *uiLayer) OnDetach(e *core.Engine) { l.font.Close() }

func (l *uiLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *uiLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if rs, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(rs.W, rs.H)
		l.cam.SetPosition(float32(rs.W)*0.5, float32(rs.H)*0.5)
	}
	return false
}

func (l *uiLayer) OnRender(e *core.Engine, alpha float64) {
	mx, my := e.Input.Mouse()
	l.ctx.BeginFrame(ui.Input{
		MouseX:        float32(mx),
		MouseY:        float32(my),
		MouseDown:     e.Input.IsMouseDown(core.MouseLeft),
		MousePressed:  e.Input.WasMousePressed(core.MouseLeft),
		MouseReleased: e.Input.WasMouseReleased(core.MouseLeft),
	})

	l.r2d.BeginScene(l.cam.VP())

	w, h := e.Window.FramebufferSize()
	u := ui.NewUI(l.ctx, ui.RectFromMinSize(ui.V2(16, 16), ui.V2(float32(w)-32, float32(h)-32)))

	l.settingsForm(u)
	u.AddSpace(16)
	l.scoreTable(u)

	l.r2d.EndScene()

	// The grids commit their measurements at Close; if any of them saw
	// new sizes this frame the context owes a repaint. Forward it so the
	// run loop stays hot until the layout converges.
	if l.ctx.TakeRepaint() {
		l.repaints++
		e.RequestRepaint()
		e.Window.SetTitle(fmt.Sprintf("grus sandbox (layout passes: %d)", l.repaints))
	}
}

func (l *uiLayer) settingsForm(u *ui.UI) {
	// Rows may stop short of the column count; only the quality row
	// uses all four columns.
	ui.NewGrid("settings").NumColumns(4).Show(u, func(u *ui.UI) {
		ui.Label(u, "Player")
		ui.Label(u, l.playerName)
		u.EndRow()

		ui.Label(u, "Audio")
		ui.Checkbox(u, "settings/muted", &l.muted, "Muted")
		u.EndRow()

		ui.Label(u, "Quality")
		for i, name := range []string{"Low", "Medium", "High"} {
			if ui.RadioButton(u, "settings/q"+name, l.quality == i, name) {
				l.quality = i
			}
		}
		u.EndRow()

		ui.Label(u, "Birthday")
		ui.DatePicker(u, "settings/birthday", &l.birthday)
		u.EndRow()

		ui.Label(u, "Table")
		ui.Checkbox(u, "settings/striped", &l.striped, "Striped rows")
		u.EndRow()
	})
}

func (l *uiLayer) scoreTable(u *ui.UI) {
	rows := [...]struct {
		name  string
		score int
		note  string
	}{
		{"wren", 9421, "speedrun, no deaths"},
		{"ada", 8810, ""},
		{"kimchi", 7302, "co-op"},
		{"bolt", 5555, "older build"},
		{"momo", 1204, "first session, still figuring out the double jump"},
	}

	ui.NewGrid("scores").NumColumns(3).Striped(l.striped).MaxColWidth(340).Show(u, func(u *ui.UI) {
		ui.WeakLabel(u, "Name")
		ui.WeakLabel(u, "Score")
		ui.WeakLabel(u, "Note")
		u.EndRow()
		for _, r := range rows {
			ui.Label(u, r.name)
			ui.Label(u, fmt.Sprintf("%d", r.score))
			ui.Label(u, r.note)
			u.EndRow()
		}
	})
}

// painter adapts the batched 2D renderer and the font atlas to the UI's
// renderer seam.
type painter struct {
	r2d  *renderer2d.Renderer2D
	font *text.Font
}

func (p *painter) DrawQuad(cx, cy, w, h float32, color colors.Color, rotation float32) {
	p.r2d.DrawQuad(cx, cy, w, h, color, rotation)
}

func (p *painter) DrawLine(x0, y0, x1, y1, thickness float32, color colors.Color) {
	p.r2d.DrawLine(x0, y0, x1, y1, thickness, color)
}

func (p *painter) DrawText(x, y float32, s string, size float32, color colors.Color) {
	text.DrawText(p.r2d, p.font, x, y, s, size, color)
}

func (p *painter) Measure(s string, size float32) (float32, float32) {
	return text.MeasureText(p.font, s, size)
}
