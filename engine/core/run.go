package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
//
// The loop renders whenever a repaint is owed: input events, resizes and
// explicit Engine.RequestRepaint calls all mark the frame dirty. With
// nothing owed it parks on the event queue instead of spinning, which is
// what lets the incremental layout below converge over frames without
// burning a core while idle.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	dirty := true
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			if l.OnEvent(eng, ev) {
				handled = true
				return true
			}
			return false
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
		if rs, ok := ev.(EventResize); ok {
			if rs.W >= 1 && rs.H >= 1 {
				rend.Resize(rs.W, rs.H)
			}
		}
		dirty = true
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		if dirty {
			win.PollEvents()
		} else {
			// Nothing owed: block until input arrives (bounded so
			// timers/animations in updates still get a chance).
			win.WaitEventsTimeout(0.25)
		}

		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, float64(tick)/float64(time.Second))
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, float64(tick)/float64(time.Second)) })
			accum -= tick
			steps++
		}
		if accum >= tick {
			accum = 0
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		if dirty {
			rend.Clear(clear[0], clear[1], clear[2], clear[3])
			eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
			app.OnRender(eng, alpha)
			win.SwapBuffers()

			// A layer that handed out stale rects this frame asks for
			// another pass; keep the loop hot until it settles.
			dirty = eng.takeRepaint()
		}

		eng.Input.EndFrame()
	}

	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}
