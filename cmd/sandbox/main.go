package main

import (
	"flag"
	"log"

	"github.com/metent/grus-gui-lib/engine/core"
	glbackend "github.com/metent/grus-gui-lib/engine/gfx/gl"
	"github.com/metent/grus-gui-lib/engine/platform"
)

func main() {
	fontPath := flag.String("font", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "path to a TTF font")
	flag.Parse()

	cfg := core.Config{
		Title:      "grus sandbox",
		Width:      960,
		Height:     640,
		VSync:      true,
		ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
	}

	app := &sandboxApp{fontPath: *fontPath}
	err := core.Run(app, cfg,
		func(cfg core.Config) (core.Window, error) {
			return platform.NewGLFWWindow(cfg, nil)
		},
		func(win core.Window, cfg core.Config) (core.Renderer, error) {
			return glbackend.NewRendererGL(win, cfg)
		},
	)
	if err != nil {
		log.Fatalf("sandbox: %v", err)
	}
}

type sandboxApp struct {
	fontPath string
	ui       *uiLayer
}

func (a *sandboxApp) OnStart(e *core.Engine) {
	log.Printf("GPU: %s / %s / %s", e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion())

	l, err := newUILayer(e, a.fontPath)
	if err != nil {
		log.Fatalf("sandbox: %v", err)
	}
	a.ui = l
	e.Layers.Push(l)
	l.OnAttach(e)
}

func (a *sandboxApp) OnUpdate(e *core.Engine, dt float64)    {}
func (a *sandboxApp) OnRender(e *core.Engine, alpha float64) {}

func (a *sandboxApp) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *sandboxApp) OnShutdown(e *core.Engine) {
	if a.ui != nil {
		a.ui.OnDetach(e)
	}
}
