package core

// Input tracks per-frame keyboard and mouse state derived from events.
// Pressed/Released are edge flags valid for exactly one frame; the run
// loop clears them after every update+render pass.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	down           [3]bool
	pressed        [3]bool
	released       [3]bool
	scrollX        float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if int(e.Button) >= len(in.down) {
			return
		}
		if e.Down && !in.down[e.Button] {
			in.pressed[e.Button] = true
		}
		if !e.Down && in.down[e.Button] {
			in.released[e.Button] = true
		}
		in.down[e.Button] = e.Down
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

// EndFrame clears the one-frame edge flags.
func (in *Input) EndFrame() {
	for i := range in.pressed {
		in.pressed[i] = false
		in.released[i] = false
	}
	in.scrollX, in.scrollY = 0, 0
}

func (in *Input) IsKeyDown(k Key) bool               { return in.keys[k] }
func (in *Input) Mouse() (float64, float64)          { return in.mouseX, in.mouseY }
func (in *Input) IsMouseDown(b MouseButton) bool     { return in.down[b] }
func (in *Input) WasMousePressed(b MouseButton) bool { return in.pressed[b] }
func (in *Input) WasMouseReleased(b MouseButton) bool {
	return in.released[b]
}
func (in *Input) Scroll() (float64, float64) { return in.scrollX, in.scrollY }
