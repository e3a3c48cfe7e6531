package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}

	// UI palette
	LightBlue  = Color{0.55, 0.75, 1, 1}
	DarkRed    = Color{0.78, 0, 0, 1}
	FaintGray  = Color{1, 1, 1, 0.04}
	ButtonGray = Color{0.23, 0.25, 0.27, 1}
	HoverGray  = Color{0.30, 0.32, 0.35, 1}
	ActiveGray = Color{0.17, 0.18, 0.20, 1}
	Accent     = Color{0.25, 0.55, 0.95, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scaled multiplies the RGB channels, leaving alpha untouched.
func (c Color) Scaled(f float32) Color {
	c[0] *= f
	c[1] *= f
	c[2] *= f
	return c
}
