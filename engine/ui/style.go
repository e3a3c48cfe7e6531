package ui

import "github.com/metent/grus-gui-lib/engine/colors"

// Spacing holds the standard layout metrics widgets and grids fall back to.
type Spacing struct {
	ItemSpacing  Vec2 // gap between adjacent cells/widgets
	InteractSize Vec2 // minimum size of an interactive widget (and grid cell)
	ButtonPad    Vec2
	IconWidth    float32
	IconSpacing  float32
}

// Visuals holds the shared colors.
type Visuals struct {
	Text       colors.Color
	WeakText   colors.Color
	FaintBg    colors.Color // stripe fill
	ButtonFill colors.Color
	HoverFill  colors.Color
	ActiveFill colors.Color
	Stroke     colors.Color
	Selection  colors.Color
	Striped    bool // default for grids that don't say
}

// Debug toggles the overflow diagnostics painted when a cell measures
// larger than the previous frame predicted.
type Debug struct {
	ShowExpandWidth  bool
	ShowExpandHeight bool
}

type Style struct {
	FontSize float32
	Spacing  Spacing
	Visuals  Visuals
	Debug    Debug
}

func DefaultStyle() *Style {
	return &Style{
		FontSize: 16,
		Spacing: Spacing{
			ItemSpacing:  V2(8, 4),
			InteractSize: V2(40, 20),
			ButtonPad:    V2(8, 2),
			IconWidth:    14,
			IconSpacing:  4,
		},
		Visuals: Visuals{
			Text:       colors.White,
			WeakText:   colors.Gray,
			FaintBg:    colors.FaintGray,
			ButtonFill: colors.ButtonGray,
			HoverFill:  colors.HoverGray,
			ActiveFill: colors.ActiveGray,
			Stroke:     colors.Gray,
			Selection:  colors.Accent,
		},
	}
}
