package text

import (
	"github.com/metent/grus-gui-lib/engine/colors"
	"github.com/metent/grus-gui-lib/engine/gfx/renderer2d"
)

// DrawText draws s with top-left origin (x,y) at the given pixel size.
// Positive Y goes downward (matching the 2D projection).
func DrawText(r2d *renderer2d.Renderer2D, font *Font, x, y float32, s string, size float32, color colors.Color) {
	if font == nil || s == "" {
		return
	}
	scale := size / font.SizePx
	penX := x
	baseY := y + font.Ascent*scale // move origin to top left
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			lineH := (font.Ascent - font.Descent + font.LineGap) * scale
			baseY += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}

		// Apply kerning between prev and current
		if prev >= 0 && font.Face != nil {
			penX += float32(font.Face.Kern(prev, r)) / 64.0 * scale
		}

		// Baseline-aligned quad center (Y-down system): top = baseline - BearingY
		left := penX + g.BearingX*scale
		top := baseY - g.BearingY*scale
		w := float32(g.W) * scale
		h := float32(g.H) * scale
		cx := left + w*0.5
		cy := top + h*0.5

		r2d.DrawTexturedQuadUV(
			cx, cy,
			w, h,
			font.Texture, color, 0,
			g.U0, g.V0, g.U1, g.V1,
		)

		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText reports the size of s at the given pixel size.
func MeasureText(font *Font, s string, size float32) (width, height float32) {
	if font == nil || s == "" {
		return 0, 0
	}
	var lineW float32
	var prev rune = -1
	lineH := font.Ascent - font.Descent + font.LineGap
	height = lineH
	scale := size / font.SizePx

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && font.Face != nil {
			lineW += float32(font.Face.Kern(prev, r)) / 64.0
		}

		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width * scale, height * scale
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(font *Font) float32    { return font.Ascent }
func BaselineToBottom(font *Font) float32 { return -font.Descent }
func LineHeight(font *Font) float32       { return font.Ascent - font.Descent + font.LineGap }
