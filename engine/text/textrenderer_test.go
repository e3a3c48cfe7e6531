package text

import "testing"

// fixed-metrics font, no atlas and no face, so kerning is skipped and
// every glyph advances 10px at the native size.
func testFont() *Font {
	glyphs := map[rune]Glyph{}
	for r := rune(' '); r <= 'z'; r++ {
		glyphs[r] = Glyph{Rune: r, Advance: 10, W: 8, H: 12}
	}
	return &Font{
		SizePx:  20,
		Ascent:  15,
		Descent: -5,
		LineGap: 2,
		Glyphs:  glyphs,
	}
}

func TestMeasureTextSingleLine(t *testing.T) {
	f := testFont()
	w, h := MeasureText(f, "abcd", 20)
	if w != 40 {
		t.Errorf("width = %v, want 40", w)
	}
	if h != 22 { // ascent - descent + line gap
		t.Errorf("height = %v, want 22", h)
	}
}

func TestMeasureTextScalesWithSize(t *testing.T) {
	f := testFont()
	w, h := MeasureText(f, "abcd", 10)
	if w != 20 || h != 11 {
		t.Errorf("half-size measure = (%v,%v), want (20,11)", w, h)
	}
}

func TestMeasureTextMultiline(t *testing.T) {
	f := testFont()
	w, h := MeasureText(f, "ab\nabcd", 20)
	if w != 40 {
		t.Errorf("width = %v, want widest line 40", w)
	}
	if h != 44 {
		t.Errorf("height = %v, want two lines 44", h)
	}
}

func TestMeasureTextEmpty(t *testing.T) {
	if w, h := MeasureText(testFont(), "", 20); w != 0 || h != 0 {
		t.Errorf("empty string measured (%v,%v)", w, h)
	}
	if w, h := MeasureText(nil, "abc", 20); w != 0 || h != 0 {
		t.Errorf("nil font measured (%v,%v)", w, h)
	}
}

func TestLineMetrics(t *testing.T) {
	f := testFont()
	if got := LineHeight(f); got != 22 {
		t.Errorf("LineHeight = %v, want 22", got)
	}
	if got := BaselineToTop(f); got != 15 {
		t.Errorf("BaselineToTop = %v, want 15", got)
	}
	if got := BaselineToBottom(f); got != 5 {
		t.Errorf("BaselineToBottom = %v, want 5", got)
	}
}
