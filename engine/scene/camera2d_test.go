package scene

import (
	"math"
	"testing"
)

// project applies the column-major view-projection to a point.
func project(m [16]float32, x, y float32) (float32, float32) {
	px := m[0]*x + m[4]*y + m[12]
	py := m[1]*x + m[5]*y + m[13]
	return px, py
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestScreenSpaceMapsPixelsToNDC(t *testing.T) {
	c := NewScreenSpace(200, 100)

	for _, tc := range []struct {
		name         string
		x, y         float32
		wantX, wantY float32
	}{
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 200, 100, 1, -1},
		{"center", 100, 50, 0, 0},
		{"mid-top", 100, 0, 0, 1},
	} {
		gotX, gotY := project(c.VP(), tc.x, tc.y)
		if !near(gotX, tc.wantX) || !near(gotY, tc.wantY) {
			t.Errorf("%s: pixel (%v,%v) -> (%v,%v), want (%v,%v)",
				tc.name, tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestScreenSpaceTracksResize(t *testing.T) {
	c := NewScreenSpace(200, 100)
	c.SetViewportPixels(400, 400)
	c.SetPosition(200, 200)

	if x, y := project(c.VP(), 400, 400); !near(x, 1) || !near(y, -1) {
		t.Errorf("bottom-right after resize -> (%v,%v), want (1,-1)", x, y)
	}
}

func TestWorldCameraCentersOrigin(t *testing.T) {
	c := NewOrtho2D(200, 100)
	if x, y := project(c.VP(), 0, 0); !near(x, 0) || !near(y, 0) {
		t.Errorf("origin -> (%v,%v), want center of NDC", x, y)
	}
	// World-space cameras keep Y up: the top edge of the view is +50.
	if _, y := project(c.VP(), 0, 50); !near(y, -1) {
		t.Errorf("y=50 -> ndc y=%v, want -1 under the shared Y-down projection", y)
	}
}

func TestZoomScalesView(t *testing.T) {
	c := NewOrtho2D(200, 100)
	c.SetZoom(2)
	// Zoom 2 halves the visible extent: x=50 hits the right edge.
	if x, _ := project(c.VP(), 50, 0); !near(x, 1) {
		t.Errorf("x=50 at zoom 2 -> ndc x=%v, want 1", x)
	}
}
