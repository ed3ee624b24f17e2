package render

import (
	"math"
	"testing"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.CenterX = 1.5
	c.CenterY = -0.25
	c.Rotation = 30
	c.FlipView = true

	want := geom.Point{X: 2.125, Y: 0.75}
	sx, sy := c.WorldToScreen(want)
	got := c.ScreenToWorld(sx, sy)

	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("round trip = %v, want %v", got, want)
	}
}

func TestScreenYAxisIsInverted(t *testing.T) {
	c := NewCamera(800, 600)

	_, yLow := c.WorldToScreen(geom.Point{X: 0, Y: -1})
	_, yHigh := c.WorldToScreen(geom.Point{X: 0, Y: 1})

	// Larger world Y must land higher on screen (smaller pixel Y).
	if yHigh >= yLow {
		t.Fatalf("y inversion broken: world y=1 at screen %v, y=-1 at %v", yHigh, yLow)
	}
}

func TestFitCentersAndContains(t *testing.T) {
	c := NewCamera(800, 600)

	bbox := geom.NewBoundingBox()
	bbox.Expand(geom.Point{X: -0.325, Y: -0.325})
	bbox.Expand(geom.Point{X: 0.325, Y: 0.325})
	c.Fit(bbox)

	if c.CenterX != 0 || c.CenterY != 0 {
		t.Fatalf("center = (%v, %v), want origin", c.CenterX, c.CenterY)
	}

	// Every corner must land inside the screen after fitting.
	for _, p := range []geom.Point{
		{X: -0.325, Y: -0.325},
		{X: 0.325, Y: 0.325},
	} {
		x, y := c.WorldToScreen(p)
		if x < 0 || x > 800 || y < 0 || y > 600 {
			t.Fatalf("corner %v maps off screen to (%v, %v)", p, x, y)
		}
	}
}

func TestZoomAtKeepsCursorStationary(t *testing.T) {
	c := NewCamera(800, 600)
	c.Zoom = 500

	before := c.ScreenToWorld(200, 150)
	c.ZoomAt(200, 150, 1.25)
	after := c.ScreenToWorld(200, 150)

	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Fatalf("cursor point moved from %v to %v", before, after)
	}
}
