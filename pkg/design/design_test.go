package design

import (
	"math"
	"strings"
	"testing"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// stubComponent emits a single unit square when built.
type stubComponent struct {
	name string
}

func (s *stubComponent) Name() string { return s.name }

func (s *stubComponent) Make(d *Design) error {
	d.AddPoly(s.name, "body", geom.Box(0, 0, 1, 1), false)
	return nil
}

func TestAddComponent(t *testing.T) {
	d := NewDesign("test")

	if err := d.Add(&stubComponent{name: "Q1"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(d.Polys) != 1 {
		t.Fatalf("got %d polys, want 1", len(d.Polys))
	}
	if d.Polys[0].Chip != DefaultChip || d.Polys[0].Layer != DefaultLayer {
		t.Fatalf("poly entry placement = %q/%d, want %q/%d",
			d.Polys[0].Chip, d.Polys[0].Layer, DefaultChip, DefaultLayer)
	}

	if err := d.Add(&stubComponent{name: "Q1"}); err == nil {
		t.Fatal("duplicate component name should fail")
	}

	names := d.ComponentNames()
	if len(names) != 1 || names[0] != "Q1" {
		t.Fatalf("component names = %v, want [Q1]", names)
	}
}

func TestAddPinNormal(t *testing.T) {
	d := NewDesign("test")
	d.AddPin("Q1", "bus", geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 2}, 0.01)

	if len(d.Pins) != 1 {
		t.Fatalf("got %d pins, want 1", len(d.Pins))
	}
	pin := d.Pins[0]
	if pin.Tip != (geom.Point{X: 0, Y: 2}) {
		t.Fatalf("pin tip = %v, want (0, 2)", pin.Tip)
	}
	if math.Abs(pin.Normal.X) > 1e-12 || math.Abs(pin.Normal.Y-1) > 1e-12 {
		t.Fatalf("pin normal = %v, want (0, 1)", pin.Normal)
	}
	if got := pin.Rotation(); math.Abs(got-90) > 1e-9 {
		t.Fatalf("pin rotation = %v, want 90", got)
	}
}

func TestBoundingBoxExpandsPathWidth(t *testing.T) {
	d := NewDesign("test")
	d.AddPath("Q1", "wire", geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}, 2, false)

	bb := d.BoundingBox()
	if math.Abs(bb.Min.Y+1) > 1e-12 || math.Abs(bb.Max.Y-1) > 1e-12 {
		t.Fatalf("path bbox Y = [%v, %v], want [-1, 1]", bb.Min.Y, bb.Max.Y)
	}
	if math.Abs(bb.Min.X+1) > 1e-12 || math.Abs(bb.Max.X-11) > 1e-12 {
		t.Fatalf("path bbox X = [%v, %v], want [-1, 11]", bb.Min.X, bb.Max.X)
	}
}

func TestWarnContinues(t *testing.T) {
	d := NewDesign("test")
	d.Warn("Q1", "loc_W should be -1, 0 or +1, got %v", 2.0)

	if len(d.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(d.Warnings))
	}
	if !strings.Contains(d.Warnings[0], "Q1") || !strings.Contains(d.Warnings[0], "loc_W") {
		t.Fatalf("warning text = %q", d.Warnings[0])
	}
}
