package qubits

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/units"
)

func mustLength(t *testing.T, s string) float64 {
	t.Helper()
	v, err := units.ParseLength(s)
	if err != nil {
		t.Fatalf("ParseLength(%q) failed: %v", s, err)
	}
	return v
}

func TestRoundedRectZeroRadius(t *testing.T) {
	rect := RoundedRect(4, 2, -2, 1, 0)

	want := geom.Polygon{
		{X: -2, Y: -1},
		{X: 2, Y: -1},
		{X: 2, Y: 1},
		{X: -2, Y: 1},
	}
	if diff := cmp.Diff(want, rect); diff != "" {
		t.Fatalf("sharp rectangle mismatch (-want +got):\n%s", diff)
	}

	// Negative radius behaves like zero.
	if diff := cmp.Diff(want, RoundedRect(4, 2, -2, 1, -0.5)); diff != "" {
		t.Fatalf("negative radius mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundedRectPreservesBoundingBox(t *testing.T) {
	const r = 0.25
	sharp := RoundedRect(4, 2, -2, 1, 0)
	rounded := RoundedRect(4, 2, -2, 1, r)

	sb := sharp.BoundingBox()
	rb := rounded.BoundingBox()
	if math.Abs(sb.Width()-rb.Width()) > 1e-9 || math.Abs(sb.Height()-rb.Height()) > 1e-9 {
		t.Fatalf("bbox changed: sharp %v x %v, rounded %v x %v",
			sb.Width(), sb.Height(), rb.Width(), rb.Height())
	}

	// Rounding must remove area at the corners.
	if rounded.Area() >= sharp.Area() {
		t.Fatalf("rounded area %v should be below sharp area %v", rounded.Area(), sharp.Area())
	}

	// No vertex may come closer to a sharp corner than the arc allows.
	minClearance := r * (math.Sqrt2 - 1) * 0.9
	for _, corner := range sharp {
		for _, p := range rounded {
			dist := math.Hypot(p.X-corner.X, p.Y-corner.Y)
			if dist < minClearance {
				t.Fatalf("vertex %v is %v from corner %v, want at least %v",
					p, dist, corner, minClearance)
			}
		}
	}
}

func TestRoundedRectClampsRadius(t *testing.T) {
	// Anything beyond half the short side clamps to exactly half the
	// short side.
	clamped := RoundedRect(2, 1, 0, 1, 10)
	exact := RoundedRect(2, 1, 0, 1, 0.5)
	if diff := cmp.Diff(exact, clamped); diff != "" {
		t.Fatalf("clamped output mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacementFlagWarning(t *testing.T) {
	opts := DefaultOptions()
	opts.ConnectionPads = map[string]ConnectionPadOptions{
		"bad": {LocW: "+2", LocH: "+1"},
	}

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("out-of-range loc_W must not fail the build: %v", err)
	}
	if len(d.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(d.Warnings))
	}
	if !strings.Contains(d.Warnings[0], "loc_W") {
		t.Fatalf("warning text = %q", d.Warnings[0])
	}

	// The out-of-range value is used as-is; geometry is still emitted.
	if len(d.Polys) != 4 || len(d.Paths) != 2 || len(d.Pins) != 1 {
		t.Fatalf("got %d polys, %d paths, %d pins; want 4, 2, 1",
			len(d.Polys), len(d.Paths), len(d.Pins))
	}
}

func TestDefaultGeometryMatchesBaseline(t *testing.T) {
	d := design.NewDesign("test")
	if err := d.Add(New("Q1", nil)); err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	// Baseline shapes computed the un-rounded way from the same
	// resolved dimensions, so the comparison is bit-for-bit.
	padWidth := mustLength(t, "455um")
	padHeight := mustLength(t, "90um")
	padGap := mustLength(t, "30um")
	pocketWidth := mustLength(t, "650um")
	pocketHeight := mustLength(t, "650um")

	wantPad := geom.Rectangle(padWidth, padHeight, -padWidth/2, padHeight/2)
	wantTop := wantPad.Translate(0, +(padHeight+padGap)/2)
	wantBot := wantPad.Translate(0, -(padHeight+padGap)/2)
	wantPocket := geom.Rectangle(pocketWidth, pocketHeight, -pocketWidth/2, pocketHeight/2)

	polys := map[string]design.PolyEntry{}
	for _, entry := range d.Polys {
		polys[entry.Name] = entry
	}

	if diff := cmp.Diff(wantTop, polys["pad_top"].Polygon); diff != "" {
		t.Fatalf("pad_top mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantBot, polys["pad_bot"].Polygon); diff != "" {
		t.Fatalf("pad_bot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPocket, polys["rect_pk"].Polygon); diff != "" {
		t.Fatalf("rect_pk mismatch (-want +got):\n%s", diff)
	}
	if !polys["rect_pk"].Subtract {
		t.Fatal("pocket must be a subtractive region")
	}
	if polys["pad_top"].Subtract || polys["pad_bot"].Subtract {
		t.Fatal("island pads must not be subtractive")
	}

	if len(d.Junctions) != 1 {
		t.Fatalf("got %d junctions, want 1", len(d.Junctions))
	}
	jj := d.Junctions[0]
	if math.Abs(jj.Width-0.020) > 1e-12 {
		t.Fatalf("junction width = %v, want 0.020", jj.Width)
	}
	wantJJ := geom.LineString{{X: 0, Y: -padGap / 2}, {X: 0, Y: +padGap / 2}}
	if diff := cmp.Diff(wantJJ, jj.Path); diff != "" {
		t.Fatalf("junction mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundedPocketShrinksCorners(t *testing.T) {
	opts := DefaultOptions()
	opts.CornerRadius = "20um"

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	var pocket geom.Polygon
	for _, entry := range d.Polys {
		if entry.Name == "rect_pk" {
			pocket = entry.Polygon
		}
	}
	if pocket == nil {
		t.Fatal("pocket polygon not emitted")
	}

	sharp := geom.Rectangle(0.650, 0.650, -0.325, 0.325)
	if pocket.Area() >= sharp.Area() {
		t.Fatalf("rounded pocket area %v should be below sharp area %v",
			pocket.Area(), sharp.Area())
	}

	pb := pocket.BoundingBox()
	if math.Abs(pb.Width()-0.650)/0.650 > 0.01 || math.Abs(pb.Height()-0.650)/0.650 > 0.01 {
		t.Fatalf("rounded pocket bbox = %v x %v, want within 1%% of 0.650",
			pb.Width(), pb.Height())
	}
}

func TestRadiusOverridesPerShapeClass(t *testing.T) {
	opts := DefaultOptions()
	opts.CornerRadius = "20um"
	opts.PadCornerRadius = "0um"

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	for _, entry := range d.Polys {
		switch entry.Name {
		case "pad_top", "pad_bot":
			// Pad override forces sharp rectangles: exactly 4 vertices.
			if len(entry.Polygon) != 4 {
				t.Fatalf("%s has %d vertices, want 4 (sharp)", entry.Name, len(entry.Polygon))
			}
		case "rect_pk":
			// The pocket still inherits the global radius.
			if len(entry.Polygon) <= 4 {
				t.Fatalf("rect_pk has %d vertices, want rounded ring", len(entry.Polygon))
			}
		}
	}
}

func TestConnectionPadSidePlacement(t *testing.T) {
	opts := DefaultOptions()
	opts.ConnectionPads = map[string]ConnectionPadOptions{
		"bus": {LocW: "+1", LocH: "+1"},
	}

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	if len(d.Pins) != 1 {
		t.Fatalf("got %d pins, want 1", len(d.Pins))
	}
	pin := d.Pins[0]
	if pin.Name != "bus" {
		t.Fatalf("pin name = %q, want bus", pin.Name)
	}

	// Terminal point: pocket edge overshoot in x, shifted wire height
	// in y, offset by the pad placement (all defaults, in mm).
	wantX := (0.650-0.455)/2 + 0.100 + 0.455/2
	wantY := 0.010/2 + (0.090 + 0.030/2 + 0.015)
	if math.Abs(pin.Tip.X-wantX) > 1e-9 || math.Abs(pin.Tip.Y-wantY) > 1e-9 {
		t.Fatalf("pin tip = %v, want (%v, %v)", pin.Tip, wantX, wantY)
	}
	// The wire exits horizontally on the +W side.
	if math.Abs(pin.Normal.X-1) > 1e-9 || math.Abs(pin.Normal.Y) > 1e-9 {
		t.Fatalf("pin normal = %v, want (1, 0)", pin.Normal)
	}

	var wire, sub *design.PathEntry
	for i := range d.Paths {
		switch d.Paths[i].Name {
		case "bus_wire":
			wire = &d.Paths[i]
		case "bus_wire_sub":
			sub = &d.Paths[i]
		}
	}
	if wire == nil || sub == nil {
		t.Fatal("wire and clearance paths not emitted")
	}
	if len(wire.Path) != 4 {
		t.Fatalf("side-placed wire has %d points, want 4", len(wire.Path))
	}
	if math.Abs(wire.Width-0.010) > 1e-12 {
		t.Fatalf("wire width = %v, want 0.010", wire.Width)
	}
	if !sub.Subtract {
		t.Fatal("clearance copy must be subtractive")
	}
	if math.Abs(sub.Width-(0.010+2*0.006)) > 1e-12 {
		t.Fatalf("clearance width = %v, want 0.022", sub.Width)
	}
	if diff := cmp.Diff(wire.Path, sub.Path); diff != "" {
		t.Fatalf("clearance path must follow the wire (-wire +sub):\n%s", diff)
	}
}

func TestCenteredConnectionPad(t *testing.T) {
	opts := DefaultOptions()
	opts.ConnectionPads = map[string]ConnectionPadOptions{
		"readout": {LocW: "0", LocH: "-1"},
	}

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	var wire design.PathEntry
	for _, entry := range d.Paths {
		if entry.Name == "readout_wire" {
			wire = entry
		}
	}
	if len(wire.Path) != 2 {
		t.Fatalf("centered wire has %d points, want 2", len(wire.Path))
	}
	// A centered pad runs straight down the y axis.
	for _, p := range wire.Path {
		if math.Abs(p.X) > 1e-9 {
			t.Fatalf("centered wire strays off the y axis: %v", wire.Path)
		}
	}
	// loc_H = -1 mirrors the wire below the pocket center.
	pin := d.Pins[0]
	if pin.Normal.Y >= 0 {
		t.Fatalf("pin normal = %v, want pointing down", pin.Normal)
	}
}

func TestOrientationAndPosition(t *testing.T) {
	opts := DefaultOptions()
	opts.Orientation = "90"
	opts.PosX = "1mm"
	opts.PosY = "2mm"

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("Make failed: %v", err)
	}

	var top geom.Polygon
	for _, entry := range d.Polys {
		if entry.Name == "pad_top" {
			top = entry.Polygon
		}
	}

	// pad_top sits above center before rotation; a 90 degree turn about
	// the origin moves it to the -X side of the placement position.
	c := top.BoundingBox().Center()
	if math.Abs(c.X-(1-0.060)) > 1e-9 || math.Abs(c.Y-2) > 1e-9 {
		t.Fatalf("rotated pad_top center = %v, want (%v, 2)", c, 1-0.060)
	}
}

func TestMalformedDimensionFails(t *testing.T) {
	opts := DefaultOptions()
	opts.PadWidth = "455parsecs"

	d := design.NewDesign("test")
	err := d.Add(New("Q1", &opts))
	if err == nil {
		t.Fatal("malformed dimension should fail the build")
	}
	if !strings.Contains(err.Error(), "pad_width") {
		t.Fatalf("error should name the field: %v", err)
	}
}

func TestConnectorRoundingConsumesThinPad(t *testing.T) {
	opts := DefaultOptions()
	// Clamps to half the 30um connector pad height, so the erode step
	// consumes the connector pad ring entirely.
	opts.CornerRadius = "20um"
	opts.ConnectionPads = map[string]ConnectionPadOptions{
		"bus": {LocW: "+1", LocH: "+1"},
	}

	d := design.NewDesign("test")
	if err := d.Add(New("Q1", &opts)); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var pad *design.PolyEntry
	for i := range d.Polys {
		if d.Polys[i].Name == "bus_connector_pad" {
			pad = &d.Polys[i]
		}
	}
	if pad == nil {
		t.Fatal("bus_connector_pad entry missing")
	}
	// The entry is still registered, with nil geometry, so the table
	// keeps a row per emitted shape and file round trips stay exact.
	if pad.Polygon != nil {
		t.Fatalf("bus_connector_pad polygon = %#v, want nil", pad.Polygon)
	}

	// The wire, clearance cutout and pin are unaffected.
	if len(d.Paths) != 2 || len(d.Pins) != 1 {
		t.Fatalf("got %d paths and %d pins, want 2 and 1", len(d.Paths), len(d.Pins))
	}
}
