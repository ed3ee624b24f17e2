// Package qubits contains the qubit layout components of the standard
// component library.
package qubits

import (
	"fmt"
	"math"
	"sort"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// RoundedRect builds a width x height rectangle placed by corner
// offsets, with optional rounded corners. A radius <= 0 returns the
// sharp rectangle unchanged. A positive radius is clamped to half the
// shorter side, then the corners are rounded by eroding the rectangle
// inward with mitred joins and dilating it back outward with round
// joins. The erode/dilate pair keeps the outer bounding box numerically
// close to the sharp rectangle.
//
// Degenerate dimensions are not rejected; they produce whatever the
// underlying offset primitive yields, which may be empty.
func RoundedRect(width, height, xoff, yoff, radius float64) geom.Polygon {
	if radius <= 0 {
		return geom.Rectangle(width, height, xoff, yoff)
	}

	if half := math.Min(width, height) / 2.0; radius > half {
		radius = half
	}

	rect := geom.Rectangle(width, height, xoff, yoff)
	return rect.Buffer(-radius, geom.JoinMitre).Buffer(radius, geom.JoinRound)
}

// ConnectionPadOptions describe one named connection pad: a coupling
// pad inside the pocket plus the CPW stub that leads out of it.
// Dimensions are declared as option strings with units. Empty fields
// inherit from DefaultConnectionPadOptions.
type ConnectionPadOptions struct {
	PadGap       string // gap between the connection pad and the island pad
	PadWidth     string
	PadHeight    string
	PadCPWShift  string // vertical shift of the CPW lead-in on the pad
	PadCPWExtent string // horizontal lead-in length before the rise
	CPWWidth     string // trace width of the wire
	CPWGap       string // clearance gap either side of the wire
	CPWExtend    string // overshoot past the pocket boundary
	PocketExtent string
	PocketRise   string
	LocW         string // -1, 0 or +1: left, center or right placement
	LocH         string // -1 or +1: below or above the pocket center
}

// DefaultConnectionPadOptions returns the stock connection pad
// dimensions.
func DefaultConnectionPadOptions() ConnectionPadOptions {
	return ConnectionPadOptions{
		PadGap:       "15um",
		PadWidth:     "125um",
		PadHeight:    "30um",
		PadCPWShift:  "0um",
		PadCPWExtent: "25um",
		CPWWidth:     "10um",
		CPWGap:       "6um",
		CPWExtend:    "100um",
		PocketExtent: "5um",
		PocketRise:   "0um",
		LocW:         "+1",
		LocH:         "+1",
	}
}

// Options declare a transmon pocket: the island pads, the pocket
// cutout, placement, corner rounding and the named connection pads.
// Dimensions are option strings with units; empty fields inherit from
// DefaultOptions. The three *CornerRadius overrides inherit from
// CornerRadius when empty.
type Options struct {
	PosX        string
	PosY        string
	Orientation string // rotation about the component origin, degrees

	PadGap        string // vertical gap between the two island pads
	InductorWidth string // junction trace width
	PadWidth      string
	PadHeight     string
	PocketWidth   string
	PocketHeight  string

	// CornerRadius rounds all rectangles; "0um" reproduces the sharp
	// baseline geometry exactly.
	CornerRadius          string
	PadCornerRadius       string
	PocketCornerRadius    string
	ConnectorCornerRadius string

	ConnectionPads map[string]ConnectionPadOptions
}

// DefaultOptions returns the stock transmon pocket dimensions with no
// connection pads.
func DefaultOptions() Options {
	return Options{
		PosX:          "0um",
		PosY:          "0um",
		Orientation:   "0",
		PadGap:        "30um",
		InductorWidth: "20um",
		PadWidth:      "455um",
		PadHeight:     "90um",
		PocketWidth:   "650um",
		PocketHeight:  "650um",
		CornerRadius:  "0um",
	}
}

// TransmonPocket6 is a transmon qubit in a subtractive pocket with up
// to six connection pads, one per placement slot (loc_W in {-1, 0, +1}
// crossed with loc_H in {-1, +1}). Corner rounding is optional and
// defaults off, in which case the emitted geometry matches the sharp
// baseline exactly.
type TransmonPocket6 struct {
	name string
	opts Options
}

// New creates a transmon pocket component. Unset option fields fall
// back to DefaultOptions; unset connection pad fields fall back to
// DefaultConnectionPadOptions.
func New(name string, opts *Options) *TransmonPocket6 {
	merged := DefaultOptions()
	if opts != nil {
		merged = mergeOptions(merged, *opts)
	}
	return &TransmonPocket6{name: name, opts: merged}
}

// Name returns the component name used in geometry and pin entries.
func (q *TransmonPocket6) Name() string { return q.name }

// Options returns the fully merged option set.
func (q *TransmonPocket6) Options() Options { return q.opts }

// Make builds the pocket, island pads, junction and connection pads
// into the design. It is a pure one-shot pipeline from resolved
// parameters to emitted geometry; the only failure mode is a malformed
// numeric option.
func (q *TransmonPocket6) Make(d *design.Design) error {
	p, err := q.parseParams()
	if err != nil {
		return err
	}

	q.makePocket(d, p)

	// Build connection pads in name order so geometry tables come out
	// deterministic.
	names := make([]string, 0, len(q.opts.ConnectionPads))
	for name := range q.opts.ConnectionPads {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pc, err := parseConnectionPad(mergeConnectionPad(DefaultConnectionPadOptions(), q.opts.ConnectionPads[name]))
		if err != nil {
			return fmt.Errorf("connection pad %q: %w", name, err)
		}
		q.makeConnectionPad(d, p, name, pc)
	}

	return nil
}

// makePocket emits the two island pads, the junction line and the
// pocket cutout, rotated and translated together into global
// coordinates.
func (q *TransmonPocket6) makePocket(d *design.Design, p params) {
	pad := RoundedRect(p.padWidth, p.padHeight, -p.padWidth/2, p.padHeight/2, p.padRadius)
	padTop := pad.Translate(0, +(p.padHeight+p.padGap)/2)
	padBot := pad.Translate(0, -(p.padHeight+p.padGap)/2)

	junction := geom.LineString{
		{X: 0, Y: -p.padGap / 2},
		{X: 0, Y: +p.padGap / 2},
	}

	pocket := RoundedRect(p.pocketWidth, p.pocketHeight, -p.pocketWidth/2, p.pocketHeight/2, p.pocketRadius)

	origin := geom.Point{}
	padTop = padTop.Rotate(p.orientation, origin).Translate(p.posX, p.posY)
	padBot = padBot.Rotate(p.orientation, origin).Translate(p.posX, p.posY)
	pocket = pocket.Rotate(p.orientation, origin).Translate(p.posX, p.posY)
	junction = junction.Rotate(p.orientation, origin).Translate(p.posX, p.posY)

	d.AddPoly(q.name, "pad_top", padTop, false)
	d.AddPoly(q.name, "pad_bot", padBot, false)
	d.AddPoly(q.name, "rect_pk", pocket, true)
	d.AddJunction(q.name, "rect_jj", junction, p.inductorWidth)
}

// makeConnectionPad emits one connection pad, its wire, the wire's
// clearance cutout and the coupling pin.
func (q *TransmonPocket6) makeConnectionPad(d *design.Design, p params, name string, pc connectionPadParams) {
	locW, locH := pc.locW, pc.locH
	if (locW != -1 && locW != 0 && locW != +1) || (locH != -1 && locH != +1) {
		d.Warn(q.name, "connection pad %q: loc_W should be -1, 0 or +1 and loc_H should be -1 or +1; got loc_W=%v loc_H=%v",
			name, locW, locH)
	}

	var pad geom.Polygon
	var wire geom.LineString

	if locW != 0 {
		pad = RoundedRect(pc.padWidth, pc.padHeight, -pc.padWidth/2, pc.padHeight/2, p.connectorRadius)

		// Lead-in along the pad, tapered rise, then the extension
		// through the pocket boundary plus overshoot.
		y := pc.padCPWShift + pc.cpwWidth/2
		wire = geom.LineString{
			{X: 0, Y: y},
			{X: pc.padCPWExtent, Y: y},
			{X: (p.pocketWidth-p.padWidth)/2 - pc.pocketExtent, Y: y + pc.pocketRise},
			{X: (p.pocketWidth-p.padWidth)/2 + pc.cpwExtend, Y: y + pc.pocketRise},
		}
	} else {
		pad = RoundedRect(pc.padWidth, pc.padHeight, 0, pc.padHeight/2, p.connectorRadius)

		// Straight vertical run from the pad edge to the pocket
		// boundary plus overshoot.
		wire = geom.LineString{
			{X: 0, Y: pc.padHeight},
			{X: 0, Y: (p.pocketWidth/2 - p.padHeight - p.padGap/2 - pc.padGap) + pc.cpwExtend},
		}
	}

	// Mirror into the placement quadrant. loc_W = 0 keeps the X axis
	// unscaled.
	scaleW := locW
	if locW == 0 {
		scaleW = 1
	}
	origin := geom.Point{}
	pad = pad.Scale(scaleW, locH, origin).EnsureCCW()
	wire = wire.Scale(scaleW, locH, origin)

	dx := locW * p.padWidth / 2
	dy := locH * (p.padHeight + p.padGap/2 + pc.padGap)
	pad = pad.Translate(dx, dy)
	wire = wire.Translate(dx, dy)

	pad = pad.Rotate(p.orientation, origin).Translate(p.posX, p.posY)
	wire = wire.Rotate(p.orientation, origin).Translate(p.posX, p.posY)

	d.AddPoly(q.name, name+"_connector_pad", pad, false)
	d.AddPath(q.name, name+"_wire", wire, pc.cpwWidth, false)
	// A wider subtractive copy of the same wire carves the clearance
	// around the trace.
	d.AddPath(q.name, name+"_wire_sub", wire, pc.cpwWidth+2*pc.cpwGap, true)

	n := len(wire)
	d.AddPin(q.name, name, wire[n-2], wire[n-1], pc.cpwWidth)
}
