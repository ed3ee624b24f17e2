package design

import (
	"math"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// Pin marks where an external transmission line couples to a component.
// It is derived from the terminal segment of a wire: the tip sits at
// the segment's open end and the normal points along the segment
// direction, out of the component.
type Pin struct {
	Component string
	Name      string

	// Points holds the terminal wire segment; Points[1] is the open end.
	Points [2]geom.Point

	Width  float64
	Tip    geom.Point
	Normal geom.Point
}

// AddPin registers a named pin from the two boundary points of a wire's
// terminal segment and the wire's trace width.
func (d *Design) AddPin(component, name string, p0, p1 geom.Point, width float64) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)

	normal := geom.Point{}
	if length > 0 {
		normal = geom.Point{X: dx / length, Y: dy / length}
	}

	d.Pins = append(d.Pins, Pin{
		Component: component,
		Name:      name,
		Points:    [2]geom.Point{p0, p1},
		Width:     width,
		Tip:       p1,
		Normal:    normal,
	})
}

// Rotation returns the pin normal direction in degrees.
func (p Pin) Rotation() float64 {
	return math.Atan2(p.Normal.Y, p.Normal.X) * 180.0 / math.Pi
}
