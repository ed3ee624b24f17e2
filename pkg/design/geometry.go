package design

import "github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"

// PolyEntry is a row of the polygon geometry table. Subtract marks
// cutout regions that are carved out of the ground plane instead of
// drawn as metal.
type PolyEntry struct {
	Component string
	Name      string
	Chip      string
	Layer     int
	Subtract  bool
	Polygon   geom.Polygon
}

// PathEntry is a row of the path geometry table: an open polyline
// rendered at a trace width.
type PathEntry struct {
	Component string
	Name      string
	Chip      string
	Layer     int
	Subtract  bool
	Width     float64
	Path      geom.LineString
}

// JunctionEntry is a row of the junction geometry table: the linear
// element standing in for a nonlinear inductive component, rendered at
// the inductor width.
type JunctionEntry struct {
	Component string
	Name      string
	Chip      string
	Layer     int
	Width     float64
	Path      geom.LineString
}

// AddPoly appends a polygon to the poly table.
func (d *Design) AddPoly(component, name string, pg geom.Polygon, subtract bool) {
	d.Polys = append(d.Polys, PolyEntry{
		Component: component,
		Name:      name,
		Chip:      d.Chip,
		Layer:     DefaultLayer,
		Subtract:  subtract,
		Polygon:   pg,
	})
}

// AddPath appends a polyline to the path table at the given trace width.
func (d *Design) AddPath(component, name string, ls geom.LineString, width float64, subtract bool) {
	d.Paths = append(d.Paths, PathEntry{
		Component: component,
		Name:      name,
		Chip:      d.Chip,
		Layer:     DefaultLayer,
		Subtract:  subtract,
		Width:     width,
		Path:      ls,
	})
}

// AddJunction appends a junction polyline at the given width.
func (d *Design) AddJunction(component, name string, ls geom.LineString, width float64) {
	d.Junctions = append(d.Junctions, JunctionEntry{
		Component: component,
		Name:      name,
		Chip:      d.Chip,
		Layer:     DefaultLayer,
		Width:     width,
		Path:      ls,
	})
}
