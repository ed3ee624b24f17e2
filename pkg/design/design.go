// Package design implements the design database: the geometry tables,
// pin registry and component bookkeeping that layout components emit
// their shapes into.
package design

import (
	"fmt"
	"sort"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// Default placement attributes for new geometry entries.
const (
	DefaultChip  = "main"
	DefaultLayer = 1
)

// Design holds everything a chip design accumulates: one table per
// geometry kind (poly, path, junction), the registered pins, and the
// non-fatal warnings raised while building components.
type Design struct {
	Name string
	Chip string

	Polys     []PolyEntry
	Paths     []PathEntry
	Junctions []JunctionEntry
	Pins      []Pin

	Warnings []string

	components map[string]Component
}

// NewDesign creates an empty design with the default chip.
func NewDesign(name string) *Design {
	return &Design{
		Name:       name,
		Chip:       DefaultChip,
		components: make(map[string]Component),
	}
}

// Component is a parametric layout element that renders itself into a
// design. Make is a one-shot transform from resolved parameters to
// emitted geometry; it carries no state between invocations.
type Component interface {
	Name() string
	Make(d *Design) error
}

// Add registers a component and builds its geometry into the design.
// Component names must be unique within a design.
func (d *Design) Add(c Component) error {
	if d.components == nil {
		d.components = make(map[string]Component)
	}
	if _, exists := d.components[c.Name()]; exists {
		return fmt.Errorf("component %q already exists in design %q", c.Name(), d.Name)
	}
	if err := c.Make(d); err != nil {
		return fmt.Errorf("component %q: %w", c.Name(), err)
	}
	d.components[c.Name()] = c
	return nil
}

// RecordComponent notes a component name without building geometry.
// Used when loading a design from disk, where the geometry tables are
// already populated and the parametric builders are gone.
func (d *Design) RecordComponent(name string) error {
	if d.components == nil {
		d.components = make(map[string]Component)
	}
	if _, exists := d.components[name]; exists {
		return fmt.Errorf("component %q already exists in design %q", name, d.Name)
	}
	d.components[name] = nil
	return nil
}

// ComponentNames returns the registered component names in sorted order.
func (d *Design) ComponentNames() []string {
	names := make([]string, 0, len(d.components))
	for name := range d.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Warn records a non-fatal diagnostic against a component and logs it.
// Building continues; the warning list is the validation contract for
// out-of-range option values.
func (d *Design) Warn(component, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.Warnings = append(d.Warnings, fmt.Sprintf("%s: %s", component, msg))
	Logger().Warn(msg, "design", d.Name, "component", component)
}

// BoundingBox calculates the extent of all geometry in the design.
// Path and junction outlines are expanded by half their trace width.
func (d *Design) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()

	for _, entry := range d.Polys {
		bb.ExpandBox(entry.Polygon.BoundingBox())
	}
	for _, entry := range d.Paths {
		bb.ExpandBox(expandByWidth(entry.Path.BoundingBox(), entry.Width))
	}
	for _, entry := range d.Junctions {
		bb.ExpandBox(expandByWidth(entry.Path.BoundingBox(), entry.Width))
	}

	return bb
}

func expandByWidth(bb geom.BoundingBox, width float64) geom.BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	half := width / 2.0
	bb.Expand(geom.Point{X: bb.Min.X - half, Y: bb.Min.Y - half})
	bb.Expand(geom.Point{X: bb.Max.X + half, Y: bb.Max.Y + half})
	return bb
}
