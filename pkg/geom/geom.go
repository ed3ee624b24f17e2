// Package geom provides the planar geometry primitives used by layout
// components: points, open polylines, closed polygon rings, bounding
// boxes, rigid transforms and polygon offsetting.
//
// All coordinates are in millimeters with the Y axis increasing upward.
package geom

import "math"

// Point represents a 2D coordinate in mm.
type Point struct {
	X float64
	Y float64
}

// LineString is an open polyline: an ordered sequence of vertices.
type LineString []Point

// Polygon is a simple closed ring. The closing edge from the last
// vertex back to the first is implicit. Constructors in this package
// produce counter-clockwise rings.
type Polygon []Point

// Box creates an axis-aligned rectangle ring from min/max coordinates.
// Vertices run counter-clockwise starting at the bottom-left corner.
func Box(xmin, ymin, xmax, ymax float64) Polygon {
	return Polygon{
		{X: xmin, Y: ymin},
		{X: xmax, Y: ymin},
		{X: xmax, Y: ymax},
		{X: xmin, Y: ymax},
	}
}

// Rectangle creates a width x height rectangle placed by corner offsets:
// xoff gives the left edge, yoff gives the top edge, and the rectangle
// extends right by width and down by height.
func Rectangle(width, height, xoff, yoff float64) Polygon {
	return Box(xoff, yoff-height, xoff+width, yoff)
}

// SignedArea returns the shoelace area of the ring. Positive for
// counter-clockwise orientation.
func (pg Polygon) SignedArea() float64 {
	if len(pg) < 3 {
		return 0
	}
	sum := 0.0
	for i, a := range pg {
		b := pg[(i+1)%len(pg)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2.0
}

// Area returns the absolute enclosed area of the ring.
func (pg Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// IsEmpty reports whether the polygon has no enclosed area.
func (pg Polygon) IsEmpty() bool {
	return len(pg) < 3
}

// BoundingBox represents an axis-aligned rectangular extent.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box ready for Expand calls.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: 1e9, Y: 1e9},
		Max: Point{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box contains no points yet.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the bounding box to include a point.
func (bb *BoundingBox) Expand(p Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// ExpandBox grows the bounding box to include another box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Width returns the horizontal extent of the bounding box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the vertical extent of the bounding box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box.
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// BoundingBox returns the extent of the ring.
func (pg Polygon) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	for _, p := range pg {
		bb.Expand(p)
	}
	return bb
}

// BoundingBox returns the extent of the polyline.
func (ls LineString) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	for _, p := range ls {
		bb.Expand(p)
	}
	return bb
}
