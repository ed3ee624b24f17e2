package geom

import "math"

// Translate returns the point moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rotate returns the point rotated counter-clockwise by degrees about
// the given origin.
func (p Point) Rotate(degrees float64, origin Point) Point {
	rad := degrees * math.Pi / 180.0
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	x := p.X - origin.X
	y := p.Y - origin.Y
	return Point{
		X: origin.X + x*cos - y*sin,
		Y: origin.Y + x*sin + y*cos,
	}
}

// Scale returns the point scaled by (sx, sy) about the given origin.
// Negative factors mirror across the corresponding axis.
func (p Point) Scale(sx, sy float64, origin Point) Point {
	return Point{
		X: origin.X + (p.X-origin.X)*sx,
		Y: origin.Y + (p.Y-origin.Y)*sy,
	}
}

// Translate returns a fresh polyline moved by (dx, dy).
func (ls LineString) Translate(dx, dy float64) LineString {
	out := make(LineString, len(ls))
	for i, p := range ls {
		out[i] = p.Translate(dx, dy)
	}
	return out
}

// Rotate returns a fresh polyline rotated counter-clockwise by degrees
// about the given origin.
func (ls LineString) Rotate(degrees float64, origin Point) LineString {
	out := make(LineString, len(ls))
	for i, p := range ls {
		out[i] = p.Rotate(degrees, origin)
	}
	return out
}

// Scale returns a fresh polyline scaled by (sx, sy) about the origin.
func (ls LineString) Scale(sx, sy float64, origin Point) LineString {
	out := make(LineString, len(ls))
	for i, p := range ls {
		out[i] = p.Scale(sx, sy, origin)
	}
	return out
}

// Translate returns a fresh ring moved by (dx, dy). Empty rings stay
// nil so emptiness survives transform chains unchanged.
func (pg Polygon) Translate(dx, dy float64) Polygon {
	if len(pg) == 0 {
		return nil
	}
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Translate(dx, dy)
	}
	return out
}

// Rotate returns a fresh ring rotated counter-clockwise by degrees
// about the given origin. Empty rings stay nil.
func (pg Polygon) Rotate(degrees float64, origin Point) Polygon {
	if len(pg) == 0 {
		return nil
	}
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Rotate(degrees, origin)
	}
	return out
}

// Scale returns a fresh ring scaled by (sx, sy) about the origin.
// A mirroring scale (one negative factor) reverses the winding order;
// callers that require counter-clockwise rings should renormalize with
// EnsureCCW. Empty rings stay nil.
func (pg Polygon) Scale(sx, sy float64, origin Point) Polygon {
	if len(pg) == 0 {
		return nil
	}
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Scale(sx, sy, origin)
	}
	return out
}

// EnsureCCW returns the ring with counter-clockwise winding, reversing
// the vertex order in place if needed.
func (pg Polygon) EnsureCCW() Polygon {
	if pg.SignedArea() < 0 {
		for i, j := 0, len(pg)-1; i < j; i, j = i+1, j-1 {
			pg[i], pg[j] = pg[j], pg[i]
		}
	}
	return pg
}
