package geom

import "math"

// JoinStyle selects how Buffer connects offset edges at ring vertices.
type JoinStyle int

const (
	// JoinMitre extends offset edges to their intersection, keeping
	// corners sharp.
	JoinMitre JoinStyle = iota + 1

	// JoinRound connects offset edges with a circular arc about the
	// original vertex. Only applies to outward offsets; inward offsets
	// always mitre.
	JoinRound
)

// roundSegs is the number of arc segments per quarter circle used for
// round joins.
const roundSegs = 8

// Buffer offsets the ring outward (dist > 0) or inward (dist < 0) by
// the given distance and returns a fresh ring. The input must be a
// simple convex ring; rectangles and previously buffered rectangles
// qualify.
//
// An inward offset that consumes the whole ring returns an empty
// polygon, and an empty input stays empty. No error is ever returned;
// degenerate geometry passes through.
func (pg Polygon) Buffer(dist float64, join JoinStyle) Polygon {
	if len(pg) < 3 {
		return nil
	}
	if dist == 0 {
		return append(Polygon(nil), pg...)
	}

	ring := append(Polygon(nil), pg...).EnsureCCW()
	ring = dropRepeatedVertices(ring)
	if len(ring) < 3 {
		return nil
	}

	dirs := make([]Point, len(ring))
	norms := make([]Point, len(ring))
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		dirs[i] = Point{X: dx / length, Y: dy / length}
		// Outward normal for a CCW ring points to the right of the
		// edge direction.
		norms[i] = Point{X: dy / length, Y: -dx / length}
	}

	var out Polygon
	if join == JoinRound && dist > 0 {
		out = offsetRound(ring, dirs, norms, dist)
	} else {
		out = offsetMitre(ring, dirs, norms, dist)
	}

	// An inward offset can invert the ring once the offset edges cross.
	if out.SignedArea() <= 1e-12 {
		return nil
	}
	return out
}

// offsetMitre builds the offset ring by intersecting consecutive offset
// edge lines.
func offsetMitre(ring Polygon, dirs, norms []Point, dist float64) Polygon {
	n := len(ring)
	out := make(Polygon, 0, n)
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		// Offset line of the previous edge and of the edge starting at
		// this vertex.
		p1 := Point{X: ring[prev].X + norms[prev].X*dist, Y: ring[prev].Y + norms[prev].Y*dist}
		p2 := Point{X: ring[i].X + norms[i].X*dist, Y: ring[i].Y + norms[i].Y*dist}
		v, ok := intersectLines(p1, dirs[prev], p2, dirs[i])
		if !ok {
			// Collinear edges: the offset vertex lies on the shared line.
			v = p2
		}
		out = append(out, v)
	}
	return out
}

// offsetRound builds the outward offset ring, sweeping a circular arc
// about each original vertex between the two adjacent edge normals.
func offsetRound(ring Polygon, dirs, norms []Point, dist float64) Polygon {
	n := len(ring)
	maxStep := math.Pi / 2 / roundSegs
	var out Polygon
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		start := math.Atan2(norms[prev].Y, norms[prev].X)
		end := math.Atan2(norms[i].Y, norms[i].X)
		// Exterior angle swept CCW from the previous edge normal to
		// this edge normal.
		delta := end - start
		for delta < 0 {
			delta += 2 * math.Pi
		}
		if delta < 1e-9 {
			out = append(out, Point{X: ring[i].X + norms[i].X*dist, Y: ring[i].Y + norms[i].Y*dist})
			continue
		}
		steps := int(math.Ceil(delta / maxStep))
		if steps < 1 {
			steps = 1
		}
		for k := 0; k <= steps; k++ {
			theta := start + delta*float64(k)/float64(steps)
			out = append(out, Point{
				X: ring[i].X + dist*math.Cos(theta),
				Y: ring[i].Y + dist*math.Sin(theta),
			})
		}
	}
	return out
}

// intersectLines returns the intersection of two parametric lines. The
// second result is false when the lines are (nearly) parallel.
func intersectLines(p1, d1, p2, d2 Point) (Point, bool) {
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := ((p2.X-p1.X)*d2.Y - (p2.Y-p1.Y)*d2.X) / denom
	return Point{X: p1.X + t*d1.X, Y: p1.Y + t*d1.Y}, true
}

// dropRepeatedVertices removes consecutive duplicate points that would
// produce zero-length edges.
func dropRepeatedVertices(ring Polygon) Polygon {
	out := ring[:0]
	for _, p := range ring {
		if len(out) > 0 {
			last := out[len(out)-1]
			if math.Abs(last.X-p.X) < 1e-12 && math.Abs(last.Y-p.Y) < 1e-12 {
				continue
			}
		}
		out = append(out, p)
	}
	if len(out) > 1 {
		first, last := out[0], out[len(out)-1]
		if math.Abs(first.X-last.X) < 1e-12 && math.Abs(first.Y-last.Y) < 1e-12 {
			out = out[:len(out)-1]
		}
	}
	return out
}
