package render

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/design"
	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// RenderDesign draws a complete design into the Gio context. Draw order
// is metal, then subtract regions, then junctions and pins on top so
// small features stay visible.
func RenderDesign(gtx layout.Context, camera *Camera, d *design.Design) {
	theme := Theme()

	paint.Fill(gtx.Ops, theme.Background)

	renderPolys(gtx, camera, d, false, theme.Metal)
	renderPaths(gtx, camera, d, false, theme.Metal)

	subtract := theme.Subtract
	renderPolys(gtx, camera, d, true, subtract)
	renderPaths(gtx, camera, d, true, subtract)

	renderJunctions(gtx, camera, d, theme.Junction)
	renderPins(gtx, camera, d, theme)
}

// renderPolys fills every polygon entry matching the subtract flag.
func renderPolys(gtx layout.Context, camera *Camera, d *design.Design, subtract bool, fill color.NRGBA) {
	for _, entry := range d.Polys {
		if entry.Subtract != subtract {
			continue
		}
		fillPolygon(gtx, camera, entry.Polygon, fill)
	}
}

// renderPaths strokes every path entry matching the subtract flag at
// its real width.
func renderPaths(gtx layout.Context, camera *Camera, d *design.Design, subtract bool, stroke color.NRGBA) {
	for _, entry := range d.Paths {
		if entry.Subtract != subtract {
			continue
		}
		strokeLineString(gtx, camera, entry.Path, entry.Width, stroke)
	}
}

// renderJunctions strokes junction center lines.
func renderJunctions(gtx layout.Context, camera *Camera, d *design.Design, stroke color.NRGBA) {
	for _, entry := range d.Junctions {
		strokeLineString(gtx, camera, entry.Path, entry.Width, stroke)
	}
}

// renderPins draws a circle at each pin tip plus a short line along the
// pin normal so routing direction is visible.
func renderPins(gtx layout.Context, camera *Camera, d *design.Design, theme themeColors) {
	for _, pin := range d.Pins {
		x, y := camera.WorldToScreen(pin.Tip)

		radius := pin.Width * camera.Zoom
		if radius < 3.0 {
			radius = 3.0
		}
		renderCircle(gtx, x, y, radius, theme.Pin)

		end := geom.Point{
			X: pin.Tip.X + pin.Normal.X*pin.Width*2,
			Y: pin.Tip.Y + pin.Normal.Y*pin.Width*2,
		}
		ex, ey := camera.WorldToScreen(end)
		renderLine(gtx, x, y, ex, ey, 1.5, theme.PinNormal)
	}
}

// fillPolygon fills a closed ring.
func fillPolygon(gtx layout.Context, camera *Camera, poly geom.Polygon, fill color.NRGBA) {
	if len(poly) < 3 {
		return
	}

	var path clip.Path
	path.Begin(gtx.Ops)

	for i, pt := range poly {
		x, y := camera.WorldToScreen(pt)
		if i == 0 {
			path.MoveTo(f32.Pt(float32(x), float32(y)))
		} else {
			path.LineTo(f32.Pt(float32(x), float32(y)))
		}
	}
	path.Close()

	paint.FillShape(gtx.Ops, fill, clip.Outline{Path: path.End()}.Op())
}

// strokeLineString strokes a polyline at a world-coordinate width.
func strokeLineString(gtx layout.Context, camera *Camera, line geom.LineString, width float64, col color.NRGBA) {
	if len(line) < 2 {
		return
	}

	strokeWidth := width * camera.Zoom
	if strokeWidth < 1.0 {
		strokeWidth = 1.0
	}

	var path clip.Path
	path.Begin(gtx.Ops)

	for i, pt := range line {
		x, y := camera.WorldToScreen(pt)
		if i == 0 {
			path.MoveTo(f32.Pt(float32(x), float32(y)))
		} else {
			path.LineTo(f32.Pt(float32(x), float32(y)))
		}
	}

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(strokeWidth),
	}.Op()
	paint.FillShape(gtx.Ops, col, stroke)
}

// renderLine draws a single screen-space line segment.
func renderLine(gtx layout.Context, x1, y1, x2, y2, width float64, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()
	paint.FillShape(gtx.Ops, col, stroke)
}

// renderCircle fills a screen-space circle.
func renderCircle(gtx layout.Context, cx, cy, radius float64, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)

	segments := 32
	for i := 0; i <= segments; i++ {
		angle := float64(i) * 2.0 * math.Pi / float64(segments)
		px := cx + radius*math.Cos(angle)
		py := cy + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(f32.Pt(float32(px), float32(py)))
		} else {
			path.LineTo(f32.Pt(float32(px), float32(py)))
		}
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
