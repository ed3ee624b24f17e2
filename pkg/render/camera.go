// Package render draws design geometry with Gio: a world-coordinate
// camera plus polygon, path and pin rendering.
package render

import (
	"math"

	"github.com/OpenQuantumLab/OpenQuantumEDA/pkg/geom"
)

// Camera represents a viewport onto a design. World coordinates are in
// mm with Y increasing upward; screen coordinates are in pixels with Y
// increasing downward, so the Y axis is inverted on the way through.
type Camera struct {
	// Center position in world coordinates (mm)
	CenterX float64
	CenterY float64

	// Zoom level (pixels per mm)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int

	// View controls
	FlipView bool    // true = mirrored view
	Rotation float64 // view rotation in degrees

	// Rotation center (world coordinates in mm)
	RotationCenterX float64
	RotationCenterY float64
}

// NewCamera creates a camera with a reasonable default zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         100.0, // chip features are sub-mm, start close in
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates (mm) to screen coordinates
// (pixels).
func (c *Camera) WorldToScreen(pos geom.Point) (float64, float64) {
	pos = c.applyViewTransform(pos)

	x := (pos.X - c.CenterX) * c.Zoom
	y := (pos.Y - c.CenterY) * c.Zoom

	x += float64(c.ScreenWidth) / 2.0
	y += float64(c.ScreenHeight) / 2.0

	// Designs are y-up, screens are y-down.
	y = float64(c.ScreenHeight) - y

	return x, y
}

// ScreenToWorld converts screen coordinates (pixels) to world
// coordinates (mm).
func (c *Camera) ScreenToWorld(screenX, screenY float64) geom.Point {
	y := float64(c.ScreenHeight) - screenY

	x := screenX - float64(c.ScreenWidth)/2.0
	y = y - float64(c.ScreenHeight)/2.0

	x /= c.Zoom
	y /= c.Zoom

	x += c.CenterX
	y += c.CenterY

	return c.applyInverseViewTransform(geom.Point{X: x, Y: y})
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY += deltaY / c.Zoom
}

// ZoomAt zooms in (factor > 1) or out (factor < 1) while keeping the
// world point under the cursor stationary.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 1.0 {
		c.Zoom = 1.0
	}
	if c.Zoom > 100000.0 {
		c.Zoom = 100000.0
	}

	after := c.ScreenToWorld(screenX, screenY)

	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts the camera to show the whole bounding box with padding.
func (c *Camera) Fit(bbox geom.BoundingBox) {
	width := bbox.Width()
	height := bbox.Height()
	if width <= 0 || height <= 0 {
		return
	}

	center := bbox.Center()
	c.CenterX = center.X
	c.CenterY = center.Y
	c.RotationCenterX = center.X
	c.RotationCenterY = center.Y

	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}

// Flip toggles the mirrored view.
func (c *Camera) Flip() {
	c.FlipView = !c.FlipView
}

// Rotate rotates the view by the given degrees.
func (c *Camera) Rotate(degrees float64) {
	c.Rotation += degrees
	for c.Rotation >= 360 {
		c.Rotation -= 360
	}
	for c.Rotation < 0 {
		c.Rotation += 360
	}
}

// applyViewTransform applies the view rotation and flip to a world
// position.
func (c *Camera) applyViewTransform(pos geom.Point) geom.Point {
	x := pos.X - c.RotationCenterX
	y := pos.Y - c.RotationCenterY

	if c.Rotation != 0 {
		rad := c.Rotation * math.Pi / 180.0
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	if c.FlipView {
		x = -x
	}

	return geom.Point{
		X: x + c.RotationCenterX,
		Y: y + c.RotationCenterY,
	}
}

// applyInverseViewTransform undoes the view rotation and flip.
func (c *Camera) applyInverseViewTransform(pos geom.Point) geom.Point {
	x := pos.X - c.RotationCenterX
	y := pos.Y - c.RotationCenterY

	if c.FlipView {
		x = -x
	}

	if c.Rotation != 0 {
		rad := -c.Rotation * math.Pi / 180.0
		cos := math.Cos(rad)
		sin := math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	return geom.Point{
		X: x + c.RotationCenterX,
		Y: y + c.RotationCenterY,
	}
}
