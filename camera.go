package flywheel

import (
	"image"
	"math"
)

const (
	// DefaultCameraDistance is the eye distance from the page plane in
	// pixels (8 inches at 72 dpi).
	DefaultCameraDistance = 576.0
	// FoldAngle is the rotation applied to the edge bands, in degrees.
	FoldAngle = 45.0
)

// Camera projects rotated page bands back onto the screen plane. The eye
// sits on the z axis at Distance in front of the origin; rotations happen
// about axes through the origin, so callers move the pivot there first.
type Camera struct {
	Distance float64
}

// NewCamera returns a camera at DefaultCameraDistance.
func NewCamera() *Camera {
	return &Camera{Distance: DefaultCameraDistance}
}

func (c *Camera) distance() float64 {
	if c == nil || c.Distance <= 0 {
		return DefaultCameraDistance
	}
	return c.Distance
}

// RotateX returns the projection of the plane rotated by deg degrees about
// the x axis. Positive angles push points below the axis away from the eye.
func (c *Camera) RotateX(deg float64) Matrix3 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix3{
		1, 0, 0,
		0, cos, 0,
		0, sin / c.distance(), 1,
	}
}

// RotateY returns the projection of the plane rotated by deg degrees about
// the y axis. Positive angles push points right of the axis away from the eye.
func (c *Camera) RotateY(deg float64) Matrix3 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix3{
		cos, 0, 0,
		0, 1, 0,
		sin / c.distance(), 0, 1,
	}
}

// LeadingBand returns the transform for a leading band raster of the given
// size. The band folds away from the viewer about its trailing (inner) edge,
// which stays in place, and is centered on the cross axis for perspective.
func (c *Camera) LeadingBand(o Orientation, band image.Rectangle) Matrix3 {
	w, h := float64(band.Dx()), float64(band.Dy())
	if o == Horizontal {
		return c.RotateY(-FoldAngle).
			PreTranslate(-w, -h/2).
			PostTranslate(w, h/2).
			PostTranslate(float64(band.Min.X), float64(band.Min.Y))
	}
	return c.RotateX(-FoldAngle).
		PreTranslate(-w/2, -h).
		PostTranslate(w/2, h).
		PostTranslate(float64(band.Min.X), float64(band.Min.Y))
}

// TrailingBand returns the transform for a trailing band raster. The band
// folds away about its leading (inner) edge and is anchored at the band's
// position at the viewport's trailing edge.
func (c *Camera) TrailingBand(o Orientation, band image.Rectangle) Matrix3 {
	w, h := float64(band.Dx()), float64(band.Dy())
	if o == Horizontal {
		return c.RotateY(FoldAngle).
			PreTranslate(0, -h/2).
			PostTranslate(0, h/2).
			PostTranslate(float64(band.Min.X), float64(band.Min.Y))
	}
	return c.RotateX(FoldAngle).
		PreTranslate(-w/2, 0).
		PostTranslate(w/2, 0).
		PostTranslate(float64(band.Min.X), float64(band.Min.Y))
}
