package flywheel

import "image"

// bandDivisor splits the viewport into edge bands of 1/bandDivisor each.
const bandDivisor = 5

// ViewportGeometry is the band layout of a viewport. It depends only on the
// container size and is recomputed on resize.
type ViewportGeometry struct {
	Width, Height int

	// Top and Bottom are the edge bands for vertical scrolling, Left and
	// Right for horizontal scrolling.
	Top, Bottom image.Rectangle
	Left, Right image.Rectangle
	// Middle is the vertical-scrolling middle band (between Top and Bottom).
	Middle image.Rectangle
	// Girdle is the horizontal-scrolling middle band (between Left and Right).
	Girdle image.Rectangle
}

// NewViewportGeometry derives the bands for a w×h viewport. Each edge band is
// floor(extent/5) pixels; the middle band takes the rest.
func NewViewportGeometry(w, h int) ViewportGeometry {
	return newGeometryWithBands(w, h, h/bandDivisor, w/bandDivisor)
}

// newGeometryWithBands builds a geometry with explicit edge band sizes. Zero
// bands make the middle band cover the whole viewport.
func newGeometryWithBands(w, h, vBand, hBand int) ViewportGeometry {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return ViewportGeometry{
		Width:  w,
		Height: h,
		Top:    image.Rect(0, 0, w, vBand),
		Bottom: image.Rect(0, h-vBand, w, h),
		Middle: image.Rect(0, vBand, w, h-vBand),
		Left:   image.Rect(0, 0, hBand, h),
		Right:  image.Rect(w-hBand, 0, w, h),
		Girdle: image.Rect(hBand, 0, w-hBand, h),
	}
}

// Valid reports whether the viewport has a drawable area.
func (g ViewportGeometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Bands returns the leading, middle and trailing bands for o.
func (g ViewportGeometry) Bands(o Orientation) (leading, middle, trailing image.Rectangle) {
	if o == Horizontal {
		return g.Left, g.Girdle, g.Right
	}
	return g.Top, g.Middle, g.Bottom
}

// Bounds returns the full viewport rectangle.
func (g ViewportGeometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}
