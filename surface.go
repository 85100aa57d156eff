package flywheel

import "image"

// Paint describes how a line or rectangle is filled. A non-nil Gradient
// takes precedence over Color.
type Paint struct {
	Color    Color
	Gradient *LinearGradient
	// Width is the stroke width for lines; 0 means 1 pixel.
	Width float64
}

// SolidPaint returns a Paint with a single color.
func SolidPaint(c Color) Paint { return Paint{Color: c} }

// Surface is a raster the compositor draws on. Every drawing call composites
// with source-over blending. Rasters created by NewRaster belong to the same
// backend and may be passed back to DrawRaster and DrawProjected.
type Surface interface {
	// Size returns the raster size in pixels.
	Size() (w, h int)
	// Clear sets every pixel to transparent.
	Clear()
	// Fill sets every pixel to c, replacing the current content.
	Fill(c Color)
	// FillRect blends r with paint p.
	FillRect(r Rect, p Paint)
	// FillGradient blends r with g. It is FillRect with a gradient paint.
	FillGradient(r Rect, g *LinearGradient)
	// DrawLine strokes the segment (x0, y0)-(x1, y1) with butt caps.
	DrawLine(x0, y0, x1, y1 float64, p Paint)
	// DrawText draws s with its origin at (x, baseline).
	DrawText(s string, x, baseline float64, face *Face, c Color)
	// DrawRaster draws the src region of src scaled into dst.
	DrawRaster(src Surface, srcRect, dst image.Rectangle)
	// DrawProjected draws the whole of src mapped through m.
	DrawProjected(src Surface, m Matrix3)
	// NewRaster creates an off-screen transparent raster of the same backend.
	NewRaster(w, h int) Surface
	// NewRasterFromImage creates an off-screen raster holding img.
	NewRasterFromImage(img image.Image) Surface
}
