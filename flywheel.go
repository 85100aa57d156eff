package flywheel

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorTransparent is fully transparent black.
	ColorTransparent = Color{}
	// ColorBlack is opaque black, used for the viewport boundary lines.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is the default page background.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorDarkGray is the default item text color.
	ColorDarkGray = Color{0x44 / 255.0, 0x44 / 255.0, 0x44 / 255.0, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R*c.A) * 255)),
		G: uint8(math.Round(clamp01(c.G*c.A) * 255)),
		B: uint8(math.Round(clamp01(c.B*c.A) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ColorFromStd converts any color.Color to a Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// ParseColor parses "#rrggbb" or Android-style "#aarrggbb" hex colors.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[1:3], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("flywheel: parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = "#" + s[3:]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("flywheel: parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// String formats c as "#aarrggbb".
func (c Color) String() string {
	cc := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	return fmt.Sprintf("#%02x%s", uint8(math.Round(clamp01(c.A)*255)), cc.Hex()[1:])
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// lerpColor blends two colors. RGB goes through go-colorful, alpha is linear.
// A fully transparent endpoint borrows the other endpoint's RGB so fades do
// not darken through black.
func lerpColor(from, to Color, t float64) Color {
	if from.A == 0 {
		from.R, from.G, from.B = to.R, to.G, to.B
	}
	if to.A == 0 {
		to.R, to.G, to.B = from.R, from.G, from.B
	}
	a := colorful.Color{R: from.R, G: from.G, B: from.B}
	b := colorful.Color{R: to.R, G: to.G, B: to.B}
	m := a.BlendRgb(b, t)
	return Color{R: m.R, G: m.G, B: m.B, A: from.A + (to.A-from.A)*t}
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The rectangle is half-open: the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Image returns r rounded to integer pixel bounds.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.Width)), int(math.Round(r.Y+r.Height)),
	)
}

// rectFromImage converts integer pixel bounds to a Rect.
func rectFromImage(r image.Rectangle) Rect {
	return Rect{X: float64(r.Min.X), Y: float64(r.Min.Y), Width: float64(r.Dx()), Height: float64(r.Dy())}
}

// Orientation selects the scroll axis.
type Orientation uint8

const (
	Vertical   Orientation = iota // items stack top to bottom, scroll along Y
	Horizontal                    // items stack left to right, scroll along X
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation parses "vertical" or "horizontal" (case-insensitive).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("flywheel: unknown orientation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// extent returns the length of w×h along the scroll axis.
func (o Orientation) extent(w, h float64) float64 {
	if o == Horizontal {
		return w
	}
	return h
}

// crossExtent returns the length of w×h across the scroll axis.
func (o Orientation) crossExtent(w, h float64) float64 {
	if o == Horizontal {
		return h
	}
	return w
}

// span returns the start and length of r along the scroll axis.
func (o Orientation) span(r Rect) (start, length float64) {
	if o == Horizontal {
		return r.X, r.Width
	}
	return r.Y, r.Height
}

// shift moves r by d along the scroll axis.
func (o Orientation) shift(r Rect, d float64) Rect {
	if o == Horizontal {
		return r.Offset(d, 0)
	}
	return r.Offset(0, d)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
