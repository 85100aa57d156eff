package flywheel

import (
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphMetrics is the measurement capability the text layout engine needs.
type GlyphMetrics interface {
	// MeasureString returns the advance width of s.
	MeasureString(s string) float64
	// BoundString returns the ink bounding box of s relative to the baseline
	// origin.
	BoundString(s string) Rect
	// BreakText returns the byte length of the longest prefix of s whose
	// advance width does not exceed maxWidth. The result is on a rune
	// boundary.
	BreakText(s string, maxWidth float64) int
}

// Face is a sized font face. It implements GlyphMetrics on top of an
// x/image font.Face and is what the render backends draw text with.
type Face struct {
	face font.Face
}

// NewFace wraps an x/image font.Face.
func NewFace(f font.Face) *Face {
	return &Face{face: f}
}

// XFace returns the underlying font.Face.
func (f *Face) XFace() font.Face {
	return f.face
}

// MeasureString returns the advance width of s.
func (f *Face) MeasureString(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

// BoundString returns the ink bounds of s.
func (f *Face) BoundString(s string) Rect {
	b, _ := font.BoundString(f.face, s)
	return Rect{
		X:      fixedToFloat(b.Min.X),
		Y:      fixedToFloat(b.Min.Y),
		Width:  fixedToFloat(b.Max.X - b.Min.X),
		Height: fixedToFloat(b.Max.Y - b.Min.Y),
	}
}

// BreakText returns the byte length of the longest prefix of s that fits
// within maxWidth.
func (f *Face) BreakText(s string, maxWidth float64) int {
	limit := floatToFixed(maxWidth)
	var adv fixed.Int26_6
	prev := rune(-1)
	for i, r := range s {
		if prev >= 0 {
			adv += f.face.Kern(prev, r)
		}
		a, ok := f.face.GlyphAdvance(r)
		if !ok {
			a, _ = f.face.GlyphAdvance(utf8.RuneError)
		}
		if adv+a > limit {
			return i
		}
		adv += a
		prev = r
	}
	return len(s)
}

// Ascent returns the distance from the baseline to the top of a line.
func (f *Face) Ascent() float64 {
	return fixedToFloat(f.face.Metrics().Ascent)
}

// Typeface produces Faces for a given text size. It is either backed by an
// OpenType font (scalable) or a fixed bitmap face that ignores the size.
type Typeface struct {
	otf   *opentype.Font
	fixed *Face
	faces map[float64]*Face
}

// NewFixedTypeface returns a Typeface that always yields face, whatever size
// is requested. Useful with bitmap faces such as basicfont.Face7x13.
func NewFixedTypeface(face font.Face) *Typeface {
	return &Typeface{fixed: NewFace(face)}
}

// BasicTypeface returns the 7x13 bitmap typeface from x/image. Its metrics are
// exact integers, which makes it the typeface of choice for tests.
func BasicTypeface() *Typeface {
	return NewFixedTypeface(basicfont.Face7x13)
}

// LoadTypeface parses TrueType/OpenType data.
func LoadTypeface(data []byte) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("flywheel: failed to parse font data: %w", err)
	}
	return &Typeface{otf: f}, nil
}

// LoadTypefaceFile reads and parses a font file.
func LoadTypefaceFile(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flywheel: read font %s: %w", path, err)
	}
	return LoadTypeface(data)
}

var defaultTypeface *Typeface

// DefaultTypeface returns the Go Regular typeface bundled with x/image.
func DefaultTypeface() *Typeface {
	if defaultTypeface == nil {
		tf, err := LoadTypeface(goregular.TTF)
		if err != nil {
			// The bundled font always parses; fall back to the bitmap face
			// rather than propagating an impossible error.
			tf = BasicTypeface()
		}
		defaultTypeface = tf
	}
	return defaultTypeface
}

// Face returns the face for the given pixel size, caching one face per size.
func (t *Typeface) Face(size float64) *Face {
	if t.fixed != nil {
		return t.fixed
	}
	if size <= 0 {
		size = DefaultTextSize
	}
	if f, ok := t.faces[size]; ok {
		return f
	}
	xf, err := opentype.NewFace(t.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return BasicTypeface().fixed
	}
	if t.faces == nil {
		t.faces = make(map[float64]*Face)
	}
	f := NewFace(xf)
	t.faces[size] = f
	return f
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Floor(v * 64))
}
