package flywheel

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// SoftwareSurface is a CPU raster backed by an *image.RGBA. Shapes are
// anti-aliased with rasterx, text goes through x/image/font. It renders
// deterministically, so it doubles as the headless and test backend.
type SoftwareSurface struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewSoftwareSurface creates a transparent w×h raster.
func NewSoftwareSurface(w, h int) *SoftwareSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &SoftwareSurface{
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

// Image returns the backing image. Pixels are premultiplied.
func (s *SoftwareSurface) Image() *image.RGBA { return s.img }

// Size implements Surface.
func (s *SoftwareSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements Surface.
func (s *SoftwareSurface) Clear() {
	clear(s.img.Pix)
}

// Fill implements Surface.
func (s *SoftwareSurface) Fill(c Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// FillRect implements Surface.
func (s *SoftwareSurface) FillRect(r Rect, p Paint) {
	if r.Empty() || s.empty() {
		return
	}
	s.filler.Clear()
	rasterx.AddRect(r.X, r.Y, r.Right(), r.Bottom(), 0, s.filler)
	s.filler.SetColor(paintSource(p))
	s.filler.Draw()
}

// FillGradient implements Surface.
func (s *SoftwareSurface) FillGradient(r Rect, g *LinearGradient) {
	s.FillRect(r, Paint{Gradient: g})
}

// DrawLine implements Surface.
func (s *SoftwareSurface) DrawLine(x0, y0, x1, y1 float64, p Paint) {
	if s.empty() {
		return
	}
	width := p.Width
	if width <= 0 {
		width = 1
	}
	s.stroker.Clear()
	s.stroker.SetStroke(floatToFixed(width), floatToFixed(4), rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Miter)
	s.stroker.Start(rasterx.ToFixedP(x0, y0))
	s.stroker.Line(rasterx.ToFixedP(x1, y1))
	s.stroker.Stop(false)
	s.stroker.SetColor(paintSource(p))
	s.stroker.Draw()
}

// DrawText implements Surface.
func (s *SoftwareSurface) DrawText(str string, x, baseline float64, face *Face, c Color) {
	if face == nil || str == "" {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.RGBA()),
		Face: face.XFace(),
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(baseline)},
	}
	d.DrawString(str)
}

// DrawRaster implements Surface. Same-size regions are copied pixel for
// pixel; scaled regions are resampled bilinearly.
func (s *SoftwareSurface) DrawRaster(src Surface, srcRect, dst image.Rectangle) {
	ss, ok := src.(*SoftwareSurface)
	if !ok || srcRect.Empty() || dst.Empty() {
		return
	}
	if srcRect.Dx() == dst.Dx() && srcRect.Dy() == dst.Dy() {
		xdraw.Copy(s.img, dst.Min, ss.img, srcRect, xdraw.Over, nil)
		return
	}
	xdraw.ApproxBiLinear.Scale(s.img, dst, ss.img, srcRect, xdraw.Over, nil)
}

// DrawProjected implements Surface. Affine transforms go through
// x/image/draw; perspective transforms are inverse-mapped per pixel.
func (s *SoftwareSurface) DrawProjected(src Surface, m Matrix3) {
	ss, ok := src.(*SoftwareSurface)
	if !ok || ss.empty() || s.empty() {
		return
	}
	if m.IsAffine() {
		aff := f64.Aff3{m[0], m[1], m[2], m[3], m[4], m[5]}
		xdraw.BiLinear.Transform(s.img, aff, ss.img, ss.img.Bounds(), xdraw.Over, nil)
		return
	}
	inv, ok := m.Invert()
	if !ok {
		return
	}
	sw, sh := ss.Size()
	bounds := projectedBounds(m, float64(sw), float64(sh))
	area := image.Rect(
		int(math.Floor(bounds.X)), int(math.Floor(bounds.Y)),
		int(math.Ceil(bounds.Right())), int(math.Ceil(bounds.Bottom())),
	).Intersect(s.img.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			u, v := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			if u < 0 || v < 0 || u >= float64(sw) || v >= float64(sh) {
				continue
			}
			c := ss.img.RGBAAt(int(u), int(v))
			if c.A == 0 {
				continue
			}
			s.img.SetRGBA(x, y, blendOver(c, s.img.RGBAAt(x, y)))
		}
	}
}

// NewRaster implements Surface.
func (s *SoftwareSurface) NewRaster(w, h int) Surface {
	return NewSoftwareSurface(w, h)
}

// NewRasterFromImage implements Surface.
func (s *SoftwareSurface) NewRasterFromImage(img image.Image) Surface {
	b := img.Bounds()
	r := NewSoftwareSurface(b.Dx(), b.Dy())
	draw.Draw(r.img, r.img.Bounds(), img, b.Min, draw.Src)
	return r
}

func (s *SoftwareSurface) empty() bool {
	return s.img.Bounds().Empty()
}

// paintSource converts a Paint into a rasterx color source.
func paintSource(p Paint) interface{} {
	if g := p.Gradient; g != nil {
		return rasterx.ColorFunc(func(x, y int) color.Color {
			return g.ColorAt(float64(x)+0.5, float64(y)+0.5).RGBA()
		})
	}
	return p.Color.RGBA()
}

// blendOver composites premultiplied src over dst.
func blendOver(src, dst color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	k := 255 - uint32(src.A)
	return color.RGBA{
		R: uint8(uint32(src.R) + (uint32(dst.R)*k+127)/255),
		G: uint8(uint32(src.G) + (uint32(dst.G)*k+127)/255),
		B: uint8(uint32(src.B) + (uint32(dst.B)*k+127)/255),
		A: uint8(uint32(src.A) + (uint32(dst.A)*k+127)/255),
	}
}
