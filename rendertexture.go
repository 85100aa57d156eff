package flywheel

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface backed by an *ebiten.Image. It is the backend
// used when the widget draws inside an Ebitengine game.
type EbitenSurface struct {
	image *ebiten.Image
	w, h  int
	faces map[*Face]*text.GoXFace
}

// NewEbitenSurface wraps an existing image, typically the screen.
func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	b := img.Bounds()
	return &EbitenSurface{image: img, w: b.Dx(), h: b.Dy()}
}

// NewEbitenRaster creates an off-screen w×h image surface.
func NewEbitenRaster(w, h int) *EbitenSurface {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return NewEbitenSurface(ebiten.NewImage(w, h))
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.image
}

// Size implements Surface.
func (s *EbitenSurface) Size() (int, int) {
	return s.w, s.h
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	s.image.Clear()
}

// Fill implements Surface.
func (s *EbitenSurface) Fill(c Color) {
	s.image.Fill(c.RGBA())
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(r Rect, p Paint) {
	if r.Empty() {
		return
	}
	if p.Gradient != nil {
		s.FillGradient(r, p.Gradient)
		return
	}
	vector.DrawFilledRect(s.image, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), p.Color.RGBA(), true)
}

// FillGradient implements Surface.
func (s *EbitenSurface) FillGradient(r Rect, g *LinearGradient) {
	if r.Empty() {
		return
	}
	verts, inds := gradientQuadMesh(r, g)
	drawColoredTriangles(s.image, verts, inds)
}

// DrawLine implements Surface. Gradient lines are drawn as a thin quad
// spanning the segment.
func (s *EbitenSurface) DrawLine(x0, y0, x1, y1 float64, p Paint) {
	width := p.Width
	if width <= 0 {
		width = 1
	}
	if p.Gradient == nil {
		vector.StrokeLine(s.image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), p.Color.RGBA(), true)
		return
	}
	if r, ok := lineRect(x0, y0, x1, y1, width); ok {
		s.FillGradient(r, p.Gradient)
	}
}

// DrawText implements Surface.
func (s *EbitenSurface) DrawText(str string, x, baseline float64, face *Face, c Color) {
	if face == nil || str == "" {
		return
	}
	gf, ok := s.faces[face]
	if !ok {
		gf = text.NewGoXFace(face.XFace())
		if s.faces == nil {
			s.faces = make(map[*Face]*text.GoXFace)
		}
		s.faces[face] = gf
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baseline-face.Ascent())
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.image, str, gf, op)
}

// DrawRaster implements Surface.
func (s *EbitenSurface) DrawRaster(src Surface, srcRect, dst image.Rectangle) {
	es, ok := src.(*EbitenSurface)
	if !ok || srcRect.Empty() || dst.Empty() {
		return
	}
	sub := es.image.SubImage(srcRect).(*ebiten.Image)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(dst.Dx())/float64(srcRect.Dx()), float64(dst.Dy())/float64(srcRect.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	if srcRect.Dx() != dst.Dx() || srcRect.Dy() != dst.Dy() {
		op.Filter = ebiten.FilterLinear
	}
	s.image.DrawImage(sub, &op)
}

// DrawProjected implements Surface. The perspective mapping is approximated
// by a subdivided triangle mesh.
func (s *EbitenSurface) DrawProjected(src Surface, m Matrix3) {
	es, ok := src.(*EbitenSurface)
	if !ok {
		return
	}
	w, h := es.Size()
	if w == 0 || h == 0 {
		return
	}
	verts, inds := projectedMesh(w, h, m, projectedMeshSteps)
	var op ebiten.DrawTrianglesOptions
	op.Filter = ebiten.FilterLinear
	s.image.DrawTriangles(verts, inds, es.image, &op)
}

// NewRaster implements Surface.
func (s *EbitenSurface) NewRaster(w, h int) Surface {
	return NewEbitenRaster(w, h)
}

// NewRasterFromImage implements Surface.
func (s *EbitenSurface) NewRasterFromImage(img image.Image) Surface {
	return NewEbitenSurface(ebiten.NewImageFromImage(img))
}
