package flywheel

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// projectedMeshSteps is the grid resolution used to approximate a
// perspective mapping with affine triangles.
const projectedMeshSteps = 16

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by vertex-colored meshes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// drawColoredTriangles draws an untextured mesh whose vertex colors are
// premultiplied.
func drawColoredTriangles(dst *ebiten.Image, verts []ebiten.Vertex, inds []uint16) {
	if len(verts) == 0 || len(inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &op)
}

// colorVertex builds a vertex at (x, y) sampling the white pixel with the
// premultiplied color c.
func colorVertex(x, y float64, c Color) ebiten.Vertex {
	p := c.RGBA()
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(p.R) / 255,
		ColorG: float32(p.G) / 255,
		ColorB: float32(p.B) / 255,
		ColorA: float32(p.A) / 255,
	}
}

// gradientQuadMesh builds a strip covering r with one vertex pair per
// gradient stop that falls inside r. Axis-aligned gradients are exact at the
// stops; oblique gradients fall back to per-corner colors.
func gradientQuadMesh(r Rect, g *LinearGradient) ([]ebiten.Vertex, []uint16) {
	horizontal := g.Y0 == g.Y1 && g.X0 != g.X1
	vertical := g.X0 == g.X1 && g.Y0 != g.Y1
	if !horizontal && !vertical {
		verts := []ebiten.Vertex{
			colorVertex(r.X, r.Y, g.ColorAt(r.X, r.Y)),
			colorVertex(r.Right(), r.Y, g.ColorAt(r.Right(), r.Y)),
			colorVertex(r.X, r.Bottom(), g.ColorAt(r.X, r.Bottom())),
			colorVertex(r.Right(), r.Bottom(), g.ColorAt(r.Right(), r.Bottom())),
		}
		return verts, []uint16{0, 1, 2, 1, 3, 2}
	}

	// Positions along the gradient axis where the color changes slope.
	lo, hi := r.Y, r.Bottom()
	origin, length := g.Y0, g.Y1-g.Y0
	if horizontal {
		lo, hi = r.X, r.Right()
		origin, length = g.X0, g.X1-g.X0
	}
	cuts := []float64{lo, hi}
	for _, st := range g.Stops {
		p := origin + st.Offset*length
		if p > lo && p < hi {
			cuts = append(cuts, p)
		}
	}
	sort.Float64s(cuts)

	verts := make([]ebiten.Vertex, 0, len(cuts)*2)
	inds := make([]uint16, 0, (len(cuts)-1)*6)
	for i, p := range cuts {
		var a, b ebiten.Vertex
		if horizontal {
			c := g.ColorAt(p, r.Y)
			a, b = colorVertex(p, r.Y, c), colorVertex(p, r.Bottom(), c)
		} else {
			c := g.ColorAt(r.X, p)
			a, b = colorVertex(r.X, p, c), colorVertex(r.Right(), p, c)
		}
		verts = append(verts, a, b)
		if i > 0 {
			k := uint16(i * 2)
			inds = append(inds, k-2, k-1, k, k-1, k+1, k)
		}
	}
	return verts, inds
}

// lineRect returns the rectangle covered by an axis-aligned stroke.
func lineRect(x0, y0, x1, y1, width float64) (Rect, bool) {
	half := width / 2
	switch {
	case y0 == y1:
		return Rect{X: math.Min(x0, x1), Y: y0 - half, Width: math.Abs(x1 - x0), Height: width}, true
	case x0 == x1:
		return Rect{X: x0 - half, Y: math.Min(y0, y1), Width: width, Height: math.Abs(y1 - y0)}, true
	}
	return Rect{}, false
}

// projectedMesh subdivides a w×h source into steps×steps cells and maps each
// grid vertex through m. Texture coordinates stay on the source grid.
func projectedMesh(w, h int, m Matrix3, steps int) ([]ebiten.Vertex, []uint16) {
	if steps < 1 {
		steps = 1
	}
	n := steps + 1
	verts := make([]ebiten.Vertex, 0, n*n)
	for j := 0; j < n; j++ {
		sy := float64(h) * float64(j) / float64(steps)
		for i := 0; i < n; i++ {
			sx := float64(w) * float64(i) / float64(steps)
			dx, dy := m.Apply(sx, sy)
			verts = append(verts, ebiten.Vertex{
				DstX: float32(dx), DstY: float32(dy),
				SrcX: float32(sx), SrcY: float32(sy),
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			})
		}
	}
	inds := make([]uint16, 0, steps*steps*6)
	for j := 0; j < steps; j++ {
		for i := 0; i < steps; i++ {
			k := uint16(j*n + i)
			nn := uint16(n)
			inds = append(inds, k, k+1, k+nn, k+1, k+nn+1, k+nn)
		}
	}
	return verts, inds
}
