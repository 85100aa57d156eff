package flywheel

import (
	"image"
	"log/slog"
	"reflect"
	"time"
)

const (
	// dividerWidth is the stroke width of item dividers.
	dividerWidth = 3.0
	// boundaryWidth is the stroke width of the viewport boundary lines.
	boundaryWidth = 3.0
)

// Compositor renders the visible items into a flat page and composites the
// page onto an output surface, folding the edge bands in 3D when enabled.
type Compositor struct {
	camera     *Camera
	geom       ViewportGeometry
	effect3D   bool
	background Color

	page      Surface
	backend   reflect.Type
	pool      rasterPool
	gradients *gradientCache
	images    map[*Item]Surface

	debug       bool
	warnedItems bool
	logger      *slog.Logger
}

// NewCompositor creates a compositor with the 3D effect on and a white
// background.
func NewCompositor() *Compositor {
	return &Compositor{
		camera:     NewCamera(),
		effect3D:   true,
		background: ColorWhite,
		gradients:  newGradientCache(defaultGradientCacheSize),
		images:     make(map[*Item]Surface),
		logger:     Logger(),
	}
}

// SetEffect3D enables or disables the fold projection.
func (c *Compositor) SetEffect3D(enabled bool) { c.effect3D = enabled }

// Effect3D reports whether the fold projection is enabled.
func (c *Compositor) Effect3D() bool { return c.effect3D }

// SetBackground sets the color used for band shading and the middle band.
func (c *Compositor) SetBackground(bg Color) { c.background = bg }

// Background returns the background color.
func (c *Compositor) Background() Color { return c.background }

// Camera returns the projection camera.
func (c *Compositor) Camera() *Camera { return c.camera }

// SetDebug enables per-frame stats logging to l (nil keeps the current logger).
func (c *Compositor) SetDebug(enabled bool, l *slog.Logger) {
	c.debug = enabled
	if l != nil {
		c.logger = l
	}
}

// Resize recomputes the band geometry and drops size-dependent rasters.
func (c *Compositor) Resize(w, h int) {
	if w == c.geom.Width && h == c.geom.Height {
		return
	}
	c.geom = NewViewportGeometry(w, h)
	c.page = nil
	c.pool.Reset()
}

// Geometry returns the current band geometry.
func (c *Compositor) Geometry() ViewportGeometry { return c.geom }

// Render draws one frame of reg at the scroll position in state. It is a
// no-op until both the registry and the geometry are valid.
func (c *Compositor) Render(out Surface, reg *Registry, state *ScrollState) {
	geom := c.geom
	if !c.effect3D {
		geom = newGeometryWithBands(geom.Width, geom.Height, 0, 0)
	}
	c.render(out, reg, state, geom)
}

// render draws the page and composites it through geom's bands.
func (c *Compositor) render(out Surface, reg *Registry, state *ScrollState, geom ViewportGeometry) {
	if out == nil || reg == nil || state == nil || !reg.Ready() || !geom.Valid() {
		return
	}
	pos := state.Position
	c.ensureBackend(out)
	c.debugCheckItemCount(reg.Len())

	var stats debugStats
	hits, misses := c.gradients.hits, c.gradients.misses

	t0 := time.Now()
	page := c.ensurePage(out, geom.Width, geom.Height)
	page.Clear()
	reg.ensureText()
	stats.visibleItems = c.drawItems(page, reg, pos, geom)
	c.drawBoundaries(page, reg.Orientation(), geom)
	stats.pageTime = time.Since(t0)

	t1 := time.Now()
	stats.bands = c.composite(out, page, reg.Orientation(), geom)
	stats.compositeTime = time.Since(t1)

	stats.gradientHits = c.gradients.hits - hits
	stats.gradientMiss = c.gradients.misses - misses
	c.debugLog(stats)
}

// ensureBackend drops cached rasters when the output backend changes.
func (c *Compositor) ensureBackend(out Surface) {
	t := reflect.TypeOf(out)
	if t == c.backend {
		return
	}
	c.backend = t
	c.page = nil
	c.pool.Reset()
	clear(c.images)
}

func (c *Compositor) ensurePage(out Surface, w, h int) Surface {
	if c.page != nil {
		if pw, ph := c.page.Size(); pw == w && ph == h {
			return c.page
		}
	}
	c.page = out.NewRaster(w, h)
	return c.page
}

// drawItems paints every item intersecting the viewport and returns how many
// were drawn.
func (c *Compositor) drawItems(page Surface, reg *Registry, pos float64, geom ViewportGeometry) int {
	o := reg.Orientation()
	w, h := float64(geom.Width), float64(geom.Height)
	ext := o.extent(w, h)
	cross := o.crossExtent(w, h)
	items := reg.Items()

	drawn := 0
	for i, it := range items {
		start, length := o.span(it.rect)
		if start+length < pos || start > pos+ext {
			continue
		}
		drawn++
		screen := o.shift(it.rect, -pos)
		lead, _ := o.span(screen)
		c.drawDivider(page, it.textColor, o, lead, ext, cross)
		if i == len(items)-1 {
			c.drawDivider(page, it.textColor, o, lead+length, ext, cross)
		}
		c.drawImage(page, it, screen)
		c.drawText(page, reg, it, screen)
	}
	return drawn
}

// drawDivider strokes a line across the cross axis at offset along the
// scroll axis, fading out toward both viewport edges.
func (c *Compositor) drawDivider(page Surface, col Color, o Orientation, offset, ext, cross float64) {
	p := Paint{Gradient: c.gradients.divider(col, o, ext), Width: dividerWidth}
	if o == Horizontal {
		page.DrawLine(offset, 0, offset, cross, p)
		return
	}
	page.DrawLine(0, offset, cross, offset, p)
}

func (c *Compositor) drawImage(page Surface, it *Item, screen Rect) {
	if it.image == nil {
		delete(c.images, it)
		return
	}
	r, ok := c.images[it]
	if !ok || it.imageDirty {
		r = page.NewRasterFromImage(it.image)
		c.images[it] = r
		it.imageDirty = false
	}
	ir, _ := it.imageRect()
	dst := ir.Offset(screen.X, screen.Y).Image()
	sw, sh := r.Size()
	page.DrawRaster(r, image.Rect(0, 0, sw, sh), dst)
}

func (c *Compositor) drawText(page Surface, reg *Registry, it *Item, screen Rect) {
	if len(it.lines) == 0 {
		return
	}
	face := reg.faceFor(it)
	if face == nil {
		return
	}
	for _, ln := range it.lines {
		x := screen.X + (screen.Width-face.MeasureString(ln.Text))/2
		page.DrawText(ln.Text, x, screen.Y+ln.Baseline, face, it.textColor)
	}
}

// drawBoundaries strokes the two cross-axis edges of the viewport in black.
func (c *Compositor) drawBoundaries(page Surface, o Orientation, geom ViewportGeometry) {
	w, h := float64(geom.Width), float64(geom.Height)
	p := Paint{Color: ColorBlack, Width: boundaryWidth}
	if o == Horizontal {
		page.DrawLine(0, 0, w, 0, p)
		page.DrawLine(0, h, w, h, p)
		return
	}
	page.DrawLine(0, 0, 0, h, p)
	page.DrawLine(w, 0, w, h, p)
}

// composite slices page into bands and draws them onto out: the leading band
// folded, the middle band flat, the trailing band folded. It returns the
// number of bands drawn. Empty bands are skipped.
func (c *Compositor) composite(out, page Surface, o Orientation, geom ViewportGeometry) int {
	lead, mid, trail := geom.Bands(o)
	n := 0
	if !lead.Empty() {
		r := c.shadedBand(out, page, o, lead, true)
		out.DrawProjected(r, c.camera.LeadingBand(o, lead))
		c.pool.Release(r)
		n++
	}
	if !mid.Empty() {
		r := c.pool.Acquire(out, mid.Dx(), mid.Dy())
		r.Fill(c.background)
		bounds := image.Rect(0, 0, mid.Dx(), mid.Dy())
		r.DrawRaster(page, mid, bounds)
		out.DrawRaster(r, bounds, mid)
		c.pool.Release(r)
		n++
	}
	if !trail.Empty() {
		r := c.shadedBand(out, page, o, trail, false)
		out.DrawProjected(r, c.camera.TrailingBand(o, trail))
		c.pool.Release(r)
		n++
	}
	return n
}

// shadedBand captures band from page into a pooled raster over a background
// gradient that fades toward the band's outer edge.
func (c *Compositor) shadedBand(out, page Surface, o Orientation, band image.Rectangle, leading bool) Surface {
	w, h := band.Dx(), band.Dy()
	r := c.pool.Acquire(out, w, h)
	length := o.extent(float64(w), float64(h))
	r.FillGradient(Rect{Width: float64(w), Height: float64(h)}, c.gradients.band(c.background, o, length, leading))
	bounds := image.Rect(0, 0, w, h)
	r.DrawRaster(page, band, bounds)
	return r
}
