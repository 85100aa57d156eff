package flywheel

import "sort"

// dividerStops are the offsets of the divider fade: transparent at both
// viewport edges, full color across the middle.
var dividerStops = [4]float64{0, 0.3, 0.7, 1}

// defaultGradientCacheSize bounds the number of memoized gradients.
const defaultGradientCacheSize = 16

// GradientStop is one color stop of a LinearGradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// LinearGradient varies color along the line from (X0, Y0) to (X1, Y1).
// Points are projected onto that line; before the first stop and after the
// last the end colors extend.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []GradientStop
}

// ColorAt returns the gradient color at (x, y).
func (g *LinearGradient) ColorAt(x, y float64) Color {
	if len(g.Stops) == 0 {
		return ColorTransparent
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	}
	return g.at(t)
}

// at returns the color at parameter t along the gradient line.
func (g *LinearGradient) at(t float64) Color {
	stops := g.Stops
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	a, b := stops[i-1], stops[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
}

// DividerGradient returns the paint for item dividers in viewport
// coordinates. It runs along the scroll axis over extent, so a divider is
// transparent at the viewport edges and solid c in the middle third.
func DividerGradient(c Color, o Orientation, extent float64) *LinearGradient {
	g := &LinearGradient{Stops: make([]GradientStop, len(dividerStops))}
	if o == Horizontal {
		g.X1 = extent
	} else {
		g.Y1 = extent
	}
	for i, off := range dividerStops {
		col := c
		if i == 0 || i == len(dividerStops)-1 {
			col = c.WithAlpha(0)
		}
		g.Stops[i] = GradientStop{Offset: off, Color: col}
	}
	return g
}

// BandShade returns the shading for an edge band raster of the given length
// along the scroll axis. The leading band goes from transparent at the outer
// edge to bg at the fold; the trailing band from bg at the fold to
// transparent at the outer edge.
func BandShade(bg Color, o Orientation, length float64, leading bool) *LinearGradient {
	from, to := bg.WithAlpha(0), bg
	if !leading {
		from, to = bg, bg.WithAlpha(0)
	}
	g := &LinearGradient{Stops: []GradientStop{{0, from}, {1, to}}}
	if o == Horizontal {
		g.X1 = length
	} else {
		g.Y1 = length
	}
	return g
}

type gradientKind uint8

const (
	gradientDivider gradientKind = iota
	gradientLeadingBand
	gradientTrailingBand
)

type gradientKey struct {
	kind        gradientKind
	color       Color
	extent      float64
	orientation Orientation
}

// gradientCache memoizes gradients by (kind, color, extent, orientation),
// evicting the least recently used entry when full.
type gradientCache struct {
	entries map[gradientKey]*LinearGradient
	order   []gradientKey
	maxSize int

	hits, misses int
}

func newGradientCache(maxSize int) *gradientCache {
	if maxSize <= 0 {
		maxSize = defaultGradientCacheSize
	}
	return &gradientCache{
		entries: make(map[gradientKey]*LinearGradient),
		order:   make([]gradientKey, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *gradientCache) divider(col Color, o Orientation, extent float64) *LinearGradient {
	key := gradientKey{gradientDivider, col, extent, o}
	if g := c.get(key); g != nil {
		return g
	}
	g := DividerGradient(col, o, extent)
	c.set(key, g)
	return g
}

func (c *gradientCache) band(bg Color, o Orientation, length float64, leading bool) *LinearGradient {
	kind := gradientTrailingBand
	if leading {
		kind = gradientLeadingBand
	}
	key := gradientKey{kind, bg, length, o}
	if g := c.get(key); g != nil {
		return g
	}
	g := BandShade(bg, o, length, leading)
	c.set(key, g)
	return g
}

func (c *gradientCache) get(key gradientKey) *LinearGradient {
	g, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil
	}
	c.hits++
	c.moveToEnd(key)
	return g
}

func (c *gradientCache) set(key gradientKey, g *LinearGradient) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = g
		c.moveToEnd(key)
		return
	}
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = g
	c.order = append(c.order, key)
}

func (c *gradientCache) moveToEnd(key gradientKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *gradientCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *gradientCache) len() int { return len(c.order) }
