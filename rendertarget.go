package flywheel

// rasterPool recycles off-screen rasters by exact size. Band rasters keep
// their size between frames, so after the first frame Acquire never
// allocates until the viewport is resized.
type rasterPool struct {
	buckets map[uint64][]Surface
}

// poolKey packs width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(uint32(h))
}

// Acquire returns a cleared raster of exactly w×h pixels created by factory's
// backend.
func (p *rasterPool) Acquire(factory Surface, w, h int) Surface {
	key := poolKey(w, h)
	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			s := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			s.Clear()
			return s
		}
	}
	return factory.NewRaster(w, h)
}

// Release returns a raster to the pool. It is cleared on the next Acquire.
func (p *rasterPool) Release(s Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	if p.buckets == nil {
		p.buckets = make(map[uint64][]Surface)
	}
	p.buckets[poolKey(w, h)] = append(p.buckets[poolKey(w, h)], s)
}

// Reset drops every pooled raster, e.g. after a resize.
func (p *rasterPool) Reset() {
	p.buckets = nil
}
