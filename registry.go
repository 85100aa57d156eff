package flywheel

import (
	"fmt"
	"image"
)

// placeholderCount is the number of demo items seeded into an empty registry.
const placeholderCount = 5

// Registry owns the ordered item list and its layout along the scroll axis.
type Registry struct {
	items       []*Item
	orientation Orientation
	selected    *Item

	width, height float64
	pageSlice     float64
	contentExtent float64
	maxScroll     float64
	ready         bool

	defaultTextColor Color
	seedPlaceholders bool
	seeded           bool
	typeface         *Typeface
	density          float64
	lineGap          float64
	textSize         float64
	textPadding      float64
	onLayout         func()
}

// NewRegistry creates an empty registry. Placeholder seeding is off; the
// widget enables it from Config.
func NewRegistry() *Registry {
	return &Registry{
		defaultTextColor: ColorDarkGray,
		typeface:         DefaultTypeface(),
		density:          1,
	}
}

// SetTypeface sets the typeface used for item text layout.
func (r *Registry) SetTypeface(tf *Typeface) {
	r.typeface = tf
	r.invalidateText()
}

// SetDensity sets the density multiplier applied to item text sizes.
func (r *Registry) SetDensity(d float64) {
	if d <= 0 {
		d = 1
	}
	r.density = d
	r.invalidateText()
}

// SetLineGap sets the gap added to measured text height (0 = DefaultLineGap).
func (r *Registry) SetLineGap(g float64) {
	r.lineGap = g
	r.invalidateText()
}

// SetItemStyle sets the text size and padding given to items added from now
// on. Zero keeps the package defaults.
func (r *Registry) SetItemStyle(textSize, textPadding float64) {
	r.textSize = textSize
	r.textPadding = textPadding
}

// SetSeedPlaceholders enables seeding of demo items into an empty registry at
// its first valid layout.
func (r *Registry) SetSeedPlaceholders(enabled bool) {
	r.seedPlaceholders = enabled
}

// AddItem appends an item. The first item added becomes the selection.
// When the registry has already been laid out, layout is re-run so the new
// item gets its rectangle immediately.
func (r *Registry) AddItem(text string, c Color, img image.Image) *Item {
	it := newItem(text, c, img)
	if r.textSize > 0 {
		it.textSize = r.textSize
	}
	if r.textPadding > 0 {
		it.textPadding = r.textPadding
	}
	r.items = append(r.items, it)
	if len(r.items) == 1 {
		r.selected = it
	}
	if r.ready {
		r.relayout()
	}
	return it
}

// DefaultTextColor returns the color used by AddItem callers that don't pick one.
func (r *Registry) DefaultTextColor() Color {
	return r.defaultTextColor
}

// SetDefaultTextColor sets the default text color, optionally recoloring
// every existing item.
func (r *Registry) SetDefaultTextColor(c Color, applyToExisting bool) {
	r.defaultTextColor = c
	if !applyToExisting {
		return
	}
	for _, it := range r.items {
		it.textColor = c
	}
}

// Layout assigns item rectangles for a container of the given size. It is a
// no-op for degenerate geometry.
func (r *Registry) Layout(width, height float64, o Orientation) {
	if width <= 0 || height <= 0 {
		r.ready = false
		return
	}
	r.width, r.height, r.orientation = width, height, o

	if len(r.items) == 0 && r.seedPlaceholders && !r.seeded {
		r.seeded = true
		for i := 1; i <= placeholderCount; i++ {
			r.AddItem(fmt.Sprintf("sample%d", i), r.defaultTextColor, nil)
		}
	}

	r.ready = true
	r.relayout()
}

// relayout walks the items and assigns contiguous slices along the axis.
func (r *Registry) relayout() {
	o := r.orientation
	r.pageSlice = o.extent(r.width, r.height) / 3
	cross := o.crossExtent(r.width, r.height)

	pos := 0.0
	for _, it := range r.items {
		var rect Rect
		if o == Horizontal {
			rect = Rect{X: pos, Y: 0, Width: r.pageSlice, Height: cross}
		} else {
			rect = Rect{X: 0, Y: pos, Width: cross, Height: r.pageSlice}
		}
		it.setRect(rect)
		pos += r.pageSlice
	}
	r.contentExtent = pos
	r.maxScroll = pos - 2*r.pageSlice
	if r.maxScroll < 0 {
		r.maxScroll = 0
	}
	r.ensureText()
	if r.onLayout != nil {
		r.onLayout()
	}
}

// ensureText re-runs text layout for every item whose text is dirty.
func (r *Registry) ensureText() {
	for _, it := range r.items {
		it.layoutText(r.faceFor(it), r.lineGap)
	}
}

func (r *Registry) invalidateText() {
	for _, it := range r.items {
		it.textDirty = true
	}
}

// Seeded reports whether placeholder items were added.
func (r *Registry) Seeded() bool { return r.seeded }

// Ready reports whether the registry has a valid layout.
func (r *Registry) Ready() bool { return r.ready }

// Orientation returns the orientation of the last layout.
func (r *Registry) Orientation() Orientation { return r.orientation }

// PageSlice returns the length of one item along the scroll axis.
func (r *Registry) PageSlice() float64 { return r.pageSlice }

// ContentExtent returns the total length of all items along the scroll axis.
func (r *Registry) ContentExtent() float64 { return r.contentExtent }

// MaxScroll returns the largest valid scroll position.
func (r *Registry) MaxScroll() float64 { return r.maxScroll }

// ViewportExtent returns the container length along the scroll axis.
func (r *Registry) ViewportExtent() float64 {
	return r.orientation.extent(r.width, r.height)
}

// Len returns the number of items.
func (r *Registry) Len() int { return len(r.items) }

// Item returns the item at index i.
func (r *Registry) Item(i int) (*Item, bool) {
	if i < 0 || i >= len(r.items) {
		return nil, false
	}
	return r.items[i], true
}

// Items returns the item list. The returned slice MUST NOT be mutated.
func (r *Registry) Items() []*Item { return r.items }

// Index returns the position of it in the list, or -1.
func (r *Registry) Index(it *Item) int {
	for i, x := range r.items {
		if x == it {
			return i
		}
	}
	return -1
}

// FindText returns the first item whose text equals s.
func (r *Registry) FindText(s string) (*Item, bool) {
	for _, it := range r.items {
		if it.text == s {
			return it, true
		}
	}
	return nil, false
}

// Selected returns the selected item, or nil for an empty registry.
func (r *Registry) Selected() *Item { return r.selected }

// SelectedIndex returns the index of the selected item, or -1.
func (r *Registry) SelectedIndex() int { return r.Index(r.selected) }

// setSelected changes the selection. It reports whether the selection changed.
func (r *Registry) setSelected(it *Item) bool {
	if it == r.selected {
		return false
	}
	r.selected = it
	return true
}

// ItemAtOffset returns the item whose rectangle contains the content offset
// along the scroll axis, or nil.
func (r *Registry) ItemAtOffset(offset float64) *Item {
	for _, it := range r.items {
		start, length := r.orientation.span(it.rect)
		if offset >= start && offset < start+length {
			return it
		}
	}
	return nil
}

// nearestAt returns the item containing offset, falling back to the first
// item when offset lies before the content and the last item otherwise.
func (r *Registry) nearestAt(offset float64) *Item {
	if len(r.items) == 0 {
		return nil
	}
	if it := r.ItemAtOffset(offset); it != nil {
		return it
	}
	first, _ := r.orientation.span(r.items[0].rect)
	if offset < first {
		return r.items[0]
	}
	return r.items[len(r.items)-1]
}

// centerPosition returns the clamped scroll position that centers it in the
// viewport.
func (r *Registry) centerPosition(it *Item) float64 {
	start, length := r.orientation.span(it.rect)
	return clamp(start+length/2-r.ViewportExtent()/2, 0, r.maxScroll)
}

// faceFor returns the face an item's text is laid out and drawn with.
func (r *Registry) faceFor(it *Item) *Face {
	if r.typeface == nil {
		return nil
	}
	return r.typeface.Face(it.textSize * r.density)
}
