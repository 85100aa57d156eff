package flywheel

import (
	"image"
	"math"
)

// textBelowImagePadding separates an item's image from its text.
const textBelowImagePadding = 2.0

// Item is one entry of the list. Items are created by Registry.AddItem and
// owned by the registry; rect and lines are derived state.
type Item struct {
	text        string
	image       image.Image
	textColor   Color
	textSize    float64
	textPadding float64
	lineSpacing float64

	rect       Rect
	lines      []TextLine
	textDirty  bool
	imageDirty bool
}

func newItem(text string, c Color, img image.Image) *Item {
	return &Item{
		text:        text,
		image:       img,
		textColor:   c,
		textSize:    DefaultTextSize,
		textPadding: DefaultTextPadding,
		textDirty:   true,
		imageDirty:  img != nil,
	}
}

// Text returns the item's text.
func (it *Item) Text() string { return it.text }

// SetText replaces the text and schedules a text relayout.
func (it *Item) SetText(s string) {
	it.text = s
	it.textDirty = true
}

// TextColor returns the item's text color.
func (it *Item) TextColor() Color { return it.textColor }

// SetTextColor sets the text and divider color.
func (it *Item) SetTextColor(c Color) { it.textColor = c }

// TextSize returns the text size in density-independent pixels.
func (it *Item) TextSize() float64 { return it.textSize }

// SetTextSize sets the text size and schedules a text relayout.
func (it *Item) SetTextSize(size float64) {
	it.textSize = size
	it.textDirty = true
}

// TextPadding returns the text padding.
func (it *Item) TextPadding() float64 { return it.textPadding }

// SetTextPadding sets the padding and schedules a text relayout.
func (it *Item) SetTextPadding(p float64) {
	it.textPadding = p
	it.textDirty = true
}

// LineSpacing returns the explicit line height, or 0 when derived.
func (it *Item) LineSpacing() float64 { return it.lineSpacing }

// SetLineSpacing overrides the line height (0 restores the derived height)
// and schedules a text relayout.
func (it *Item) SetLineSpacing(ls float64) {
	it.lineSpacing = ls
	it.textDirty = true
}

// Image returns the item's optional image.
func (it *Item) Image() image.Image { return it.image }

// SetImage replaces the item's image and schedules a text relayout, since
// the image takes space above the text.
func (it *Item) SetImage(img image.Image) {
	it.image = img
	it.imageDirty = true
	it.textDirty = true
}

// Rect returns the item's rectangle in content space.
func (it *Item) Rect() Rect { return it.rect }

// Lines returns the most recently computed text lines. Lines are refreshed
// by the registry before rendering.
func (it *Item) Lines() []TextLine { return it.lines }

// setRect assigns the item rectangle. A size change invalidates the text.
func (it *Item) setRect(r Rect) {
	if r.Width != it.rect.Width || r.Height != it.rect.Height {
		it.textDirty = true
	}
	it.rect = r
}

// imageRect returns the image placement inside the item rect (item-local
// coordinates) and the rect left for text. Without an image the text gets
// the whole item.
func (it *Item) imageRect() (img, text Rect) {
	text = Rect{Width: it.rect.Width, Height: it.rect.Height}
	if it.image == nil {
		return Rect{}, text
	}
	b := it.image.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 {
		return Rect{}, text
	}
	maxH := it.rect.Height / 2
	maxW := it.rect.Width - it.textPadding
	scale := math.Min(1, math.Min(maxH/ih, maxW/iw))
	w, h := iw*scale, ih*scale
	img = Rect{X: (it.rect.Width - w) / 2, Y: it.textPadding / 2, Width: w, Height: h}
	top := img.Bottom() + textBelowImagePadding
	text = Rect{Y: top, Width: it.rect.Width, Height: it.rect.Height - top}
	return img, text
}

// layoutText recomputes the text lines with face when dirty.
func (it *Item) layoutText(face *Face, lineGap float64) {
	if !it.textDirty {
		return
	}
	it.textDirty = false
	if face == nil {
		it.lines = nil
		return
	}
	_, tr := it.imageRect()
	it.lines = LayoutText(it.text, tr, face, TextLayoutOptions{
		Padding:     it.textPadding,
		LineSpacing: it.lineSpacing,
		LineGap:     lineGap,
	})
	for i := range it.lines {
		it.lines[i].Baseline += tr.Y
	}
}
