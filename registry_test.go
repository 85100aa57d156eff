package flywheel

import (
	"fmt"
	"image"
	"testing"
)

func newTestRegistry(n int) *Registry {
	r := NewRegistry()
	r.SetTypeface(BasicTypeface())
	for i := 0; i < n; i++ {
		r.AddItem(fmt.Sprintf("Item %d", i), ColorDarkGray, nil)
	}
	return r
}

func TestRegistryLayoutVertical(t *testing.T) {
	r := newTestRegistry(5)
	r.Layout(200, 300, Vertical)

	if !r.Ready() {
		t.Fatal("expected Ready after valid layout")
	}
	if r.PageSlice() != 100 {
		t.Errorf("PageSlice = %v, want 100", r.PageSlice())
	}
	if r.ContentExtent() != 500 {
		t.Errorf("ContentExtent = %v, want 500", r.ContentExtent())
	}
	if r.MaxScroll() != 300 {
		t.Errorf("MaxScroll = %v, want 300", r.MaxScroll())
	}
	for i, it := range r.Items() {
		want := Rect{X: 0, Y: float64(i * 100), Width: 200, Height: 100}
		if it.Rect() != want {
			t.Errorf("item %d rect = %+v, want %+v", i, it.Rect(), want)
		}
	}
	it, _ := r.Item(2)
	if got := r.centerPosition(it); got != 100 {
		t.Errorf("centerPosition(item 2) = %v, want 100", got)
	}
}

func TestRegistryLayoutHorizontal(t *testing.T) {
	r := newTestRegistry(4)
	r.Layout(600, 120, Horizontal)

	if r.PageSlice() != 200 {
		t.Errorf("PageSlice = %v, want 200", r.PageSlice())
	}
	if r.MaxScroll() != 400 {
		t.Errorf("MaxScroll = %v, want 400", r.MaxScroll())
	}
	for i, it := range r.Items() {
		want := Rect{X: float64(i * 200), Y: 0, Width: 200, Height: 120}
		if it.Rect() != want {
			t.Errorf("item %d rect = %+v, want %+v", i, it.Rect(), want)
		}
	}
}

func TestRegistryContiguous(t *testing.T) {
	for _, o := range []Orientation{Vertical, Horizontal} {
		t.Run(o.String(), func(t *testing.T) {
			r := newTestRegistry(9)
			r.Layout(333, 517, o)
			prevEnd := 0.0
			for i, it := range r.Items() {
				start, length := o.span(it.Rect())
				if start != prevEnd {
					t.Errorf("item %d starts at %v, want %v", i, start, prevEnd)
				}
				if length != r.PageSlice() {
					t.Errorf("item %d length = %v, want %v", i, length, r.PageSlice())
				}
				prevEnd = start + length
			}
			if prevEnd != r.ContentExtent() {
				t.Errorf("items end at %v, ContentExtent = %v", prevEnd, r.ContentExtent())
			}
		})
	}
}

func TestRegistryMaxScrollNeverNegative(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			r := newTestRegistry(tt.n)
			r.Layout(100, 300, Vertical)
			if r.MaxScroll() != tt.want {
				t.Errorf("MaxScroll = %v, want %v", r.MaxScroll(), tt.want)
			}
		})
	}
}

func TestRegistryDegenerateGeometry(t *testing.T) {
	r := newTestRegistry(3)
	r.Layout(200, 300, Vertical)
	before := r.Items()[1].Rect()

	for _, size := range [][2]float64{{0, 300}, {200, 0}, {-5, -5}} {
		r.Layout(size[0], size[1], Vertical)
		if r.Ready() {
			t.Errorf("Layout(%v, %v): expected not Ready", size[0], size[1])
		}
		if got := r.Items()[1].Rect(); got != before {
			t.Errorf("Layout(%v, %v) changed rects: %+v", size[0], size[1], got)
		}
	}
}

func TestRegistryFirstItemSelected(t *testing.T) {
	r := NewRegistry()
	if r.Selected() != nil || r.SelectedIndex() != -1 {
		t.Fatal("empty registry should have no selection")
	}
	first := r.AddItem("a", ColorBlack, nil)
	r.AddItem("b", ColorBlack, nil)
	if r.Selected() != first {
		t.Error("first item should be selected")
	}
	if r.setSelected(first) {
		t.Error("setSelected of the current item should report no change")
	}
}

func TestRegistryAddAfterLayout(t *testing.T) {
	r := newTestRegistry(2)
	r.Layout(90, 300, Vertical)
	it := r.AddItem("late", ColorBlack, nil)
	want := Rect{Y: 200, Width: 90, Height: 100}
	if it.Rect() != want {
		t.Errorf("rect = %+v, want %+v", it.Rect(), want)
	}
	if r.MaxScroll() != 100 {
		t.Errorf("MaxScroll = %v, want 100", r.MaxScroll())
	}
}

func TestRegistryPlaceholders(t *testing.T) {
	r := NewRegistry()
	r.SetSeedPlaceholders(true)
	r.Layout(0, 0, Vertical)
	if r.Len() != 0 || r.Seeded() {
		t.Fatal("degenerate layout must not seed")
	}
	r.Layout(100, 300, Vertical)
	if r.Len() != placeholderCount || !r.Seeded() {
		t.Fatalf("Len = %d, want %d placeholders", r.Len(), placeholderCount)
	}
	if it, _ := r.Item(0); it.Text() != "sample1" {
		t.Errorf("first placeholder = %q, want sample1", it.Text())
	}
	// Seeding happens once.
	r.Layout(100, 330, Vertical)
	if r.Len() != placeholderCount {
		t.Errorf("Len = %d after relayout, want %d", r.Len(), placeholderCount)
	}

	off := NewRegistry()
	off.Layout(100, 300, Vertical)
	if off.Len() != 0 {
		t.Errorf("seeding disabled: Len = %d, want 0", off.Len())
	}
}

func TestRegistryLookup(t *testing.T) {
	r := newTestRegistry(4)
	r.Layout(100, 300, Vertical)

	it, ok := r.FindText("Item 2")
	if !ok || r.Index(it) != 2 {
		t.Errorf("FindText(Item 2) = %v, %v", it, ok)
	}
	if _, ok := r.FindText("missing"); ok {
		t.Error("FindText(missing) should fail")
	}
	if _, ok := r.Item(-1); ok {
		t.Error("Item(-1) should fail")
	}
	if _, ok := r.Item(4); ok {
		t.Error("Item(4) should fail")
	}
	if r.Index(&Item{}) != -1 {
		t.Error("Index of a foreign item should be -1")
	}

	tests := []struct {
		offset float64
		want   int
	}{
		{0, 0},
		{99.9, 0},
		{100, 1},
		{399, 3},
		{400, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		got := r.ItemAtOffset(tt.offset)
		if r.Index(got) != tt.want {
			t.Errorf("ItemAtOffset(%v) = index %d, want %d", tt.offset, r.Index(got), tt.want)
		}
	}
	if got := r.nearestAt(-50); r.Index(got) != 0 {
		t.Errorf("nearestAt(-50) = %d, want 0", r.Index(got))
	}
	if got := r.nearestAt(1000); r.Index(got) != 3 {
		t.Errorf("nearestAt(1000) = %d, want 3", r.Index(got))
	}
}

func TestRegistryTextLayout(t *testing.T) {
	r := newTestRegistry(1)
	r.Layout(200, 300, Vertical)
	it := r.Items()[0]
	lines := it.Lines()
	if len(lines) != 1 || lines[0].Text != "Item 0" {
		t.Fatalf("lines = %+v, want one line \"Item 0\"", lines)
	}

	it.SetText("A much longer label that needs several lines here")
	r.ensureText()
	if len(it.Lines()) < 2 {
		t.Errorf("expected wrapped text, got %d lines", len(it.Lines()))
	}

	// A rect size change re-runs layout.
	r.Layout(1000, 300, Vertical)
	if len(it.Lines()) != 1 {
		t.Errorf("expected one line in a wide rect, got %d", len(it.Lines()))
	}
}

func TestRegistryDefaultTextColor(t *testing.T) {
	r := newTestRegistry(2)
	red := Color{R: 1, A: 1}
	r.SetDefaultTextColor(red, false)
	if r.Items()[0].TextColor() == red {
		t.Error("existing items should keep their color")
	}
	r.SetDefaultTextColor(red, true)
	for i, it := range r.Items() {
		if it.TextColor() != red {
			t.Errorf("item %d color = %v, want %v", i, it.TextColor(), red)
		}
	}
}

func TestItemImageRect(t *testing.T) {
	r := NewRegistry()
	r.SetTypeface(BasicTypeface())
	it := r.AddItem("icon", ColorBlack, image.NewRGBA(image.Rect(0, 0, 40, 40)))
	r.Layout(200, 300, Vertical)

	img, text := it.imageRect()
	if img.Width != 40 || img.Height != 40 {
		t.Errorf("image size = %vx%v, want 40x40", img.Width, img.Height)
	}
	if img.X != 80 {
		t.Errorf("image x = %v, want centered at 80", img.X)
	}
	if text.Y < img.Bottom() {
		t.Errorf("text rect starts at %v, above image bottom %v", text.Y, img.Bottom())
	}

	// Images taller than half the item are scaled down.
	it.SetImage(image.NewRGBA(image.Rect(0, 0, 10, 200)))
	img, _ = it.imageRect()
	if img.Height != 50 {
		t.Errorf("scaled image height = %v, want 50", img.Height)
	}
}

func TestItemStyleAndDensity(t *testing.T) {
	r := NewRegistry()
	r.SetItemStyle(24, 10)
	it := r.AddItem("styled", ColorBlack, nil)
	if it.TextSize() != 24 || it.TextPadding() != 10 {
		t.Errorf("style = %v/%v, want 24/10", it.TextSize(), it.TextPadding())
	}
	r.SetDensity(2)
	if f := r.faceFor(it); f != DefaultTypeface().Face(48) {
		t.Error("faceFor should scale the text size by density")
	}
	r.SetTypeface(nil)
	if r.faceFor(it) != nil {
		t.Error("faceFor without a typeface should be nil")
	}
}
