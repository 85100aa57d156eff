package flywheel

import (
	"image/color"
	"math"
	"testing"
)

// newTestWidget returns a widget with items a-e and no placeholders. It
// records every selection notification.
func newTestWidget(t *testing.T) (*Flywheel, *[]int) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DisablePlaceholders = true
	f := New(cfg)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		f.AddItem(s)
	}
	var got []int
	f.OnSelectionChanged(func(ev SelectionEvent) { got = append(got, ev.Index) })
	return f, &got
}

func settleWidget(t *testing.T, f *Flywheel) {
	t.Helper()
	for range 2000 {
		f.Update(1.0 / 60)
		if !f.Animating() && f.input.PendingInjected() == 0 {
			return
		}
	}
	t.Fatalf("widget still %v after 2000 ticks", f.ctrl.Phase())
}

func TestWidgetBootstrapCentersPlaceholder(t *testing.T) {
	f := New(DefaultConfig())
	f.Resize(200, 300)

	if !f.Registry().Seeded() || f.Registry().Len() != placeholderCount {
		t.Fatalf("seeded %v len %d", f.Registry().Seeded(), f.Registry().Len())
	}
	if got := f.State().Position; got != 100 {
		t.Errorf("position = %v, want 100", got)
	}
	if it := f.SelectedItem(); it == nil || it.Text() != "sample3" {
		t.Errorf("selected = %v, want sample3", it)
	}
	if f.Animating() {
		t.Error("bootstrap should not animate")
	}
}

func TestWidgetBootstrapKeepsSelection(t *testing.T) {
	f, got := newTestWidget(t)
	if !f.SetSelectedIndex(3) {
		t.Fatal("SetSelectedIndex(3) before layout failed")
	}
	// Before layout the selection is immediate.
	if len(*got) != 1 || (*got)[0] != 3 {
		t.Fatalf("notifications = %v, want [3]", *got)
	}
	if f.SetSelectedIndex(3) && len(*got) != 1 {
		t.Errorf("reselecting notified again: %v", *got)
	}

	f.Resize(200, 300)
	// Item 3 spans [300, 400]; its center sits mid-viewport at 200.
	if pos := f.State().Position; pos != 200 {
		t.Errorf("position = %v, want 200", pos)
	}
	if len(*got) != 1 {
		t.Errorf("layout notified: %v", *got)
	}
}

func TestWidgetOnReady(t *testing.T) {
	calls := 0
	cfg := DefaultConfig()
	cfg.OnReady = func(fw *Flywheel) {
		calls++
		if !fw.Registry().Ready() {
			t.Error("OnReady before layout")
		}
	}
	f := New(cfg)
	f.Resize(0, 300)
	if calls != 0 {
		t.Fatal("OnReady called for a degenerate size")
	}
	f.Resize(200, 300)
	f.Resize(300, 400)
	if calls != 1 {
		t.Errorf("OnReady calls = %d, want 1", calls)
	}
}

func TestWidgetSelectionSnaps(t *testing.T) {
	f, got := newTestWidget(t)
	f.Resize(200, 300)

	if !f.SetSelectedIndex(4) {
		t.Fatal("SetSelectedIndex(4) failed")
	}
	if !f.Animating() {
		t.Fatal("selection after layout should animate")
	}
	settleWidget(t, f)

	if f.SelectedIndex() != 4 {
		t.Errorf("selected = %d, want 4", f.SelectedIndex())
	}
	if pos := f.State().Position; pos != 300 {
		t.Errorf("position = %v, want 300", pos)
	}
	if len(*got) != 1 || (*got)[0] != 4 {
		t.Errorf("notifications = %v, want [4]", *got)
	}

	if !f.SetSelectedByText("b") {
		t.Fatal("SetSelectedByText(b) failed")
	}
	settleWidget(t, f)
	if f.SelectedItem().Text() != "b" {
		t.Errorf("selected = %q, want b", f.SelectedItem().Text())
	}

	if !f.SetSelectedItem(f.Registry().Items()[2]) {
		t.Fatal("SetSelectedItem failed")
	}
	settleWidget(t, f)
	if f.SelectedIndex() != 2 {
		t.Errorf("selected = %d, want 2", f.SelectedIndex())
	}
}

func TestWidgetSelectionRejects(t *testing.T) {
	f, got := newTestWidget(t)
	f.Resize(200, 300)
	other, _ := newTestWidget(t)

	tests := []struct {
		name string
		ok   bool
	}{
		{"negative index", f.SetSelectedIndex(-1)},
		{"index past end", f.SetSelectedIndex(5)},
		{"missing text", f.SetSelectedByText("zzz")},
		{"nil item", f.SetSelectedItem(nil)},
		{"foreign item", f.SetSelectedItem(other.Registry().Items()[1])},
	}
	for _, tt := range tests {
		if tt.ok {
			t.Errorf("%s: selection accepted", tt.name)
		}
	}
	if f.Animating() || len(*got) != 0 {
		t.Errorf("rejected selections had effects: animating %v notifications %v", f.Animating(), *got)
	}
}

func TestWidgetOrientationKeepsSelection(t *testing.T) {
	f, _ := newTestWidget(t)
	f.Resize(200, 300)
	f.SetSelectedIndex(2)
	settleWidget(t, f)

	f.SetOrientation(Horizontal)
	if f.Orientation() != Horizontal {
		t.Fatal("orientation not applied")
	}
	// Slices are now 200/3 wide; item 2 is centered.
	if pos := f.State().Position; !approx(pos, 200.0/3, 1e-9) {
		t.Errorf("position = %v, want %v", pos, 200.0/3)
	}
	if f.SelectedIndex() != 2 {
		t.Errorf("selected = %d, want 2", f.SelectedIndex())
	}
}

func TestWidgetGestureAxis(t *testing.T) {
	tests := []struct {
		name string
		o    Orientation
		want float64
	}{
		{"vertical uses dy", Vertical, 50},
		{"horizontal uses dx", Horizontal, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestWidget(t)
			f.SetOrientation(tt.o)
			f.Resize(300, 300)
			start := f.State().Position

			f.DragStart()
			if !f.Drag(10, 50) {
				t.Fatal("drag rejected")
			}
			if got := f.State().Position - start; got != tt.want {
				t.Errorf("moved %v, want %v", got, tt.want)
			}
			f.DragEnd()
			settleWidget(t, f)
		})
	}
}

func TestWidgetFlingUsesAxis(t *testing.T) {
	f, got := newTestWidget(t)
	f.Resize(200, 300)
	f.Fling(0, 2000)
	if f.State().Phase != PhaseFlinging {
		t.Fatalf("phase = %v, want flinging", f.State().Phase)
	}
	settleWidget(t, f)
	if f.SelectedIndex() != 4 || f.State().Position != 300 {
		t.Errorf("selected %d at %v, want 4 at 300", f.SelectedIndex(), f.State().Position)
	}
	if len(*got) != 1 {
		t.Errorf("notifications = %v, want one", *got)
	}
}

func TestWidgetRender(t *testing.T) {
	f, _ := newTestWidget(t)
	f.Set3DEffect(false)
	f.Resize(200, 300)
	out := NewSoftwareSurface(200, 300)
	f.Render(out)

	if c := out.Image().RGBAAt(20, 30); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("page pixel = %v, want white", c)
	}
	if c := out.Image().RGBAAt(0, 150); !isBlack(c) {
		t.Errorf("boundary pixel = %v, want black", c)
	}
}

func TestWidgetDegenerateSize(t *testing.T) {
	f, got := newTestWidget(t)
	f.Resize(0, 0)
	f.Update(1.0 / 60)
	f.Render(NewSoftwareSurface(10, 10))
	if f.Registry().Ready() || f.Animating() {
		t.Error("widget should be idle without a valid size")
	}
	if !f.SetSelectedIndex(1) || len(*got) != 1 {
		t.Errorf("selection before layout: notifications %v", *got)
	}

	f.Resize(200, 300)
	f.Resize(-5, 300)
	if f.Registry().Ready() {
		t.Error("negative size should leave the widget idle")
	}
	if w, h := f.Size(); w != -5 || h != 300 {
		t.Errorf("Size = %d, %d", w, h)
	}
}

func TestWidgetConfigItems(t *testing.T) {
	red := Color{1, 0, 0, 1}
	cfg := DefaultConfig()
	cfg.Items = []ItemConfig{
		{Text: "plain"},
		{Text: "red", Color: &red},
		{Text: "broken icon", Icon: "does-not-exist.svg"},
	}
	f := New(cfg)
	items := f.Registry().Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if items[0].TextColor() != ColorDarkGray || items[1].TextColor() != red {
		t.Errorf("colors = %v, %v", items[0].TextColor(), items[1].TextColor())
	}
	if items[2].Image() != nil {
		t.Error("missing icon should leave the item without an image")
	}
}

func TestWidgetSettlesWithinBounds(t *testing.T) {
	f, _ := newTestWidget(t)
	f.Resize(200, 300)
	f.Fling(0, -math.MaxFloat64)
	settleWidget(t, f)
	if pos := f.State().Position; pos != 0 {
		t.Errorf("position = %v, want 0", pos)
	}
}
