package flywheel

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderCenter is the placeholder item centered at bootstrap.
const placeholderCenter = 2

// SelectionEvent describes a completed selection change.
type SelectionEvent struct {
	Index int
	Text  string
	Item  *Item
}

// SelectionSink is the interface for forwarding selection changes to
// another system, such as an ECS world.
type SelectionSink interface {
	EmitSelection(event SelectionEvent)
}

// Flywheel is the paged item list widget. It ties the registry, the scroll
// controller, the compositor and the gesture tracker together and is driven
// by the host: Update once per tick, then Render or Draw.
type Flywheel struct {
	cfg    Config
	logger *slog.Logger

	reg   *Registry
	state ScrollState
	ctrl  *Controller
	comp  *Compositor
	input *GestureTracker

	width, height int
	started       bool

	onSelection func(SelectionEvent)
	sink        SelectionSink
	screen      *EbitenSurface

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
}

// New creates a widget from cfg. Config errors that are not fatal (a font or
// icon that fails to load) are logged and the default is used instead.
func New(cfg Config) *Flywheel {
	cfg = cfg.withDefaults()
	f := &Flywheel{
		cfg:    cfg,
		logger: cfg.Logger,
		reg:    NewRegistry(),
		comp:   NewCompositor(),

		ScreenshotDir: defaultScreenshotDir,
	}
	if f.logger == nil {
		f.logger = Logger()
	}
	if cfg.LogLevel != "" {
		SetRawLogLevel(cfg.LogLevel)
	}

	f.reg.orientation = cfg.Orientation
	f.reg.SetDensity(cfg.Density)
	f.reg.SetLineGap(cfg.LineGap)
	f.reg.SetItemStyle(cfg.TextSize, cfg.TextPadding)
	f.reg.SetDefaultTextColor(cfg.TextColor, false)
	f.reg.SetSeedPlaceholders(!cfg.DisablePlaceholders)
	f.reg.SetTypeface(f.loadTypeface())
	f.reg.onLayout = func() {
		f.logger.Debug("layout",
			slog.Int("items", f.reg.Len()),
			slog.Float64("page_slice", f.reg.PageSlice()),
			slog.Float64("max_scroll", f.reg.MaxScroll()))
	}

	f.ctrl = NewController(&f.state, f.reg, cfg.controllerOptions())
	f.ctrl.OnSelect(f.notify)

	f.comp.SetEffect3D(cfg.Effect3D)
	f.comp.SetBackground(cfg.BackgroundColor)
	f.comp.SetDebug(cfg.Debug, f.logger)

	f.input = NewGestureTracker(f)
	f.input.SetDragDeadZone(cfg.DragDeadZone)
	f.input.SetMinFlingVelocity(cfg.MinFlingVelocity * cfg.Density)

	for _, ic := range cfg.Items {
		f.addConfigItem(ic)
	}
	return f
}

func (f *Flywheel) loadTypeface() *Typeface {
	if f.cfg.Typeface != nil {
		return f.cfg.Typeface
	}
	if f.cfg.FontPath == "" {
		return DefaultTypeface()
	}
	tf, err := LoadTypefaceFile(f.cfg.FontPath)
	if err != nil {
		f.logger.Warn("font unavailable, using default", slog.String("path", f.cfg.FontPath), slog.Any("error", err))
		return DefaultTypeface()
	}
	return tf
}

func (f *Flywheel) addConfigItem(ic ItemConfig) {
	c := f.reg.DefaultTextColor()
	if ic.Color != nil {
		c = *ic.Color
	}
	var img image.Image
	if ic.Icon != "" {
		icon, err := LoadIcon(ic.Icon, ic.IconSize)
		if err != nil {
			f.logger.Warn("icon unavailable", slog.String("item", ic.Text), slog.Any("error", err))
		} else {
			img = icon
		}
	}
	f.reg.AddItem(ic.Text, c, img)
}

// Config returns the configuration the widget was built with.
func (f *Flywheel) Config() Config { return f.cfg }

// Registry returns the item registry.
func (f *Flywheel) Registry() *Registry { return f.reg }

// Controller returns the scroll controller.
func (f *Flywheel) Controller() *Controller { return f.ctrl }

// Compositor returns the renderer.
func (f *Flywheel) Compositor() *Compositor { return f.comp }

// Input returns the gesture tracker feeding the widget.
func (f *Flywheel) Input() *GestureTracker { return f.input }

// State returns a copy of the scroll state.
func (f *Flywheel) State() ScrollState { return f.state }

// Size returns the viewport size.
func (f *Flywheel) Size() (w, h int) { return f.width, f.height }

// AddItem appends an item with the default text color.
func (f *Flywheel) AddItem(text string) *Item {
	return f.reg.AddItem(text, f.reg.DefaultTextColor(), nil)
}

// AddItemColor appends an item with its own text color.
func (f *Flywheel) AddItemColor(text string, c Color) *Item {
	return f.reg.AddItem(text, c, nil)
}

// AddItemImage appends an item with an image drawn above its text.
func (f *Flywheel) AddItemImage(text string, c Color, img image.Image) *Item {
	return f.reg.AddItem(text, c, img)
}

// Resize sets the viewport size and lays the items out again, keeping the
// selected item centered. Degenerate sizes are recorded but leave the widget
// idle until a valid size arrives.
func (f *Flywheel) Resize(w, h int) {
	if w == f.width && h == f.height && f.reg.Ready() {
		return
	}
	f.width, f.height = w, h
	f.comp.Resize(w, h)
	f.relayout()
}

// relayout re-runs layout and re-centers the selection without animation.
func (f *Flywheel) relayout() {
	f.reg.Layout(float64(f.width), float64(f.height), f.reg.Orientation())
	if !f.reg.Ready() {
		return
	}
	if !f.started {
		f.started = true
		target := f.reg.Selected()
		if f.reg.Seeded() {
			if it, ok := f.reg.Item(placeholderCenter); ok {
				target = it
			}
		}
		f.ctrl.Jump(target)
		f.logger.Info("ready",
			slog.Int("width", f.width), slog.Int("height", f.height),
			slog.String("orientation", f.reg.Orientation().String()),
			slog.Int("items", f.reg.Len()))
		if f.cfg.OnReady != nil {
			f.cfg.OnReady(f)
		}
		return
	}
	f.ctrl.Jump(f.reg.Selected())
}

// SetOrientation switches the scroll axis.
func (f *Flywheel) SetOrientation(o Orientation) {
	if o == f.reg.Orientation() {
		return
	}
	f.reg.orientation = o
	if f.width > 0 && f.height > 0 {
		f.relayout()
	}
}

// Orientation returns the scroll axis.
func (f *Flywheel) Orientation() Orientation { return f.reg.Orientation() }

// Set3DEffect enables or disables the fold projection.
func (f *Flywheel) Set3DEffect(enabled bool) { f.comp.SetEffect3D(enabled) }

// Has3DEffect reports whether the fold projection is enabled.
func (f *Flywheel) Has3DEffect() bool { return f.comp.Effect3D() }

// SetBackgroundColor sets the color used behind the page.
func (f *Flywheel) SetBackgroundColor(c Color) { f.comp.SetBackground(c) }

// BackgroundColor returns the background color.
func (f *Flywheel) BackgroundColor() Color { return f.comp.Background() }

// SetDefaultTextColor sets the color for items added without one, optionally
// recoloring the existing items.
func (f *Flywheel) SetDefaultTextColor(c Color, applyToExisting bool) {
	f.reg.SetDefaultTextColor(c, applyToExisting)
}

// SelectedItem returns the selected item, or nil when the list is empty.
func (f *Flywheel) SelectedItem() *Item { return f.reg.Selected() }

// SelectedIndex returns the index of the selected item, or -1.
func (f *Flywheel) SelectedIndex() int { return f.reg.SelectedIndex() }

// SetSelectedIndex scrolls to the item at index i. It reports false, and
// does nothing, for an index out of range.
func (f *Flywheel) SetSelectedIndex(i int) bool {
	it, ok := f.reg.Item(i)
	if !ok {
		return false
	}
	f.selectItem(it)
	return true
}

// SetSelectedItem scrolls to it. It reports false for an item that is not in
// the list.
func (f *Flywheel) SetSelectedItem(it *Item) bool {
	if it == nil || f.reg.Index(it) < 0 {
		return false
	}
	f.selectItem(it)
	return true
}

// SetSelectedByText scrolls to the first item whose text is s. It reports
// false when there is none.
func (f *Flywheel) SetSelectedByText(s string) bool {
	it, ok := f.reg.FindText(s)
	if !ok {
		return false
	}
	f.selectItem(it)
	return true
}

// selectItem snaps to it, or selects it directly before the first layout.
func (f *Flywheel) selectItem(it *Item) {
	if f.reg.Ready() {
		f.ctrl.SnapTo(it)
		return
	}
	if f.reg.setSelected(it) {
		f.notify(it)
	}
}

// OnSelectionChanged sets the callback fired when a selection completes.
func (f *Flywheel) OnSelectionChanged(fn func(SelectionEvent)) {
	f.onSelection = fn
}

// SetSelectionSink forwards selection changes to sink (nil to disconnect).
func (f *Flywheel) SetSelectionSink(sink SelectionSink) {
	f.sink = sink
}

func (f *Flywheel) notify(it *Item) {
	if it == nil {
		return
	}
	ev := SelectionEvent{Index: f.reg.Index(it), Text: it.Text(), Item: it}
	f.logger.Debug("selection changed", slog.Int("index", ev.Index), slog.String("text", ev.Text))
	if f.onSelection != nil {
		f.onSelection(ev)
	}
	if f.sink != nil {
		f.sink.EmitSelection(ev)
	}
}

// DragStart implements GestureSink.
func (f *Flywheel) DragStart() { f.ctrl.DragStart() }

// Drag implements GestureSink, using the component along the scroll axis.
func (f *Flywheel) Drag(dx, dy float64) bool {
	if f.reg.Orientation() == Horizontal {
		return f.ctrl.Drag(dx)
	}
	return f.ctrl.Drag(dy)
}

// Fling implements GestureSink, using the component along the scroll axis.
func (f *Flywheel) Fling(vx, vy float64) {
	if f.reg.Orientation() == Horizontal {
		f.ctrl.Fling(vx)
		return
	}
	f.ctrl.Fling(vy)
}

// DragEnd implements GestureSink.
func (f *Flywheel) DragEnd() { f.ctrl.DragEnd() }

// Update processes one tick: scripted steps and input first, then the
// running animation.
func (f *Flywheel) Update(dt float32) {
	if f.testRunner != nil {
		f.testRunner.step(f)
	}
	f.input.Update(float64(dt))
	f.ctrl.Update(dt)
}

// Animating reports whether a fling or snap is in progress, i.e. whether the
// host should keep ticking.
func (f *Flywheel) Animating() bool {
	p := f.ctrl.Phase()
	return p == PhaseFlinging || p == PhaseSnapping
}

// Render draws the widget onto out, then captures any queued screenshots.
func (f *Flywheel) Render(out Surface) {
	f.comp.Render(out, f.reg, &f.state)
	f.flushScreenshots(out)
}

// Draw renders onto an Ebitengine image such as the screen.
func (f *Flywheel) Draw(dst *ebiten.Image) {
	if f.screen == nil || f.screen.Image() != dst {
		f.screen = NewEbitenSurface(dst)
	}
	f.Render(f.screen)
}
