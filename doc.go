// Package flywheel is a paged, flingable item list widget for [Ebitengine].
//
// A Flywheel shows a vertical or horizontal list of text items, three per
// viewport. Dragging scrolls the list, releasing with speed starts a
// decelerating fling, and every gesture ends with the nearest item snapped
// to the center of the viewport. With the 3D effect enabled the leading and
// trailing fifths of the viewport are drawn folded away from the viewer,
// like the faces of a drum.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	fw := flywheel.New(flywheel.DefaultConfig())
//	fw.AddItem("Alpha")
//	fw.AddItem("Beta")
//	fw.OnSelectionChanged(func(e flywheel.SelectionEvent) {
//		log.Println("selected", e.Text)
//	})
//	flywheel.Run(fw, flywheel.RunConfig{Title: "Flywheel", Width: 480, Height: 640})
//
// For full control, implement [ebiten.Game] yourself and call
// [Flywheel.Update] and [Flywheel.Draw] directly:
//
//	type Game struct{ fw *flywheel.Flywheel }
//
//	func (g *Game) Update() error        { g.fw.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.fw.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) {
//		g.fw.Resize(w, h)
//		return w, h
//	}
//
// When driving the widget yourself, pointer input reaches it through
// [GestureTracker.Feed] or the Inject methods; [GestureTracker.EnableDevices]
// makes the tracker poll Ebitengine's mouse and touch state instead.
//
// # Items and layout
//
// Each item is one third of the viewport long along the scroll axis and
// spans the full cross axis. Text wraps on whitespace to fit the item and is
// truncated with an ellipsis when it runs out of room. An empty list is
// seeded with five placeholder items at its first layout unless
// [Config.DisablePlaceholders] is set.
//
// # Scrolling
//
// The [Controller] owns the scroll state. Drags move the position directly
// and are rejected when they would leave [0, MaxScroll]. Flings decelerate
// with a gween tween and hand over to a snap when they stop or hit an end.
// Selection callbacks fire once a snap completes.
//
// # Rendering
//
// The [Compositor] draws the visible items onto an offscreen page and then
// composites it through the band projections. Rendering goes through the
// [Surface] interface: [EbitenSurface] draws on the GPU and
// [SoftwareSurface] rasterizes on the CPU, which is what tests and headless
// tools use.
//
// # Configuration
//
// [Config] can be built in code or decoded from TOML with [LoadConfig]:
//
//	orientation = "horizontal"
//	effect_3d = true
//	background_color = "#ffffff"
//
//	[[items]]
//	text = "Settings"
//	icon = "icons/gear.svg"
//
// # Logging
//
// Flywheel logs through log/slog. [Logger] returns the package logger;
// [SetRawLogLevel] or the log_level config key changes its level.
//
// [Ebitengine]: https://ebitengine.org
package flywheel
