package flywheel

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	// DefaultSnapDuration is the snap animation length in seconds.
	DefaultSnapDuration float32 = 0.5
	// DefaultFlingDeceleration is the fling deceleration in px/s² at density 1.
	DefaultFlingDeceleration = 926.6
	// DefaultMaxFlingVelocity caps the fling start velocity in px/s at density 1.
	DefaultMaxFlingVelocity = 8000.0
	// overscrollViewports bounds a fling to this many viewport extents past
	// either logical bound.
	overscrollViewports = 5
)

// Phase is the scroll controller state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseFlinging
	PhaseSnapping
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseFlinging:
		return "flinging"
	case PhaseSnapping:
		return "snapping"
	}
	return "unknown"
}

// ScrollState is the scroll position shared by the controller (its only
// writer) and the compositor.
type ScrollState struct {
	// Position is the content offset of the viewport's leading edge.
	Position float64
	// Velocity is the fling velocity in px/s; zero outside a fling.
	Velocity float64
	Phase    Phase
}

// ControllerOptions tunes the controller physics.
type ControllerOptions struct {
	SnapDuration      float32
	FlingDeceleration float64
	MaxFlingVelocity  float64
}

func (o ControllerOptions) withDefaults() ControllerOptions {
	if o.SnapDuration <= 0 {
		o.SnapDuration = DefaultSnapDuration
	}
	if o.FlingDeceleration <= 0 {
		o.FlingDeceleration = DefaultFlingDeceleration
	}
	if o.MaxFlingVelocity <= 0 {
		o.MaxFlingVelocity = DefaultMaxFlingVelocity
	}
	return o
}

// Controller drives ScrollState through drags, flings and snaps. At most
// one of the fling decay and the snap animation is active; starting one
// cancels the other before it takes effect.
type Controller struct {
	state *ScrollState
	reg   *Registry
	opts  ControllerOptions

	fling      *FlingDecay
	snap       *ScrollTween
	snapTarget *Item

	// onSelect is called after a snap completes with the new selection.
	onSelect func(it *Item)
}

// NewController creates a controller writing to state and reading layout
// from reg.
func NewController(state *ScrollState, reg *Registry, opts ControllerOptions) *Controller {
	return &Controller{state: state, reg: reg, opts: opts.withDefaults()}
}

// State returns the scroll state the controller writes.
func (c *Controller) State() *ScrollState { return c.state }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.state.Phase }

// IsComplete reports whether no drag, fling or snap is in progress.
func (c *Controller) IsComplete() bool { return c.state.Phase == PhaseIdle }

// SetOptions replaces the physics options. Running animations keep the
// options they started with.
func (c *Controller) SetOptions(opts ControllerOptions) {
	c.opts = opts.withDefaults()
}

// OnSelect sets the callback fired when a snap completes.
func (c *Controller) OnSelect(fn func(it *Item)) {
	c.onSelect = fn
}

// cancel stops any fling or snap immediately, leaving the position where it is.
func (c *Controller) cancel() {
	c.fling = nil
	c.snap = nil
	c.snapTarget = nil
	c.state.Velocity = 0
}

// DragStart cancels any running animation and enters the dragging phase.
func (c *Controller) DragStart() {
	c.cancel()
	c.state.Phase = PhaseDragging
}

// Drag moves the position by d, clamped to [0, maxScroll]. It returns false
// when the unclamped position would leave that range, so the gesture layer
// can hand the drag to an outer scroller.
func (c *Controller) Drag(d float64) bool {
	if c.state.Phase != PhaseDragging {
		c.DragStart()
	}
	if math.IsNaN(d) {
		return false
	}
	next := c.state.Position + d
	maxScroll := c.reg.MaxScroll()
	c.state.Position = clamp(next, 0, maxScroll)
	return next >= 0 && next <= maxScroll
}

// DragEnd releases a drag and snaps to the nearest item.
func (c *Controller) DragEnd() {
	if c.state.Phase == PhaseDragging {
		c.state.Phase = PhaseIdle
	}
	c.SnapToNearest()
}

// Fling starts a kinetic decay with initial velocity v in px/s along the
// scroll axis. Positive v scrolls forward. A zero or invalid velocity snaps
// right away.
func (c *Controller) Fling(v float64) {
	c.cancel()
	if !c.reg.Ready() || v == 0 || math.IsNaN(v) {
		c.state.Phase = PhaseIdle
		c.SnapToNearest()
		return
	}
	v = clamp(v, -c.opts.MaxFlingVelocity, c.opts.MaxFlingVelocity)

	ext := c.reg.ViewportExtent()
	lo := -overscrollViewports * ext
	hi := c.reg.MaxScroll() + overscrollViewports*ext
	c.fling = NewFlingDecay(c.state.Position, v, c.opts.FlingDeceleration, lo, hi)
	c.state.Phase = PhaseFlinging
	c.state.Velocity = c.fling.Velocity()
	if c.fling.IsComplete() {
		c.endFling()
	}
}

// SnapToNearest snaps to the item under the viewport center. It is a no-op
// while a snap is already running.
func (c *Controller) SnapToNearest() {
	if c.state.Phase == PhaseSnapping {
		return
	}
	c.SnapTo(c.nearest())
}

// SnapTo animates the position so it is centered on it. A request for the
// item already being snapped to is ignored.
func (c *Controller) SnapTo(it *Item) {
	if c.state.Phase == PhaseSnapping && c.snapTarget == it {
		return
	}
	c.cancel()
	if it == nil || !c.reg.Ready() {
		c.settle()
		return
	}
	c.startSnap(it)
}

// Jump centers it without animation and selects it. It reports whether the
// selection changed; no notification is sent.
func (c *Controller) Jump(it *Item) bool {
	c.cancel()
	if it == nil {
		c.settle()
		return false
	}
	if c.reg.Ready() {
		c.state.Position = c.reg.centerPosition(it)
	}
	c.state.Phase = PhaseIdle
	return c.reg.setSelected(it)
}

// nearest returns the snap target for the current position.
func (c *Controller) nearest() *Item {
	return c.reg.nearestAt(c.state.Position + c.reg.ViewportExtent()/2)
}

func (c *Controller) startSnap(it *Item) {
	c.snapTarget = it
	c.snap = NewScrollTween(c.state.Position, c.reg.centerPosition(it), c.opts.SnapDuration, ease.OutCubic)
	c.state.Phase = PhaseSnapping
	if c.snap.IsComplete() {
		c.finishSnap(false)
	}
}

// Advance moves a running snap to the given fraction of its transition and
// returns the position. Outside a snap it returns the current position.
func (c *Controller) Advance(fraction float64) float64 {
	if c.state.Phase != PhaseSnapping || c.snap == nil {
		return c.state.Position
	}
	c.state.Position = c.snap.Advance(fraction)
	if c.snap.IsComplete() {
		c.finishSnap(true)
	}
	return c.state.Position
}

// Update advances the active fling or snap by dt seconds.
func (c *Controller) Update(dt float32) {
	if dt <= 0 {
		return
	}
	switch c.state.Phase {
	case PhaseFlinging:
		c.stepFling(dt)
	case PhaseSnapping:
		c.state.Position = c.snap.Update(dt)
		if c.snap.IsComplete() {
			c.finishSnap(true)
		}
	case PhaseIdle:
		c.settle()
	}
}

func (c *Controller) stepFling(dt float32) {
	forward := c.fling.Velocity() > 0
	pos := c.fling.Update(dt)
	maxScroll := c.reg.MaxScroll()
	if (forward && pos >= maxScroll) || (!forward && pos <= 0) {
		pos = clamp(pos, 0, maxScroll)
		c.fling.ForceFinish()
	}
	c.state.Position = pos
	c.state.Velocity = c.fling.Velocity()
	if c.fling.IsComplete() {
		c.endFling()
	}
}

// endFling hands a finished decay over to the snap pass.
func (c *Controller) endFling() {
	c.fling = nil
	c.state.Velocity = 0
	c.state.Phase = PhaseIdle
	c.SnapToNearest()
}

// finishSnap completes the snap. moved reports whether the animation covered
// any distance; a snap that neither moved nor changed the selection is silent.
func (c *Controller) finishSnap(moved bool) {
	target := c.snapTarget
	c.snap = nil
	c.snapTarget = nil
	c.settle()
	changed := c.reg.setSelected(target)
	if (changed || moved) && c.onSelect != nil {
		c.onSelect(target)
	}
}

// settle enters Idle and clamps the position.
func (c *Controller) settle() {
	c.state.Phase = PhaseIdle
	c.state.Velocity = 0
	c.state.Position = clamp(c.state.Position, 0, c.reg.MaxScroll())
}
