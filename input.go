package flywheel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	// DefaultMinFlingVelocity is the release speed in px/s below which a drag
	// ends with a snap instead of a fling.
	DefaultMinFlingVelocity = 50.0
	// velocityWindow is how far back (seconds) release velocity is measured.
	velocityWindow  = 0.1
	velocitySamples = 8
)

// GestureSink receives single-pointer pan gestures. Deltas and velocities
// are in scroll space: a positive value moves the content forward, which is
// the opposite of the pointer's direction of travel.
type GestureSink interface {
	DragStart()
	// Drag reports whether the delta was fully applied.
	Drag(dx, dy float64) bool
	Fling(vx, vy float64)
	DragEnd()
}

// pointerState tracks the single active pointer.
type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

type velocitySample struct {
	t, x, y float64
}

// velocityTracker keeps a ring of recent pointer positions.
type velocityTracker struct {
	samples [velocitySamples]velocitySample
	head    int
	n       int
}

func (v *velocityTracker) reset() {
	v.head, v.n = 0, 0
}

func (v *velocityTracker) add(t, x, y float64) {
	v.samples[v.head] = velocitySample{t, x, y}
	v.head = (v.head + 1) % velocitySamples
	if v.n < velocitySamples {
		v.n++
	}
}

// velocity returns the pointer velocity over the last velocityWindow seconds.
func (v *velocityTracker) velocity() (vx, vy float64) {
	if v.n < 2 {
		return 0, 0
	}
	newest := v.samples[(v.head-1+velocitySamples)%velocitySamples]
	oldest := newest
	for i := 2; i <= v.n; i++ {
		s := v.samples[(v.head-i+velocitySamples)%velocitySamples]
		if newest.t-s.t > velocityWindow {
			break
		}
		oldest = s
	}
	dt := newest.t - oldest.t
	if dt <= 0 {
		return 0, 0
	}
	return (newest.x - oldest.x) / dt, (newest.y - oldest.y) / dt
}

// GestureTracker turns pointer samples (mouse, touch or injected) into drag
// and fling gestures for a GestureSink. Only one pointer is tracked; extra
// touches are ignored.
type GestureTracker struct {
	sink     GestureSink
	deadZone float64
	minFling float64
	clock    float64

	ptr pointerState
	vel velocityTracker

	devices      bool
	touchID      ebiten.TouchID
	touchActive  bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent

	// OnUnhandledDrag is called with the pointer delta of every drag step
	// the sink rejected, so an outer scroller can take over.
	OnUnhandledDrag func(dx, dy float64)
}

// NewGestureTracker creates a tracker feeding sink. It reads only injected
// events until EnableDevices is called.
func NewGestureTracker(sink GestureSink) *GestureTracker {
	return &GestureTracker{
		sink:     sink,
		deadZone: defaultDragDeadZone,
		minFling: DefaultMinFlingVelocity,
	}
}

// EnableDevices makes Update poll the Ebitengine mouse and touch state.
func (g *GestureTracker) EnableDevices(enabled bool) {
	g.devices = enabled
}

// SetDragDeadZone sets the distance in pixels the pointer must move before a
// drag starts. Negative values are treated as zero.
func (g *GestureTracker) SetDragDeadZone(pixels float64) {
	g.deadZone = math.Max(0, pixels)
}

// SetMinFlingVelocity sets the release speed (px/s) needed for a fling.
func (g *GestureTracker) SetMinFlingVelocity(v float64) {
	g.minFling = math.Max(0, v)
}

// Dragging reports whether a drag is in progress.
func (g *GestureTracker) Dragging() bool { return g.ptr.dragging }

// Update advances the tracker clock by dt seconds and processes one frame of
// input. An injected event takes the place of device input for that frame.
func (g *GestureTracker) Update(dt float64) {
	g.clock += dt
	if g.processInjectedInput() {
		return
	}
	if !g.devices {
		return
	}
	if x, y, pressed, ok := g.readTouch(); ok {
		g.Feed(x, y, pressed)
		return
	}
	mx, my := ebiten.CursorPosition()
	g.Feed(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// readTouch follows the first active touch. ok is false when no touch is or
// was active this frame.
func (g *GestureTracker) readTouch() (x, y float64, pressed, ok bool) {
	ids := ebiten.AppendTouchIDs(g.prevTouchIDs[:0])
	g.prevTouchIDs = ids
	if g.touchActive {
		for _, id := range ids {
			if id == g.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true, true
			}
		}
		g.touchActive = false
		return g.ptr.lastX, g.ptr.lastY, false, true
	}
	if len(ids) == 0 {
		return 0, 0, false, false
	}
	g.touchID, g.touchActive = ids[0], true
	tx, ty := ebiten.TouchPosition(ids[0])
	return float64(tx), float64(ty), true, true
}

// Feed runs the pointer state machine with one sample in screen coordinates.
// Hosts with their own input plumbing call it once per frame.
func (g *GestureTracker) Feed(x, y float64, pressed bool) {
	ps := &g.ptr
	switch {
	case pressed && !ps.down:
		*ps = pointerState{down: true, startX: x, startY: y, lastX: x, lastY: y}
		g.vel.reset()
		g.vel.add(g.clock, x, y)

	case !pressed && ps.down:
		if ps.dragging {
			if x != ps.lastX || y != ps.lastY {
				g.step(x, y)
			}
			g.release()
		}
		*ps = pointerState{lastX: x, lastY: y}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			g.vel.add(g.clock, x, y)
			return
		}
		if !ps.dragging {
			dx, dy := x-ps.startX, y-ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= g.deadZone {
				g.vel.add(g.clock, x, y)
				return
			}
			ps.dragging = true
			g.sink.DragStart()
		}
		g.step(x, y)
	}
}

// step forwards the movement since the last sample as a drag.
func (g *GestureTracker) step(x, y float64) {
	ps := &g.ptr
	dx, dy := x-ps.lastX, y-ps.lastY
	if !g.sink.Drag(-dx, -dy) && g.OnUnhandledDrag != nil {
		g.OnUnhandledDrag(dx, dy)
	}
	ps.lastX, ps.lastY = x, y
	g.vel.add(g.clock, x, y)
}

// release ends a drag with a fling when the pointer was moving fast enough.
func (g *GestureTracker) release() {
	vx, vy := g.vel.velocity()
	if speed := math.Hypot(vx, vy); speed > 0 && speed >= g.minFling {
		g.sink.Fling(-vx, -vy)
		return
	}
	g.sink.DragEnd()
}
