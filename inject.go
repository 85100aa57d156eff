package flywheel

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update.
func (g *GestureTracker) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the pointer held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *GestureTracker) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (g *GestureTracker) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves reaching (toX, toY) on the frames-th frame (minimum 2),
// then the pointer is held still until the velocity window drains and
// released, so the gesture ends with a snap rather than a fling.
func (g *GestureTracker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	g.injectPath(fromX, fromY, toX, toY, frames)
	for i := 0; i < velocitySamples; i++ {
		g.InjectMove(toX, toY)
	}
	g.InjectRelease(toX, toY)
}

// InjectFling queues a drag that is released while still moving, producing
// a fling with the pointer's final velocity.
func (g *GestureTracker) InjectFling(fromX, fromY, toX, toY float64, frames int) {
	g.injectPath(fromX, fromY, toX, toY, frames)
	g.InjectRelease(toX, toY)
}

func (g *GestureTracker) injectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInjected returns the number of queued synthetic events.
func (g *GestureTracker) PendingInjected() int { return len(g.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine. It reports whether an event was
// consumed (device input is skipped for that frame).
func (g *GestureTracker) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.Feed(evt.screenX, evt.screenY, evt.pressed)
	return true
}
