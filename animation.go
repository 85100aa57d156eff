package flywheel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollTween animates the scroll position between two values. It is the
// explicit, host-polled form of an animated value: the caller advances it by
// elapsed time (Update) or by fraction of the transition (Advance) and checks
// IsComplete. There is no implicit timer.
type ScrollTween struct {
	tween    *gween.Tween
	from, to float64
	duration float32
	elapsed  float32
	current  float64
	done     bool
}

// NewScrollTween creates a tween from -> to lasting duration seconds.
// A non-positive duration yields a tween that is already complete at to.
func NewScrollTween(from, to float64, duration float32, fn ease.TweenFunc) *ScrollTween {
	t := &ScrollTween{from: from, to: to, duration: duration, current: from}
	if duration <= 0 || from == to {
		t.current = to
		t.done = true
		t.duration = 0
		return t
	}
	t.tween = gween.New(float32(from), float32(to), duration, fn)
	return t
}

// Update advances the tween by dt seconds and returns the new value.
func (t *ScrollTween) Update(dt float32) float64 {
	if t.done {
		return t.current
	}
	val, finished := t.tween.Update(dt)
	t.elapsed += dt
	t.apply(val, finished)
	return t.current
}

// Advance jumps to the given fraction of the transition in [0, 1] and
// returns the value there.
func (t *ScrollTween) Advance(fraction float64) float64 {
	if t.tween == nil {
		return t.current
	}
	fraction = clamp01(fraction)
	t.elapsed = float32(fraction) * t.duration
	val, finished := t.tween.Set(t.elapsed)
	t.apply(val, finished || fraction >= 1)
	return t.current
}

func (t *ScrollTween) apply(val float32, finished bool) {
	if finished {
		t.current = t.to
		t.done = true
		t.elapsed = t.duration
		return
	}
	t.current = float64(val)
}

// Value returns the current value.
func (t *ScrollTween) Value() float64 { return t.current }

// Target returns the end value.
func (t *ScrollTween) Target() float64 { return t.to }

// Fraction returns the elapsed fraction of the transition.
func (t *ScrollTween) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return clamp01(float64(t.elapsed / t.duration))
}

// IsComplete reports whether the tween reached its end value.
func (t *ScrollTween) IsComplete() bool { return t.done }

// finish stops the tween where it is.
func (t *ScrollTween) finish() {
	t.done = true
}

// FlingDecay is a kinetic deceleration from an initial velocity at a
// constant deceleration. Constant deceleration is exactly an OutQuad ease
// from the start position to the stopping point over |v|/decel seconds.
type FlingDecay struct {
	*ScrollTween
	velocity float64
}

// NewFlingDecay starts a fling at position start with velocity v (px/s). The
// stopping point is clamped to [lo, hi]; the duration is kept, so a clamped
// fling arrives at the bound more gently.
func NewFlingDecay(start, v, decel, lo, hi float64) *FlingDecay {
	if decel <= 0 || v == 0 || math.IsNaN(v) {
		return &FlingDecay{ScrollTween: NewScrollTween(start, start, 0, ease.OutQuad)}
	}
	duration := math.Abs(v) / decel
	end := clamp(start+v*math.Abs(v)/(2*decel), lo, hi)
	f := &FlingDecay{
		ScrollTween: NewScrollTween(start, end, float32(duration), ease.OutQuad),
	}
	if !f.done {
		f.velocity = 2 * (end - start) / duration
	}
	return f
}

// Velocity returns the current velocity in px/s. Its magnitude never
// increases over the life of the fling.
func (f *FlingDecay) Velocity() float64 {
	if f.done {
		return 0
	}
	return f.velocity * (1 - f.Fraction())
}

// ForceFinish terminates the decay at the current position.
func (f *FlingDecay) ForceFinish() {
	f.finish()
}
