package sim

import "time"

// Timing shapes the progress curve of an action or tween.
type Timing int

const (
	TimingLinear Timing = iota
	TimingEaseIn
	TimingEaseOut
	TimingEaseInEaseOut
)

// Apply maps linear progress x in [0, 1] onto the curve.
func (t Timing) Apply(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	switch t {
	case TimingEaseIn:
		return x * x
	case TimingEaseOut:
		return 1 - (1-x)*(1-x)
	case TimingEaseInEaseOut:
		if x < 0.5 {
			return 2 * x * x
		}
		return 1 - 2*(1-x)*(1-x)
	default:
		return x
	}
}

// progress returns the fraction of d covered by elapsed, clamped to [0, 1].
func progress(elapsed, d time.Duration) float64 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(d)
}

// Tween interpolates a scalar over time. Used for overlay fades.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Timing   Timing
	elapsed  time.Duration
}

// NewTween creates a tween from one value to another.
func NewTween(from, to float64, d time.Duration, timing Timing) Tween {
	return Tween{From: from, To: to, Duration: d, Timing: timing}
}

// Advance moves the tween forward and reports whether it has finished.
func (t *Tween) Advance(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed > t.Duration {
		t.elapsed = t.Duration
	}
	return t.Done()
}

// Done reports whether the tween has reached its end value.
func (t *Tween) Done() bool {
	return t.elapsed >= t.Duration
}

// Value returns the current interpolated value.
func (t *Tween) Value() float64 {
	p := t.Timing.Apply(progress(t.elapsed, t.Duration))
	return t.From + (t.To-t.From)*p
}
