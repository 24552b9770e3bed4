package interact

import "time"

// Transition animates a node radius between two values.
type Transition struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// Radius returns the eased radius at now.
func (t Transition) Radius(now time.Time) float64 {
	return t.From + (t.To-t.From)*cubicInOut(t.progress(now))
}

// Done reports whether the transition has reached its target.
func (t Transition) Done(now time.Time) bool {
	return t.progress(now) >= 1
}

func (t Transition) progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func cubicInOut(p float64) float64 {
	p *= 2
	if p <= 1 {
		return p * p * p / 2
	}
	p -= 2
	return (p*p*p + 2) / 2
}
