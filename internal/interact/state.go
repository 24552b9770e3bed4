// Package interact holds the transient UI state of the visualization and the
// named transitions that change it.
//
// A Machine owns the current State and hands out a fresh snapshot after each
// transition. Timers are never started here: transitions that need one return
// a Timer request and the host delivers the token back when it fires. Tokens
// that are no longer current are ignored, which is how a newer resize
// supersedes a pending one and a re-hover supersedes a pending dismissal.
package interact

import (
	"time"

	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/layout"
)

// Device distinguishes pointer hover from touch taps.
type Device int

const (
	DevicePointer Device = iota
	DeviceTouch
)

func (d Device) String() string {
	if d == DeviceTouch {
		return "touch"
	}
	return "pointer"
}

// ParseDevice maps a configured device name to a Device. Anything other
// than "touch" is a pointer.
func ParseDevice(s string) Device {
	if s == "touch" {
		return DeviceTouch
	}
	return DevicePointer
}

// Tooltip is the floating detail box for one topic.
type Tooltip struct {
	Topic curriculum.Topic
	X     float64
	Y     float64
}

// State is an immutable snapshot of the UI state.
type State struct {
	Initialized bool
	Dimensions  layout.Dimensions
	Filter      Filter
	Tooltip     *Tooltip
	Hovered     string // topic id under the pointer, "" for none

	transitions map[string]Transition
}

// Transition returns the radius transition for a node, if one was started
// since the last redraw.
func (s State) Transition(id string) (Transition, bool) {
	t, ok := s.transitions[id]
	return t, ok
}

// Radius returns the radius node id is drawn with at now.
func (s State) Radius(id string, base float64, now time.Time) float64 {
	if t, ok := s.transitions[id]; ok {
		return t.Radius(now)
	}
	return base
}

// Animating reports whether any radius transition is still running.
func (s State) Animating(now time.Time) bool {
	for _, t := range s.transitions {
		if !t.Done(now) {
			return true
		}
	}
	return false
}

// Animated returns the ids of nodes with a transition, in no fixed order.
func (s State) Animated() []string {
	ids := make([]string, 0, len(s.transitions))
	for id := range s.transitions {
		ids = append(ids, id)
	}
	return ids
}

func (s State) clone() State {
	c := s
	if s.Tooltip != nil {
		tt := *s.Tooltip
		c.Tooltip = &tt
	}
	c.transitions = make(map[string]Transition, len(s.transitions))
	for id, t := range s.transitions {
		c.transitions[id] = t
	}
	return c
}

// TimerKind identifies what a fired timer should do.
type TimerKind int

const (
	TimerSettle TimerKind = iota + 1
	TimerDismiss
)

func (k TimerKind) String() string {
	switch k {
	case TimerSettle:
		return "settle"
	case TimerDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Timer asks the host to deliver Token back after Delay.
type Timer struct {
	Kind  TimerKind
	Token uint64
	Delay time.Duration
}

// IsZero reports an empty request, returned after Unmount.
func (t Timer) IsZero() bool { return t.Token == 0 }
