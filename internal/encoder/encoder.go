// Package encoder models the rotary-encoder-plus-button input source as
// a lock-free accumulator between the sampling goroutine and the frame
// loop.
package encoder

import "sync/atomic"

// Gesture is one discrete button event. At most one gesture is pending
// at any time; a new one replaces an unread predecessor.
type Gesture int32

const (
	None Gesture = iota
	Clicked
	DoubleClicked
	Held
	Released
)

func (g Gesture) String() string {
	switch g {
	case None:
		return "none"
	case Clicked:
		return "click"
	case DoubleClicked:
		return "double-click"
	case Held:
		return "held"
	case Released:
		return "released"
	}
	return "unknown"
}

// Accumulator is the single-producer/single-consumer handoff between
// the input sampler and the frame loop. The producer side never blocks;
// the consumer drains once per tick with an atomic read-and-clear.
type Accumulator struct {
	rotation atomic.Int64
	gesture  atomic.Int32
}

// AddRotation records net encoder movement since the last drain.
func (a *Accumulator) AddRotation(delta int) {
	a.rotation.Add(int64(delta))
}

// PutGesture stores a pending button gesture, replacing any unread one.
func (a *Accumulator) PutGesture(g Gesture) {
	a.gesture.Store(int32(g))
}

// DrainRotation returns the accumulated delta and resets it to zero.
func (a *Accumulator) DrainRotation() int {
	return int(a.rotation.Swap(0))
}

// DrainGesture returns the pending gesture, if any, and clears it.
func (a *Accumulator) DrainGesture() Gesture {
	return Gesture(a.gesture.Swap(int32(None)))
}
