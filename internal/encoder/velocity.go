package encoder

import (
	"sync"
	"time"
)

// Velocity tracks recent detents so fast spinning can be scaled up.
// Safe for concurrent producers.
type Velocity struct {
	mu     sync.Mutex
	window time.Duration
	steps  []velocityStep
}

type velocityStep struct {
	at  time.Time
	dir int
}

// NewVelocity creates a tracker with the given detection window.
func NewVelocity(window time.Duration) *Velocity {
	return &Velocity{
		window: window,
		steps:  make([]velocityStep, 0, 16),
	}
}

// Record notes one detent in the given direction (+1 or -1) and
// returns how many recent detents went the same way inside the window.
// Callers use the count as a step multiplier.
func (v *Velocity) Record(dir int, now time.Time) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	cutoff := now.Add(-v.window)
	kept := v.steps[:0]
	for _, s := range v.steps {
		if s.at.After(cutoff) {
			kept = append(kept, s)
		}
	}
	kept = append(kept, velocityStep{at: now, dir: dir})
	v.steps = kept

	same := 0
	for _, s := range kept {
		if s.dir == dir {
			same++
		}
	}
	return same
}
