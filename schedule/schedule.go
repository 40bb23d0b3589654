// Package schedule runs callbacks at points in game time. Time only moves
// when the owner calls Advance, so timers follow the fixed update rate rather
// than the wall clock.
package schedule

import (
	"sort"
	"time"
)

// Scheduler owns a set of one-shot and repeating timers.
//
// Every timer is bound to the generation that was current when it was
// created. Reset bumps the generation, which silently cancels all timers
// created before it, including ones captured in callbacks still running.
type Scheduler struct {
	now        time.Duration
	generation uint64
	nextID     uint64
	timers     []*Timer
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	id         uint64
	due        time.Duration
	period     time.Duration
	generation uint64
	fn         func()
	stopped    bool
	fired      bool
	s          *Scheduler
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated game time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Generation returns the current timer generation.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// After runs fn once, d after the current time. A non-positive d fires on the
// next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	return s.add(d, 0, fn)
}

// Every runs fn each period, first firing one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		panic("schedule: non-positive period")
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) *Timer {
	s.nextID++
	t := &Timer{
		id:         s.nextID,
		due:        s.now + delay,
		period:     period,
		generation: s.generation,
		fn:         fn,
		s:          s,
	}
	s.timers = append(s.timers, t)
	return t
}

// Reset cancels every pending timer. Game time keeps running.
func (s *Scheduler) Reset() {
	s.generation++
	s.timers = nil
}

// Pending returns the number of timers that can still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Active() {
			n++
		}
	}
	return n
}

// Advance moves game time forward by dt and fires every timer that falls due,
// in due-time order. A repeating timer that fell behind fires once per missed
// period. Timers created by callbacks fire in the same call if already due.
func (s *Scheduler) Advance(dt time.Duration) {
	s.AdvanceTo(s.now + dt)
}

// AdvanceTo moves game time forward to t and fires due timers as Advance
// does. Driving the scheduler from a frame count through AdvanceTo avoids the
// rounding drift of repeatedly adding a fractional frame duration.
func (s *Scheduler) AdvanceTo(t time.Duration) {
	if t > s.now {
		s.now = t
	}

	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		if t.period > 0 {
			t.due += t.period
		} else {
			t.fired = true
		}
		t.fn()
	}

	s.compact()
}

func (s *Scheduler) nextDue() *Timer {
	var next *Timer
	for _, t := range s.timers {
		if !t.Active() || t.due > s.now {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.id < next.id) {
			next = t
		}
	}
	return next
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
	sort.SliceStable(s.timers, func(i, j int) bool { return s.timers[i].id < s.timers[j].id })
}

// Stop prevents the timer from firing again. Safe to call more than once,
// from inside its own callback, or on a nil timer.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	if t == nil || t.stopped || t.generation != t.s.generation {
		return false
	}
	return t.period > 0 || !t.fired
}
