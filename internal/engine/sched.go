package engine

import (
	"sort"
	"time"
)

// Scheduler models delayed effects (removal transitions, tray pair clears)
// as callbacks on an explicit virtual clock. The platform advances it by
// the tick interval; tests advance it directly. Everything is
// single-threaded: callbacks fire inside Advance, in due order.
type Scheduler struct {
	now    time.Duration
	seq    int
	timers []*Timer
}

// Timer is a cancellable handle for a scheduled callback.
type Timer struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// Cancel prevents the callback from firing. Safe to call more than once.
func (t *Timer) Cancel() {
	t.cancelled = true
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Schedule registers fn to run delay after the current virtual time.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Timer{at: s.now + delay, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every due callback in
// (time, schedule) order. Callbacks may schedule further timers; those
// also fire within the same Advance if they come due.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at
		if !next.cancelled {
			next.fn()
		}
	}
	s.now = target
}

// nextDue pops the earliest timer at or before target, nil if none.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].at != s.timers[j].at {
			return s.timers[i].at < s.timers[j].at
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	for i, t := range s.timers {
		if t.cancelled {
			continue
		}
		if t.at > target {
			return nil
		}
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		return t
	}
	s.timers = s.timers[:0]
	return nil
}

// CancelAll drops every pending callback. Called when a session resets so
// superseded timers cannot mutate the new session.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = s.timers[:0]
}

// Pending returns the number of callbacks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Reset cancels everything and rewinds the clock to zero.
func (s *Scheduler) Reset() {
	s.CancelAll()
	s.now = 0
}
