// ABOUTME: Stopwatch measures wall-clock duration between Start and Stop
// ABOUTME: Uses the monotonic clock carried by time.Time; the clock is injectable for tests

package stopwatch

import "time"

// Stopwatch records the duration between Start and Stop. The zero value is
// ready to use and reports zero Elapsed until stopped.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	elapsed time.Duration
	running bool
}

// New returns a Stopwatch reading the given clock. A nil clock means time.Now.
func New(now func() time.Time) *Stopwatch {
	return &Stopwatch{now: now}
}

// Start begins a measurement. Starting a running Stopwatch restarts it.
func (s *Stopwatch) Start() {
	s.start = s.clock()
	s.running = true
}

// Stop ends the measurement and records the elapsed duration. Stop without
// a preceding Start does nothing.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed = s.clock().Sub(s.start)
	s.running = false
}

// Elapsed returns the duration recorded by the last Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Running reports whether Start was called without a matching Stop.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Time runs fn between Start and Stop and returns the elapsed duration.
func (s *Stopwatch) Time(fn func()) time.Duration {
	s.Start()
	fn()
	s.Stop()
	return s.elapsed
}

func (s *Stopwatch) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
