package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultSettleTimeout bounds how long Check waits for goroutines to exit
	DefaultSettleTimeout = time.Second
	pollInterval         = 10 * time.Millisecond
)

// Snapshot records the goroutine count before the code under test runs
type Snapshot struct {
	t      testing.TB
	before int
	settle time.Duration
}

// Take records the current goroutine count
func Take(t testing.TB) *Snapshot {
	t.Helper()
	runtime.Gosched()
	return &Snapshot{t: t, before: runtime.NumGoroutine(), settle: DefaultSettleTimeout}
}

// WithSettle changes how long Check waits
func (s *Snapshot) WithSettle(d time.Duration) *Snapshot {
	s.settle = d
	return s
}

// Check fails the test if, after the settle timeout, more than tolerance
// goroutines remain above the snapshot
func (s *Snapshot) Check(tolerance int) {
	s.t.Helper()

	deadline := time.Now().Add(s.settle)
	after := runtime.NumGoroutine()
	for after-s.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.Gosched()
		after = runtime.NumGoroutine()
	}

	if leaked := after - s.before; leaked > tolerance {
		s.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			s.before, after, leaked, tolerance)
	}
}

// Run fails the test if fn leaves goroutines behind
func Run(t testing.TB, fn func()) {
	t.Helper()
	snap := Take(t)
	fn()
	snap.Check(0)
}
