// Package perf measures wall-clock time around sequences of engine calls.
//
// A Session is an explicit value owned by the caller. There is no
// process-wide measurement state: any number of sessions may run
// concurrently or nested, each tracking its own window.
package perf

import (
	"fmt"
	"strings"
	"time"

	"github.com/Cetic99/neurax/internal/errdefs"
)

// Session accumulates timing for one measurement window.
type Session struct {
	start  time.Time
	active bool

	// Total is the measured wall-clock time, set by End.
	Total time.Duration
	// Hardware is the time attributed to accelerator waits.
	Hardware time.Duration
	// Transfer is the time attributed to data movement.
	Transfer time.Duration
	// Operations counts engine calls inside the window.
	Operations uint32
}

// Start resets the counters and opens the measurement window.
func (s *Session) Start() {
	s.Total = 0
	s.Hardware = 0
	s.Transfer = 0
	s.Operations = 0
	s.start = time.Now()
	s.active = true
}

// End closes the window and records the elapsed wall-clock time. Ending a
// session that was never started (or ending twice) is a misuse and fails
// rather than silently reporting stale data.
func (s *Session) End() error {
	if !s.active {
		return fmt.Errorf("perf: session not started: %w", errdefs.ErrInvalidParam)
	}
	s.Total = time.Since(s.start)
	s.active = false
	return nil
}

// Active reports whether the session is between Start and End.
func (s *Session) Active() bool { return s.active }

// AddOperation counts one engine call in the window.
func (s *Session) AddOperation() { s.Operations++ }

// AddHardware attributes accelerator wait time to the window.
func (s *Session) AddHardware(d time.Duration) { s.Hardware += d }

// AddTransfer attributes data-movement time to the window.
func (s *Session) AddTransfer(d time.Duration) { s.Transfer += d }

// TotalMilliseconds returns the measured total as fractional milliseconds.
func (s *Session) TotalMilliseconds() float64 {
	return float64(s.Total) / float64(time.Millisecond)
}

// Report renders the measurement in the accelerator library's statistics
// layout. Derived figures (per-op average, utilization percentages,
// operations per second) appear only when their counters are non-zero.
func (s *Session) Report() string {
	var b strings.Builder

	totalMs := s.TotalMilliseconds()
	hwMs := float64(s.Hardware) / float64(time.Millisecond)
	transferMs := float64(s.Transfer) / float64(time.Millisecond)

	b.WriteString("Performance Statistics:\n")
	b.WriteString("==============================\n")
	fmt.Fprintf(&b, "Total execution time:    %.3f ms\n", totalMs)
	fmt.Fprintf(&b, "Hardware time:           %.3f ms\n", hwMs)
	fmt.Fprintf(&b, "Data transfer time:      %.3f ms\n", transferMs)
	fmt.Fprintf(&b, "Number of operations:    %d\n", s.Operations)

	if s.Operations > 0 {
		fmt.Fprintf(&b, "Average time per op:     %.3f ms\n", totalMs/float64(s.Operations))
	}
	if totalMs > 0 {
		fmt.Fprintf(&b, "Hardware utilization:    %.1f%%\n", hwMs/totalMs*100)
		fmt.Fprintf(&b, "Data transfer overhead:  %.1f%%\n", transferMs/totalMs*100)
		if s.Operations > 0 {
			fmt.Fprintf(&b, "Operations per second:   %.0f\n", float64(s.Operations)*1000/totalMs)
		}
	}
	b.WriteString("==============================")

	return b.String()
}
