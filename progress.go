package boolidx

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PROGRESS REPORTER
// ═══════════════════════════════════════════════════════════════════════════════
// A single periodic timer that logs how many documents the build has processed
// so far (§5). Started before the parallel tokenization phase begins, stopped
// deterministically on every exit path — including a panic — via defer in the
// caller.
// ═══════════════════════════════════════════════════════════════════════════════

// ProgressReporter periodically logs an atomic document counter against a
// known total.
type ProgressReporter struct {
	processed atomic.Int64
	total     int
	interval  time.Duration
	stop      chan struct{}
	done      chan struct{}
}

// NewProgressReporter returns a reporter for a build of total documents,
// logging every interval.
func NewProgressReporter(total int, interval time.Duration) *ProgressReporter {
	return &ProgressReporter{
		total:    total,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the periodic logging goroutine. Safe to call once.
func (r *ProgressReporter) Start() {
	ticker := time.NewTicker(r.interval)
	go func() {
		defer ticker.Stop()
		defer close(r.done)
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				slog.Info("index build progress",
					"processed", r.processed.Load(), "total", r.total)
			}
		}
	}()
}

// Increment marks one more document processed.
func (r *ProgressReporter) Increment() {
	r.processed.Add(1)
}

// Stop signals the reporter goroutine to exit and blocks until it has,
// guaranteeing the timer is released before Stop returns.
func (r *ProgressReporter) Stop() {
	close(r.stop)
	<-r.done
}
