package boolidx

import (
	"testing"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PROGRESS REPORTER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestProgressReporterIncrementAndStop(t *testing.T) {
	r := NewProgressReporter(10, time.Millisecond)
	r.Start()
	for i := 0; i < 5; i++ {
		r.Increment()
	}
	if got := r.processed.Load(); got != 5 {
		t.Fatalf("processed = %d, want 5", got)
	}

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return: progress goroutine leaked")
	}
}

func TestProgressReporterStopBeforeFirstTick(t *testing.T) {
	r := NewProgressReporter(0, time.Hour)
	r.Start()
	r.Stop()
}
