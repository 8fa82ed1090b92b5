// Package hammer runs a test body from many goroutines released at once, to
// shake out races in lazily initialized state such as the immediate table.
package hammer

import (
	"runtime"
	"sync"
	"testing"
)

// Hammer runs a test body concurrently: P goroutines each invoke it N times.
//
// For example:
//
//	P, N := 8, 1000
//	if testing.Short() {
//		P, N = 4, 100
//	}
//	hammer.NewHammer(t, P, N).Run(func(p, n int) {
//		// p identifies the goroutine and n the iteration.
//	}, nil)
//	if t.Failed() {
//		return
//	}
type Hammer interface {
	// Run starts P goroutines, waits until all of them are scheduled, calls
	// onRunning when non-nil, then releases them together. Each goroutine
	// calls test(p, n) for n in [0, N). Run returns when all are done.
	//
	// A panic in test, including a failed require assertion, is reported as
	// a test error rather than crashing the binary.
	Run(test func(p, n int), onRunning func())
}

// NewHammer returns a Hammer for P goroutines of N iterations. Keep P*N small
// enough for Run to finish in about a tenth of a second.
func NewHammer(t *testing.T, P, N int) Hammer {
	return &hammer{t: t, p: P, n: N}
}

type hammer struct {
	t    *testing.T
	p, n int
}

// Run implements Hammer.Run
func (h *hammer) Run(test func(p, n int), onRunning func()) {
	// Fewer procs than goroutines forces them to be rescheduled across cores.
	procs := h.p / 2
	if procs < 1 {
		procs = 1
	}
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(procs))

	var started, done sync.WaitGroup
	release := make(chan struct{})

	started.Add(h.p)
	done.Add(h.p)
	for p := 0; p < h.p; p++ {
		go func(p int) {
			defer done.Done()
			defer func() {
				if recovered := recover(); recovered != nil {
					h.t.Error(recovered)
				}
			}()
			started.Done()
			<-release
			for n := 0; n < h.n; n++ {
				test(p, n)
			}
		}(p)
	}

	started.Wait()
	if onRunning != nil {
		onRunning()
	}
	close(release)
	done.Wait()
}
