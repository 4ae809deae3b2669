// Package parallel runs independent index-addressed tasks on a bounded set of
// goroutines. Raster rows and maze rings are both "embarrassingly parallel":
// task i writes only to slot i of a caller-owned slice, so no locking is needed
// beyond the final wait.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Workers resolves a requested worker count: values <= 0 mean GOMAXPROCS,
// and the result never exceeds the number of tasks.
func Workers(requested, tasks int) int {
	w := requested
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > tasks {
		w = tasks
	}
	if w < 1 {
		w = 1
	}
	return w
}

// ForEach calls fn(i) for every i in [0, n) using at most workers goroutines
// and returns once all calls have finished. Tasks are claimed from a shared
// atomic counter, so slow tasks do not stall a fixed partition.
//
// With a single worker ForEach runs inline on the calling goroutine.
func ForEach(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	w := Workers(workers, n)
	if w == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(w)
	for range w {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
