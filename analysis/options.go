package analysis

import (
	"runtime"
	"sync"
)

// Option configures the S-box metrics.
type Option func(*options)

type options struct {
	workers int
}

func defaultOptions() options {
	return options{workers: runtime.NumCPU()}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}

	return o
}

// WithWorkers sets the number of goroutines used for table computations.
// Values below 1 run everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// forRows calls fn(lo, hi) on contiguous, disjoint slices of [0, n).
func forRows(n, workers int, fn func(lo, hi int)) {
	if workers <= 1 || n < 2 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	per := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += per {
		hi := lo + per
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
