package core

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Sweep evaluates fn across a frequency grid with a bounded worker pool and
// returns results in input order. The models are pure, so parallel
// evaluation needs no coordination beyond fan-out/fan-in; the sweep stops
// early on context cancellation or the first model error.
func Sweep[T any](ctx context.Context, freqsHz []float64, fn func(freqHz float64) (T, error)) ([]T, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil sweep function", ErrInvalidArgument)
	}
	if len(freqsHz) == 0 {
		return nil, nil
	}

	workers := runtime.NumCPU()
	if workers > len(freqsHz) {
		workers = len(freqsHz)
	}

	results := make([]T, len(freqsHz))

	var (
		next     atomic.Int64
		failed   atomic.Bool
		firstErr error
		errOnce  sync.Once
		wg       sync.WaitGroup
	)

	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		failed.Store(true)
		cancel()
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(freqsHz) {
					return
				}
				if err := sweepCtx.Err(); err != nil {
					fail(fmt.Errorf("sweep interrupted: %w", err))
					return
				}
				res, err := fn(freqsHz[i])
				if err != nil {
					fail(fmt.Errorf("sweep point %g Hz: %w", freqsHz[i], err))
					return
				}
				results[i] = res
			}
		}()
	}
	wg.Wait()

	if failed.Load() {
		return nil, firstErr
	}
	return results, nil
}
