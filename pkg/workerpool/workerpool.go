// Package workerpool runs bounded parallel work over a slice.
package workerpool

import (
	"context"
	"sync"
)

// Each calls fn for every index of items using at most workers goroutines.
// The first error cancels the remaining work and is returned.
// A canceled parent context is reported as its error.
func Each[T any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, i int, item T) error) error {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	indexes := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				if err := fn(ctx, i, items[i]); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for i := range items {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
