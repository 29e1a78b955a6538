// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items on workerCount goroutines and returns results and errors
// indexed like items. A failing item does not stop the others. Items not yet started
// when ctx is canceled get ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 {
		return results, errs
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					continue
				}
				results[i], errs[i] = fn(ctx, items[i])
			}
		}()
	}

	for i := range items {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return results, errs
}
