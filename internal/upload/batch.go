package upload

import (
	"context"
	"sync"
)

// BatchResult pairs a slot with the outcome of its upload attempt.
type BatchResult struct {
	Slot *PendingUpload
	URL  string
	Err  error
}

// RunBatch uploads every slot concurrently, one goroutine per slot, and
// blocks until all have settled. Each slot carries its own state and
// lock so a failure in one never disturbs the others; results are
// returned in the same order the slots were given.
func (pl *Pipeline) RunBatch(ctx context.Context, slots []*PendingUpload) []BatchResult {
	results := make([]BatchResult, len(slots))
	var wg sync.WaitGroup
	for i, slot := range slots {
		wg.Add(1)
		go func(i int, slot *PendingUpload) {
			defer wg.Done()
			url, err := pl.Run(ctx, slot)
			results[i] = BatchResult{Slot: slot, URL: url, Err: err}
		}(i, slot)
	}
	wg.Wait()
	return results
}
