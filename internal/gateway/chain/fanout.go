package chain

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

// GetMany fetches one object per id through the given view method, at most
// limit calls in flight. Individual read failures are tolerated and reported
// as a count so a single bad record cannot take down an aggregate.
func GetMany(ctx context.Context, reader Reader, method string, ids []uint64, limit int) (map[uint64]string, int) {
	results := make(map[uint64]string, len(ids))
	failed := 0

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, id := range ids {
		id := id
		group.Go(func() error {
			raw, err := reader.Call(ctx, method, strconv.FormatUint(id, 10))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				return nil
			}
			results[id] = raw
			return nil
		})
	}

	// Workers never return errors, Wait only syncs.
	_ = group.Wait()
	return results, failed
}
