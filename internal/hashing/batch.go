package hashing

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/harrykwokdev/FluxFile/pkg/models"
)

// fallbackWorkers is used when hardware concurrency cannot be
// detected.
const fallbackWorkers = 4

// HashFiles hashes every path in paths across a fixed pool of
// workers and returns one result per distinct path. Per-item failures
// are recorded in the result, never aborting the batch. workers <= 0
// selects runtime.NumCPU, falling back to fallbackWorkers.
//
// If the same path appears twice both occurrences are hashed
// independently; the path-keyed map keeps the last one merged.
func HashFiles(paths []string, workers int) map[string]models.HashResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers <= 0 {
			workers = fallbackWorkers
		}
	}

	// Each slot is written by exactly one worker, established by the
	// claimed index, so no locking is needed around slots.
	slots := make([]models.HashResult, len(paths))
	var cursor atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := int(cursor.Add(1)) - 1
				if idx >= len(paths) {
					return
				}
				path := paths[idx]
				digest, err := HashFile(path, DefaultChunkSize)
				if err != nil {
					slots[idx] = models.HashResult{Path: path, Err: err.Error()}
					continue
				}
				slots[idx] = models.HashResult{Path: path, Digest: digest}
			}
		}()
	}
	wg.Wait()

	results := make(map[string]models.HashResult, len(paths))
	for _, r := range slots {
		results[r.Path] = r
	}
	return results
}
