package contract

// maintaining index keys for querying data in various ways

import (
	"encoding/json"
	"fmt"
	"strconv"

	"aidchain/sdk"
)

// maxChunkSize: all indexes are split into chunks of X entries to avoid
// overflowing the max size of a key/value in the contract state. The registry
// indexes are append-only, so there is no removal path here.
const maxChunkSize = 2500

// chunkCounterKey stores number of chunks for a base index
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

// getChunkCount gets number of chunks for an index
func getChunkCount(baseKey string) int {
	ptr := sdk.StateGetObject(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

// setChunkCount sets number of chunks
func setChunkCount(baseKey string, n int) {
	sdk.StateSetObject(chunkCounterKey(baseKey), strconv.Itoa(n))
}

// AddIDToIndex ensures id exists across all chunks (no duplicates).
func AddIDToIndex(baseKey string, id uint64) {
	chunks := getChunkCount(baseKey)
	// search existing chunks for duplicates or free space
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		var ids []uint64
		if ptr != nil && *ptr != "" {
			if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
				sdk.Abort(fmt.Sprintf("unmarshal index %s: %v", key, err))
			}
			// duplicate check
			for _, e := range ids {
				if e == id {
					return // already present
				}
			}
			// append if space
			if len(ids) < maxChunkSize {
				ids = append(ids, id)
				b, err := json.Marshal(ids)
				if err != nil {
					sdk.Abort(fmt.Sprintf("marshal index %s: %v", key, err))
				}
				sdk.StateSetObject(key, string(b))
				return
			}
		}
	}
	// not found / no space -> create new chunk
	key := chunkKey(baseKey, chunks)
	ids := []uint64{id}
	b, err := json.Marshal(ids)
	if err != nil {
		sdk.Abort(fmt.Sprintf("marshal index %s: %v", key, err))
	}
	sdk.StateSetObject(key, string(b))
	setChunkCount(baseKey, chunks+1)
}

// GetIDsFromIndex collects all IDs across all chunks.
func GetIDsFromIndex(baseKey string) []uint64 {
	all := []uint64{}
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		var ids []uint64
		if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
			sdk.Abort(fmt.Sprintf("unmarshal index %s: %v", key, err))
			return nil // will not happen because of error
		}
		all = append(all, ids...)
	}
	return all
}
