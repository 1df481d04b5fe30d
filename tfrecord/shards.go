package tfrecord

import (
	"errors"
	"fmt"
	"path/filepath"
)

// NextRecord produces one framed payload per call, returning nil once the
// stream is exhausted.
type NextRecord func() []byte

// ShardedPaths
// Names the shard files for one split, following the
// `<problem>-<split>-00042-of-00100` convention.
func ShardedPaths(dataDir string, problemName string, split string,
	numShards int) []string {
	paths := make([]string, numShards)
	for shard := 0; shard < numShards; shard++ {
		paths[shard] = filepath.Join(dataDir, fmt.Sprintf(
			"%s-%s-%05d-of-%05d", problemName, split, shard, numShards))
	}
	return paths
}

// WriteShards
// Distributes the record stream round-robin across the shard files,
// creating every shard even when the stream runs short of them. Returns
// the number of records written.
func WriteShards(paths []string, nextRecord NextRecord) (int, error) {
	if len(paths) == 0 {
		return 0, errors.New("no shard paths to write")
	}
	writers := make([]*Writer, len(paths))
	for idx, path := range paths {
		writer, createErr := NewWriter(path)
		if createErr != nil {
			for _, open := range writers[:idx] {
				open.Close()
			}
			return 0, createErr
		}
		writers[idx] = writer
	}
	written := 0
	shard := 0
	var writeErr error
	for {
		payload := nextRecord()
		if payload == nil {
			break
		}
		if writeErr = writers[shard].WriteRecord(payload); writeErr != nil {
			break
		}
		written++
		shard = (shard + 1) % len(writers)
	}
	for _, writer := range writers {
		if closeErr := writer.Close(); closeErr != nil && writeErr == nil {
			writeErr = closeErr
		}
	}
	return written, writeErr
}
