// Package hash wraps xxHash64 for seed derivation and payload checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// TrialSeed derives the seed of one (sample size, attempt) trial from the run seed.
//
// Every trial gets its own random stream, so trials neither share state nor
// depend on the order they run in, while a single run seed still replays the
// whole run.
func TrialSeed(runSeed uint64, sampleSize, attempt int) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], runSeed)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(sampleSize)) //nolint:gosec // sizes are validated positive
	binary.LittleEndian.PutUint64(buf[16:24], uint64(attempt))   //nolint:gosec // attempts are validated non-negative

	return xxhash.Sum64(buf[:])
}

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Remix derives a replacement for a seed that collided with another trial's.
func Remix(seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)

	return xxhash.Sum64(buf[:])
}
