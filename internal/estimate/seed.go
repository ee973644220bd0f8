package estimate

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// contentSeed derives a deterministic k-means seed from the pixels being clustered, so the
// same region always clusters the same way regardless of where it came from.
func contentSeed(points []labPoint) int64 {
	hasher := sha256.New()

	countBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(countBytes, uint64(len(points)))
	hasher.Write(countBytes)

	// Large inputs are hashed at a stride of at most 4096 samples.
	step := max(len(points)/4096, 1)
	pointBytes := make([]byte, 24)
	for i := 0; i < len(points); i += step {
		p := points[i]
		binary.LittleEndian.PutUint64(pointBytes[0:8], math.Float64bits(p.L))
		binary.LittleEndian.PutUint64(pointBytes[8:16], math.Float64bits(p.A))
		binary.LittleEndian.PutUint64(pointBytes[16:24], math.Float64bits(p.B))
		hasher.Write(pointBytes)
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8]))
}
