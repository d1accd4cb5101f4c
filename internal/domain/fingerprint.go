package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Fingerprint returns a stable hex digest of the ordered point collection.
// Plans computed from equal collections share a fingerprint.
func Fingerprint(points []Point) string {
	h := sha256.New()
	buf := make([]byte, 24)
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(p.ID))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(p.Y))
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
