package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/docktile/docktile/pkg/tile"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// SnapshotHash computes a content hash for a snapshot, suitable for
// ETags and change detection. Equal trees hash equally regardless of
// map iteration order, since JSON object keys marshal sorted.
func SnapshotHash(snap tile.Snapshot) string {
	data, _ := json.Marshal(snap)
	return Hash(data)
}
