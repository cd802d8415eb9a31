package tile

import "github.com/google/uuid"

// NewID produces a unique, kind-tagged tile identifier such as
// "panel-5f3c…". The kind prefix makes ids self-describing in snapshots
// and logs; uniqueness comes from a random UUID.
func NewID(kind Kind) string {
	return string(kind) + "-" + uuid.NewString()
}
