package parameter

import "time"

// Background geodesic-coordinate resolution
const (
	// ResolveBatchSize is how many pending sectors are resolved
	// concurrently per batch
	ResolveBatchSize = 20

	// ResolveBatchDelay rate-limits the upstream provider between
	// batches
	ResolveBatchDelay = 50 * time.Millisecond

	// ResolveUpdateBuffer sizes the channel carrying resolved sectors
	// back to the frame loop
	ResolveUpdateBuffer = 64

	// ResolveRetryInterval is how often the frame loop re-kicks a pass
	// while unresolved sectors remain, so a failed pass gets retried
	ResolveRetryInterval = 5 * time.Second
)
