package parameter

import "time"

// Frame loop configuration
const (
	// FrameUpdateInterval drives the render ticker (~30 fps)
	FrameUpdateInterval = 33 * time.Millisecond

	// EventChannelSize buffers terminal events between the poll
	// goroutine and the frame loop
	EventChannelSize = 256
)

// Pointer interaction
const (
	// DragThreshold is the pointer travel in cells beyond which a
	// press/release pair counts as a drag rather than a click
	DragThreshold = 2

	// PickRadius is the hover/click acceptance radius in cells around a
	// node's projected position
	PickRadius = 3.5

	// PickRadiusSq avoids a sqrt in the per-frame hit test
	PickRadiusSq = PickRadius * PickRadius
)
