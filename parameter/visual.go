package parameter

// Graticule layout
const (
	// GraticuleStepDeg is the spacing between drawn lat/lon lines
	GraticuleStepDeg = 15.0

	// GraticuleSampleDeg is the vertex spacing along each line; every
	// vertex is projected (with elevation) independently
	GraticuleSampleDeg = 5.0

	// GraticuleBreakMargin restarts a polyline when a projected vertex
	// lands this many cells outside the screen, preventing segments
	// from rubber-banding across the view
	GraticuleBreakMargin = 60.0
)

// Node drawing
const (
	// NodeBaseRadius is the drawn radius in cells before modulation
	NodeBaseRadius = 0.6

	// NodeWaveAmplitude and NodeWaveSpeed shape the longitude-keyed
	// oscillator shared by all nodes
	NodeWaveAmplitude = 0.5
	NodeWaveSpeed     = 1.1
	NodeWaveSpatial   = 0.05

	// NodeTwinkleBase and NodeTwinkleMassFactor set the per-node
	// twinkle period; heavier nodes twinkle slower
	NodeTwinkleBase       = 2.0
	NodeTwinkleMassFactor = 0.12

	// NodeGlowMass draws the outer glow ring for nodes at or above this
	// mass; lighter nodes glow only near their twinkle peak
	NodeGlowMass        = 6.0
	NodeGlowTwinkleGate = 0.8

	// NodePendingOpacity dims unresolved placeholder nodes
	NodePendingOpacity = 0.35

	// SelectionRingRadius and SelectionRingSpokes shape the rotating
	// dashed ring around the selected node
	SelectionRingRadius = 3.0
	SelectionRingSpokes = 12
	SelectionRingSpeed  = 1.6

	// LabelZoomThreshold shows all labels once zoomed past it; below
	// it only hovered, selected and system nodes are labeled
	LabelZoomThreshold = 2.5
)
