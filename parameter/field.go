package parameter

// Gravity-well height field
const (
	// GravityDefault is the gravity strength used before the persisted
	// setting is first written
	GravityDefault = 0.5

	// GravityStep is the per-keypress adjustment of gravity strength
	GravityStep = 0.05

	// FieldDistanceFalloff scales squared ground distance in the
	// well denominator: 1 + d2*falloff
	FieldDistanceFalloff = 0.05
)

// Node mass derivation
const (
	// NodeMassMin and NodeMassMax bound the hash-derived mass of a
	// regular sector
	NodeMassMin = 1.0
	NodeMassMax = 6.0

	// NodeMassSystem is the fixed mass of system-flagged sectors
	NodeMassSystem = 10.0
)
