package field

import "github.com/lixenwraith/sector-atlas/parameter"

// Mass is one gravity-well source: a resolved node's ground position
// and derived mass
type Mass struct {
	X, Y float64
	M    float64
}

// Field is the static gravity-well height field. Elevation is a pure
// function of the mass set and gravity strength; it is rebuilt (not
// mutated) whenever the node set changes.
type Field struct {
	masses  []Mass
	gravity float64
	flat    bool
}

// New builds a field over the given mass set. Pending nodes must be
// excluded by the caller; placeholders carry no gravity.
func New(masses []Mass, gravity float64, flat bool) *Field {
	return &Field{masses: masses, gravity: gravity, flat: flat}
}

// SetGravity replaces the gravity strength, clamped to [0, 1]
func (f *Field) SetGravity(g float64) {
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	f.gravity = g
}

// Gravity returns the current strength
func (f *Field) Gravity() float64 {
	return f.gravity
}

// SetFlat switches the flattened view: elevation is zero everywhere
// regardless of gravity
func (f *Field) SetFlat(flat bool) {
	f.flat = flat
}

// At returns the elevation at a ground position: the sum over all
// masses of -(m*g) / (1 + d2*falloff). O(massCount) per call; invoked
// for every graticule vertex and node every frame, so keep sample
// counts modest.
func (f *Field) At(x, y float64) float64 {
	if f.flat || f.gravity == 0 || len(f.masses) == 0 {
		return 0
	}

	var z float64
	for i := range f.masses {
		dx := x - f.masses[i].X
		dy := y - f.masses[i].Y
		d2 := dx*dx + dy*dy
		z -= (f.masses[i].M * f.gravity) / (1 + d2*parameter.FieldDistanceFalloff)
	}
	return z
}
