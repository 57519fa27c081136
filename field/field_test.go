package field

import (
	"math"
	"testing"
)

func testMasses() []Mass {
	return []Mass{
		{X: 0, Y: 0, M: 2},
		{X: 10, Y: -5, M: 6},
		{X: -40, Y: 30, M: 1.5},
	}
}

func TestElevationSingleWell(t *testing.T) {
	f := New([]Mass{{X: 0, Y: 0, M: 2}}, 0.5, false)

	// -(m*g) / (1 + d2*0.05) at d2 = 100
	want := -(2 * 0.5) / (1 + 100*0.05)
	got := f.At(10, 0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected elevation %v, got %v", want, got)
	}

	// Depth peaks at the well center
	if f.At(0, 0) >= f.At(1, 1) {
		t.Error("Expected deepest elevation at the mass position")
	}
}

func TestElevationDeterministic(t *testing.T) {
	f := New(testMasses(), 0.7, false)
	a := f.At(3.5, -2.25)
	b := f.At(3.5, -2.25)
	if a != b {
		t.Errorf("Elevation not deterministic: %v vs %v", a, b)
	}
}

func TestElevationOrderInvariant(t *testing.T) {
	m := testMasses()
	reversed := []Mass{m[2], m[1], m[0]}

	fa := New(m, 0.6, false)
	fb := New(reversed, 0.6, false)

	points := [][2]float64{{0, 0}, {10, -5}, {100, 100}, {-3.2, 7.9}}
	for _, p := range points {
		a, b := fa.At(p[0], p[1]), fb.At(p[0], p[1])
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("Elevation at (%v,%v) depends on mass order: %v vs %v", p[0], p[1], a, b)
		}
	}
}

func TestElevationZeroGravity(t *testing.T) {
	f := New(testMasses(), 0, false)
	if got := f.At(0, 0); got != 0 {
		t.Errorf("Expected 0 elevation at zero gravity, got %v", got)
	}
}

func TestElevationFlatView(t *testing.T) {
	f := New(testMasses(), 1, true)
	if got := f.At(0, 0); got != 0 {
		t.Errorf("Expected 0 elevation in flattened view, got %v", got)
	}

	f.SetFlat(false)
	if got := f.At(0, 0); got == 0 {
		t.Error("Expected nonzero elevation after leaving flattened view")
	}
}

func TestGravityClamped(t *testing.T) {
	f := New(nil, 0.5, false)
	f.SetGravity(3)
	if f.Gravity() != 1 {
		t.Errorf("Expected gravity clamped to 1, got %v", f.Gravity())
	}
	f.SetGravity(-1)
	if f.Gravity() != 0 {
		t.Errorf("Expected gravity clamped to 0, got %v", f.Gravity())
	}
}
