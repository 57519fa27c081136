package scene

import (
	"testing"

	"github.com/lixenwraith/sector-atlas/geo"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/sector"
)

func testSectors() []sector.Sector {
	return []sector.Sector{
		{
			Address: "0xaaa111",
			Name:    "Kessel",
			Symbol:  "KSL",
			Waat:    "181",
			Hecke:   &sector.HeckePair{Lat: "600000000000000000000000000000000000000000000000000000000000000000000000", Lon: "0"},
		},
		{
			Address:  "0xbbb222",
			Name:     "Prime",
			Symbol:   "PRM",
			IsSystem: true,
			Waat:     "99",
			Hecke:    &sector.HeckePair{Lat: "0", Lon: "0"},
		},
		{
			Address: "0xccc333",
			Name:    "Drift",
			Waat:    "424242",
		},
	}
}

func TestBuildOneNodePerSector(t *testing.T) {
	nodes := Build(testSectors(), geo.SystemGeodesic)
	if len(nodes) != 3 {
		t.Fatalf("Expected 3 nodes, got %d", len(nodes))
	}
}

func TestPendingIffHeckeMissing(t *testing.T) {
	nodes := Build(testSectors(), geo.SystemGeodesic)

	if nodes[0].Pending || nodes[1].Pending {
		t.Error("Sectors with hecke must not be pending")
	}
	if !nodes[2].Pending {
		t.Error("Sector without hecke must be pending in geodesic mode")
	}

	linear := Build(testSectors(), geo.SystemLinear)
	for i := range linear {
		if linear[i].Pending {
			t.Errorf("Node %d pending in linear mode", i)
		}
	}
}

func TestPendingPlaceholderStable(t *testing.T) {
	a := Build(testSectors(), geo.SystemGeodesic)
	b := Build(testSectors(), geo.SystemGeodesic)

	if a[2].GroundX != b[2].GroundX || a[2].GroundY != b[2].GroundY {
		t.Error("Pending placeholder position must be stable across rebuilds")
	}
	if a[2].GroundX < -180 || a[2].GroundX > 180 || a[2].GroundY < -90 || a[2].GroundY > 90 {
		t.Errorf("Placeholder out of range: (%v, %v)", a[2].GroundX, a[2].GroundY)
	}
}

func TestPhaseKeyedByAddress(t *testing.T) {
	s := testSectors()
	forward := Build(s, geo.SystemGeodesic)

	reordered := []sector.Sector{s[2], s[0], s[1]}
	shuffled := Build(reordered, geo.SystemGeodesic)

	byAddr := make(map[string]Node)
	for _, n := range shuffled {
		byAddr[n.Address] = n
	}

	for _, n := range forward {
		m := byAddr[n.Address]
		if n.Phase != m.Phase {
			t.Errorf("Phase for %s depends on list position: %v vs %v", n.Address, n.Phase, m.Phase)
		}
		if n.Mass != m.Mass {
			t.Errorf("Mass for %s depends on list position", n.Address)
		}
	}
}

func TestSystemMass(t *testing.T) {
	nodes := Build(testSectors(), geo.SystemGeodesic)
	if nodes[1].Mass != parameter.NodeMassSystem {
		t.Errorf("Expected system mass %v, got %v", parameter.NodeMassSystem, nodes[1].Mass)
	}
	if nodes[0].Mass < parameter.NodeMassMin || nodes[0].Mass > parameter.NodeMassMax {
		t.Errorf("Hash-derived mass %v outside bounds", nodes[0].Mass)
	}
}

func TestPickNearestWithinRadius(t *testing.T) {
	nodes := []Node{
		{Address: "a", ScreenX: 10, ScreenY: 10},
		{Address: "b", ScreenX: 40, ScreenY: 10},
	}

	if got := Pick(nodes, 11, 10); got != 0 {
		t.Errorf("Expected node 0, got %d", got)
	}
	if got := Pick(nodes, 39, 11); got != 1 {
		t.Errorf("Expected node 1, got %d", got)
	}
	if got := Pick(nodes, 25, 10); got != -1 {
		t.Errorf("Expected no pick outside radius, got %d", got)
	}
}

func TestPickTieBreakDeterministic(t *testing.T) {
	nodes := []Node{
		{Address: "first", ScreenX: 8, ScreenY: 10},
		{Address: "second", ScreenX: 12, ScreenY: 10},
	}

	// Pointer exactly between two nodes inside the radius: first in
	// iteration order wins, every time
	for i := 0; i < 100; i++ {
		if got := Pick(nodes, 10, 10); got != 0 {
			t.Fatalf("Tie-break not deterministic: got %d", got)
		}
	}
}

func TestMassesExcludePending(t *testing.T) {
	nodes := Build(testSectors(), geo.SystemGeodesic)
	masses := Masses(nodes)
	if len(masses) != 2 {
		t.Errorf("Expected 2 gravity sources, got %d", len(masses))
	}
}
