package scene

import (
	"hash/fnv"

	"github.com/lixenwraith/sector-atlas/geo"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/sector"
)

// Node is the render-side derivation of a Sector. Nodes are rebuilt,
// never mutated, when the sector list or the coordinate system changes;
// camera and selection state live elsewhere and survive rebuilds.
type Node struct {
	Address  string
	Name     string
	Symbol   string
	IsSystem bool

	// GroundX is longitude degrees, GroundY latitude degrees
	GroundX, GroundY float64

	// Mass is hash-derived from the address; system nodes get a fixed
	// high mass
	Mass float64

	// Phase seeds the twinkle oscillator. Keyed off the address, not
	// list position, so rebuilds and reorders never reshuffle timing.
	Phase float64

	// Pending marks an unresolved geodesic position; the ground
	// coordinates are then a deterministic placeholder
	Pending bool

	// Meridian is the resolved band index, diagnostic only
	Meridian int

	// Transient per-frame screen state, recomputed every frame and
	// never authoritative
	ScreenX, ScreenY float64
	Elevation        float64
}

// Build derives one node per sector under the given coordinate system
func Build(sectors []sector.Sector, sys geo.System) []Node {
	nodes := make([]Node, 0, len(sectors))
	for i := range sectors {
		nodes = append(nodes, buildNode(&sectors[i], sys))
	}
	return nodes
}

func buildNode(s *sector.Sector, sys geo.System) Node {
	waat := geo.ParseBig(s.Waat)

	var hecke *geo.Hecke
	if s.Hecke != nil {
		hecke = geo.ParseHecke(s.Hecke.Lat, s.Hecke.Lon)
	}

	pos := geo.Resolve(waat, hecke, sys)

	n := Node{
		Address:  s.Address,
		Name:     s.Name,
		Symbol:   s.Symbol,
		IsSystem: s.IsSystem,
		GroundX:  pos.Lon,
		GroundY:  pos.Lat,
		Pending:  pos.Pending,
		Meridian: pos.Meridian,
		Mass:     massFor(s),
		Phase:    phaseFor(s.Address),
	}

	if n.Pending {
		n.GroundX, n.GroundY = placeholder(s.Address)
	}
	return n
}

// massFor derives a stable mass from the address hash
func massFor(s *sector.Sector) float64 {
	if s.IsSystem {
		return parameter.NodeMassSystem
	}
	f := hashFrac(s.Address, 0)
	return parameter.NodeMassMin + f*(parameter.NodeMassMax-parameter.NodeMassMin)
}

// phaseFor derives the twinkle seed, in [0, 2pi)
func phaseFor(address string) float64 {
	return hashFrac(address, 1) * 2 * 3.141592653589793
}

// placeholder is the stable pseudo-random position a pending node
// renders at until resolved. Meaningless but deterministic: repeated
// rebuilds with unchanged input land it in the same place.
func placeholder(address string) (lon, lat float64) {
	lon = hashFrac(address, 2)*360 - 180
	lat = hashFrac(address, 3)*180 - 90
	return lon, lat
}

// hashFrac folds an FNV-1a hash of the address (plus a salt byte) into
// [0, 1)
func hashFrac(address string, salt byte) float64 {
	h := fnv.New64a()
	h.Write([]byte(address))
	h.Write([]byte{salt})
	return float64(h.Sum64()>>11) / float64(uint64(1)<<53)
}
