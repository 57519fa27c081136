package scene

import (
	"github.com/lixenwraith/sector-atlas/field"
	"github.com/lixenwraith/sector-atlas/parameter"
)

// Pick returns the index of the node whose cached screen position is
// nearest the pointer, or -1 when none falls within the pick radius.
// Strictly-less comparison in slice order makes the tie-break
// deterministic: the first of two equidistant nodes wins.
func Pick(nodes []Node, px, py float64) int {
	best := -1
	bestD2 := parameter.PickRadiusSq

	for i := range nodes {
		dx := nodes[i].ScreenX - px
		dy := nodes[i].ScreenY - py
		d2 := dx*dx + dy*dy
		if d2 < bestD2 {
			bestD2 = d2
			best = i
		}
	}
	return best
}

// Masses extracts the gravity sources from the resolved nodes.
// Pending placeholders carry no gravity.
func Masses(nodes []Node) []field.Mass {
	out := make([]field.Mass, 0, len(nodes))
	for i := range nodes {
		if nodes[i].Pending {
			continue
		}
		out = append(out, field.Mass{X: nodes[i].GroundX, Y: nodes[i].GroundY, M: nodes[i].Mass})
	}
	return out
}
