package renderers

import (
	"math"

	"github.com/lixenwraith/sector-atlas/engine"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/render"
)

// OverlayRenderer draws the hover marker and the rotating dashed ring
// around the selected node
type OverlayRenderer struct {
	ctx *engine.Context
}

// NewOverlayRenderer creates the selection/hover layer
func NewOverlayRenderer(ctx *engine.Context) *OverlayRenderer {
	return &OverlayRenderer{ctx: ctx}
}

// Render draws hover first so a selected+hovered node shows the ring
func (r *OverlayRenderer) Render(rc render.Context, buf *render.Buffer) {
	if h := r.ctx.Hover; h >= 0 && h != r.ctx.Selected {
		n := &r.ctx.Nodes[h]
		cx := int(n.ScreenX + 0.5)
		cy := int(n.ScreenY + 0.5)
		buf.SetFg(cx-3, cy, '‹', render.RgbHover)
		buf.SetFg(cx+3, cy, '›', render.RgbHover)
	}

	s := r.ctx.Selected
	if s < 0 || s >= len(r.ctx.Nodes) {
		return
	}
	n := &r.ctx.Nodes[s]
	cx := int(n.ScreenX + 0.5)
	cy := int(n.ScreenY + 0.5)

	spokes := parameter.SelectionRingSpokes
	offset := rc.Now * parameter.SelectionRingSpeed
	for k := 0; k < spokes; k++ {
		// every other spoke, rotating with time, so the ring reads dashed
		if (k+int(offset*float64(spokes)/(2*math.Pi)))%2 != 0 {
			continue
		}
		a := float64(k)*2*math.Pi/float64(spokes) + offset
		x := cx + int(math.Cos(a)*parameter.SelectionRingRadius*2+0.5)
		y := cy + int(math.Sin(a)*parameter.SelectionRingRadius+0.5)
		buf.SetFg(x, y, '•', render.RgbSelection)
	}
}
