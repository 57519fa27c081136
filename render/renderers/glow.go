package renderers

import (
	"math"

	"github.com/lixenwraith/sector-atlas/engine"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/render"
)

// GlowRenderer draws the dimmer outer ring under heavy or actively
// oscillating nodes. Runs below the node layer so bodies draw over it.
type GlowRenderer struct {
	ctx *engine.Context
}

// NewGlowRenderer creates the glow layer
func NewGlowRenderer(ctx *engine.Context) *GlowRenderer {
	return &GlowRenderer{ctx: ctx}
}

// Render rings nodes that qualify this frame
func (r *GlowRenderer) Render(rc render.Context, buf *render.Buffer) {
	for i := range r.ctx.Nodes {
		n := &r.ctx.Nodes[i]
		if n.Pending {
			continue
		}

		tw := twinkle(n, rc.Now)
		if n.Mass < parameter.NodeGlowMass && tw < parameter.NodeGlowTwinkleGate {
			continue
		}

		cx := int(n.ScreenX + 0.5)
		cy := int(n.ScreenY + 0.5)
		radius := 1.5 + 0.5*tw
		fg := render.Dim(render.RgbGlow, 0.35+0.35*tw)

		for k := 0; k < 12; k++ {
			a := float64(k) * math.Pi / 6
			// cells are twice as tall as wide; stretch x to look round
			x := cx + int(math.Cos(a)*radius*2+0.5)
			y := cy + int(math.Sin(a)*radius+0.5)
			buf.SetFg(x, y, '·', fg)
		}
	}
}
