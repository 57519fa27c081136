package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sector-atlas/engine"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/render"
	"github.com/lixenwraith/sector-atlas/scene"
)

// NodeRenderer draws sector bodies and labels. Radius and opacity ride
// two independent oscillators: a longitude-keyed wave shared across
// the map and a per-node twinkle seeded by the stable phase, its
// period stretched by mass.
type NodeRenderer struct {
	ctx *engine.Context
}

// NewNodeRenderer creates the node layer
func NewNodeRenderer(ctx *engine.Context) *NodeRenderer {
	return &NodeRenderer{ctx: ctx}
}

// wave is the shared oscillator, in [-1, 1]
func wave(n *scene.Node, now float64) float64 {
	return math.Sin(now*parameter.NodeWaveSpeed + n.GroundX*parameter.NodeWaveSpatial)
}

// twinkle is the per-node oscillator, in [0, 1]
func twinkle(n *scene.Node, now float64) float64 {
	period := parameter.NodeTwinkleBase + n.Mass*parameter.NodeTwinkleMassFactor
	return 0.5 + 0.5*math.Sin(n.Phase+now*2*math.Pi/period)
}

// Render draws every node in list order
func (r *NodeRenderer) Render(rc render.Context, buf *render.Buffer) {
	for i := range r.ctx.Nodes {
		r.drawNode(rc, buf, i)
	}
}

func (r *NodeRenderer) drawNode(rc render.Context, buf *render.Buffer, idx int) {
	n := &r.ctx.Nodes[idx]
	cx := int(n.ScreenX + 0.5)
	cy := int(n.ScreenY + 0.5)
	if cx < -4 || cx > r.ctx.Width+4 || cy < -2 || cy > r.ctx.Height+2 {
		return
	}

	w := wave(n, rc.Now)
	tw := twinkle(n, rc.Now)

	radius := parameter.NodeBaseRadius +
		parameter.NodeWaveAmplitude*(0.5+0.5*w) +
		0.5*tw

	opacity := 0.45 + 0.35*tw + 0.2*(0.5+0.5*w)
	if opacity > 1 {
		opacity = 1
	}
	if n.Pending {
		opacity *= parameter.NodePendingOpacity
	}

	base := render.RgbNode
	ch := '●'
	switch {
	case n.Pending:
		base = render.RgbNodePending
		ch = '○'
	case n.IsSystem:
		base = render.RgbNodeSystem
		ch = '◉'
	}

	fg := render.Dim(base, opacity)

	if radius >= 1.2 {
		halo := render.Dim(base, opacity*0.45)
		buf.SetFg(cx-1, cy, '•', halo)
		buf.SetFg(cx+1, cy, '•', halo)
		if radius >= 1.7 {
			buf.SetFg(cx, cy-1, '·', halo)
			buf.SetFg(cx, cy+1, '·', halo)
			buf.SetFg(cx-2, cy, '·', halo)
			buf.SetFg(cx+2, cy, '·', halo)
		}
	}
	buf.SetFg(cx, cy, ch, fg)

	if r.showLabel(idx) {
		r.drawLabel(buf, n, cx, cy, opacity)
	}
}

// showLabel gates labels to avoid clutter: all labels only when zoomed
// in or toggled, otherwise hovered, selected and system nodes
func (r *NodeRenderer) showLabel(idx int) bool {
	if r.ctx.LabelsAll || r.ctx.Cam.View().Zoom > parameter.LabelZoomThreshold {
		return true
	}
	if idx == r.ctx.Hover || idx == r.ctx.Selected {
		return true
	}
	return r.ctx.Nodes[idx].IsSystem
}

func (r *NodeRenderer) drawLabel(buf *render.Buffer, n *scene.Node, cx, cy int, opacity float64) {
	label := n.Name
	if label == "" {
		label = shortAddress(n.Address)
	}
	if n.Symbol != "" {
		label += " [" + n.Symbol + "]"
	}
	if n.Pending {
		label += " ···"
	}

	fg := render.Dim(render.RgbForeground, 0.4+0.6*opacity)
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(fg)
	buf.Text(cx+2, cy, label, style)
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
