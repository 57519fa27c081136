package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sector-atlas/engine"
	"github.com/lixenwraith/sector-atlas/render"
)

// HUDRenderer draws the bottom status bar: dataset counts, active
// modes, tunables and the hovered/selected sector. Suppressed entirely
// in preview mode.
type HUDRenderer struct {
	ctx *engine.Context
}

// NewHUDRenderer creates the HUD layer
func NewHUDRenderer(ctx *engine.Context) *HUDRenderer {
	return &HUDRenderer{ctx: ctx}
}

// Render draws the status bar on the last row
func (r *HUDRenderer) Render(rc render.Context, buf *render.Buffer) {
	if r.ctx.Preview || r.ctx.Height < 2 {
		return
	}

	y := r.ctx.Height - 1
	bar := tcell.StyleDefault.Background(render.RgbHudBar).Foreground(render.RgbHudText)
	for x := 0; x < r.ctx.Width; x++ {
		buf.Set(x, y, ' ', bar)
	}

	pending := 0
	for i := range r.ctx.Nodes {
		if r.ctx.Nodes[i].Pending {
			pending++
		}
	}

	view := "3D"
	if r.ctx.Flat {
		view = "2D"
	}
	v := r.ctx.Cam.View()

	left := fmt.Sprintf(" %d sectors · %d pending · %s · %s · g %.2f · zoom %.1fx",
		len(r.ctx.Nodes), pending, r.ctx.System, view, r.ctx.Field.Gravity(), v.Zoom)
	buf.Text(0, y, left, bar)

	right := r.focusLine()
	if right == "" {
		return
	}
	rw := runewidth.StringWidth(right)
	if rw+runewidth.StringWidth(left)+2 < r.ctx.Width {
		buf.Text(r.ctx.Width-rw-1, y, right, bar.Foreground(render.RgbHover))
	}
}

// focusLine describes the selected node, falling back to the hovered
// one
func (r *HUDRenderer) focusLine() string {
	idx := r.ctx.Selected
	marker := "»"
	if idx < 0 {
		idx = r.ctx.Hover
		marker = "·"
	}
	if idx < 0 || idx >= len(r.ctx.Nodes) {
		return ""
	}

	n := &r.ctx.Nodes[idx]
	name := n.Name
	if name == "" {
		name = shortAddress(n.Address)
	}
	if n.Pending {
		return fmt.Sprintf("%s %s (resolving)", marker, name)
	}
	return fmt.Sprintf("%s %s %.1f°,%.1f° band %d", marker, name, n.GroundY, n.GroundX, n.Meridian)
}
