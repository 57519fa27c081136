package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sector-atlas/camera"
	"github.com/lixenwraith/sector-atlas/scene"
)

// Update advances one frame of simulation: apply resolver results,
// step the camera smoothing, re-derive every node's screen position
// and elevation, and refresh the hover pick. Screen-space fields are
// transient; nothing here is authoritative state.
func (c *Context) Update(now time.Time) {
	dt := now.Sub(c.lastStep).Seconds()
	c.lastStep = now

	c.applyResolved()
	c.retryResolver(now)

	c.Cam.Step(dt)

	v := c.Cam.View()
	for i := range c.Nodes {
		n := &c.Nodes[i]
		n.Elevation = c.Field.At(n.GroundX, n.GroundY)
		n.ScreenX, n.ScreenY = camera.Project(v, c.Width, c.Height, n.GroundX, n.GroundY, n.Elevation)
	}

	if c.Preview {
		c.Hover = -1
	} else {
		c.Hover = scene.Pick(c.Nodes, float64(c.MouseX), float64(c.MouseY))
	}
}

// applyResolved drains the resolver channel. Each item is a fully
// resolved sector: persist it, patch the in-memory list, and rebuild
// the scene once at the end so the node leaves pending on this frame.
func (c *Context) applyResolved() {
	if c.runner == nil {
		return
	}

	changed := false
	for {
		select {
		case s := <-c.runner.Updates():
			if err := c.store.Save(s); err != nil {
				c.log.Warn("sector save failed",
					zap.String("address", s.Address),
					zap.Error(err))
			}
			for i := range c.sectors {
				if c.sectors[i].Address == s.Address {
					c.sectors[i] = s
					changed = true
					break
				}
			}
		default:
			if changed {
				c.Rebuild()
			}
			return
		}
	}
}

// SetSize records a terminal resize
func (c *Context) SetSize(width, height int) {
	c.Width = width
	c.Height = height
}
