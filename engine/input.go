package engine

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/sector-atlas/audio"
	"github.com/lixenwraith/sector-atlas/geo"
	"github.com/lixenwraith/sector-atlas/parameter"
)

// HandleEvent applies one terminal event to the interaction state.
// Returns false when the application should exit. Runs on the frame
// goroutine, so each event updates state consistently before the next
// frame reads it.
func (c *Context) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		c.SetSize(w, h)
		return true

	case *tcell.EventKey:
		return c.handleKey(e)

	case *tcell.EventMouse:
		if !c.Preview {
			c.handleMouse(e)
		}
		return true
	}
	return true
}

func (c *Context) handleKey(e *tcell.EventKey) bool {
	// Quit works in every mode, including preview
	if e.Key() == tcell.KeyCtrlC || (e.Key() == tcell.KeyRune && e.Rune() == 'q') {
		return false
	}
	if c.Preview {
		return true
	}

	switch e.Key() {
	case tcell.KeyEscape:
		c.clearSelection()
		return true
	case tcell.KeyEnter:
		c.Engage()
		return true
	case tcell.KeyTab:
		c.CycleSelection(1)
		return true
	case tcell.KeyBacktab:
		c.CycleSelection(-1)
		return true
	case tcell.KeyLeft:
		c.Cam.Pan(parameter.CameraKeyPanStep, 0)
		return true
	case tcell.KeyRight:
		c.Cam.Pan(-parameter.CameraKeyPanStep, 0)
		return true
	case tcell.KeyUp:
		c.Cam.Pan(0, parameter.CameraKeyPanStep)
		return true
	case tcell.KeyDown:
		c.Cam.Pan(0, -parameter.CameraKeyPanStep)
		return true
	}

	if e.Key() != tcell.KeyRune {
		return true
	}

	switch e.Rune() {
	case 'h':
		c.Cam.Pan(parameter.CameraKeyPanStep, 0)
	case 'l':
		c.Cam.Pan(-parameter.CameraKeyPanStep, 0)
	case 'k':
		c.Cam.Pan(0, parameter.CameraKeyPanStep)
	case 'j':
		c.Cam.Pan(0, -parameter.CameraKeyPanStep)
	case '+', '=':
		c.Cam.ZoomBy(1)
	case '-':
		c.Cam.ZoomBy(-1)
	case '[':
		c.AdjustGravity(-parameter.GravityStep)
	case ']':
		c.AdjustGravity(parameter.GravityStep)
	case '2':
		c.SetFlat(true)
	case '3':
		c.SetFlat(false)
	case 'm':
		c.ToggleSystem()
	case 'g':
		c.ShowGraticule = !c.ShowGraticule
	case 'L':
		c.LabelsAll = !c.LabelsAll
	case 'r':
		c.Cam.Reset()
	}
	return true
}

// handleMouse translates pointer state transitions: primary drag pans,
// secondary (or Alt-primary) drag orbits, wheel zooms, and a
// press/release pair without meaningful travel clicks the hovered node.
func (c *Context) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	c.MouseX, c.MouseY = x, y

	buttons := e.Buttons()

	if buttons&tcell.WheelUp != 0 {
		c.Cam.ZoomBy(1)
	}
	if buttons&tcell.WheelDown != 0 {
		c.Cam.ZoomBy(-1)
	}

	held := buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary)
	wasHeld := c.dragButtons & (tcell.ButtonPrimary | tcell.ButtonSecondary)

	switch {
	case held != 0 && wasHeld == 0:
		// press: start a click/drag candidate
		c.downX, c.downY = x, y
		c.lastX, c.lastY = x, y
		c.dragged = false

	case held != 0 && wasHeld != 0:
		// drag motion
		dx := float64(x - c.lastX)
		dy := float64(y - c.lastY)
		c.lastX, c.lastY = x, y

		if abs(x-c.downX)+abs(y-c.downY) > parameter.DragThreshold {
			c.dragged = true
		}

		orbit := held&tcell.ButtonSecondary != 0 || e.Modifiers()&tcell.ModAlt != 0
		if orbit {
			c.Cam.Orbit(dx, dy)
		} else {
			c.Cam.Pan(dx, dy)
		}

	case held == 0 && wasHeld != 0:
		// release: a non-drag treats the hovered node as a click
		if !c.dragged && c.Hover >= 0 {
			c.Select(c.Hover)
		}
	}

	c.dragButtons = buttons
}

// Select makes the node the selection and the camera focus target
func (c *Context) Select(idx int) {
	if idx < 0 || idx >= len(c.Nodes) {
		return
	}
	n := &c.Nodes[idx]
	c.Selected = idx
	c.selectedAddr = n.Address

	// Focus on the ground position, not the well bottom
	c.Cam.FocusGround(n.GroundX, n.GroundY, c.Width, c.Height)
	c.play(audio.CueSelect)

	c.log.Debug("sector selected",
		zap.String("address", n.Address),
		zap.Int("meridian", n.Meridian),
		zap.Bool("pending", n.Pending))
}

func (c *Context) clearSelection() {
	c.Selected = -1
	c.selectedAddr = ""
}

// CycleSelection steps the selection through the node list
func (c *Context) CycleSelection(dir int) {
	if len(c.Nodes) == 0 {
		return
	}
	next := c.Selected + dir
	if next < 0 {
		next = len(c.Nodes) - 1
	}
	if next >= len(c.Nodes) {
		next = 0
	}
	c.Select(next)
}

// Engage confirms the current selection to the host application
func (c *Context) Engage() {
	if c.Selected < 0 || c.Selected >= len(c.Nodes) {
		c.play(audio.CueError)
		return
	}

	addr := c.Nodes[c.Selected].Address
	c.play(audio.CueEngage)
	if c.OnSelectSector != nil {
		c.OnSelectSector(addr)
	}
	c.log.Info("sector engaged", zap.String("address", addr))
}

// AdjustGravity tunes and persists the gravity strength
func (c *Context) AdjustGravity(delta float64) {
	c.Field.SetGravity(c.Field.Gravity() + delta)
	c.saveSettings()
}

// SetFlat switches between the 3D and flattened views. The camera
// zeroes tilt/rotation per view-mode rules and the field evaluates to
// zero everywhere while flat.
func (c *Context) SetFlat(flat bool) {
	if c.Flat == flat {
		return
	}
	c.Flat = flat
	c.Cam.SetFlat(flat)
	c.Field.SetFlat(flat)
	c.saveSettings()
}

// ToggleSystem switches the coordinate encoding and rebuilds the
// scene. Camera state persists across the rebuild.
func (c *Context) ToggleSystem() {
	if c.System == geo.SystemLinear {
		c.System = geo.SystemGeodesic
	} else {
		c.System = geo.SystemLinear
	}
	c.Rebuild()
	c.saveSettings()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
