package camera

import (
	"math"

	"github.com/lixenwraith/sector-atlas/parameter"
)

// State is one complete set of camera parameters. The controller keeps
// two: the damped current values the projector reads, and the target
// the inputs write.
type State struct {
	PanX, PanY float64
	Zoom       float64
	Tilt       float64
	Rotation   float64
}

// Controller owns camera state. All mutation goes through the
// transition methods below; UI code never touches the fields directly.
// Single-writer: the frame loop and input handlers share one goroutine.
type Controller struct {
	current State
	target  State

	auto     bool
	autoTime float64
}

// New returns a controller at the 3D defaults
func New() *Controller {
	s := State{
		Zoom:     parameter.CameraDefaultZoom,
		Tilt:     parameter.CameraDefaultTilt,
		Rotation: parameter.CameraDefaultRotation,
	}
	return &Controller{current: s, target: s}
}

// View returns the damped state the projector should use this frame
func (c *Controller) View() State {
	return c.current
}

// Target returns the input-side state, mainly for tests and the HUD
func (c *Controller) Target() State {
	return c.target
}

// Step advances current toward target by the fixed exponential blend.
// Never a direct assignment: the remaining gap decays geometrically,
// which is what gives fly-to moves their damped feel. In auto mode the
// rotation target keeps advancing and the tilt target rides a sinusoid.
func (c *Controller) Step(dt float64) {
	if c.auto {
		c.autoTime += dt
		c.target.Rotation += parameter.CameraAutoRotateRate * dt
		c.target.Tilt = parameter.CameraAutoTiltMid +
			math.Sin(c.autoTime*2*math.Pi*parameter.CameraAutoTiltFrequency)*parameter.CameraAutoTiltAmplitude
	}

	k := parameter.CameraBlendFactor
	c.current.PanX += (c.target.PanX - c.current.PanX) * k
	c.current.PanY += (c.target.PanY - c.current.PanY) * k
	c.current.Zoom += (c.target.Zoom - c.current.Zoom) * k
	c.current.Tilt += (c.target.Tilt - c.current.Tilt) * k
	c.current.Rotation += (c.target.Rotation - c.current.Rotation) * k
}

// Pan shifts the view by a screen-space delta. Current and target move
// together so panning tracks the pointer with no lag while the damped
// parameters keep their feel.
func (c *Controller) Pan(dx, dy float64) {
	if c.auto {
		return
	}
	c.current.PanX += dx
	c.target.PanX += dx
	c.current.PanY += dy
	c.target.PanY += dy
}

// Orbit applies a modifier-drag: horizontal delta rotates, vertical
// delta tilts. Both use the no-lag treatment; tilt is clamped short of
// the horizon so the view cannot flip.
func (c *Controller) Orbit(dx, dy float64) {
	if c.auto {
		return
	}
	r := dx * parameter.CameraOrbitRateX
	c.current.Rotation += r
	c.target.Rotation += r

	t := dy * parameter.CameraOrbitRateY
	c.current.Tilt = clampTilt(c.current.Tilt + t)
	c.target.Tilt = clampTilt(c.target.Tilt + t)
}

// ZoomBy adjusts the zoom target by steps of the wheel increment,
// scaled by the current zoom so the step feels proportional at any
// scale. Only the target moves; zoom animates through Step.
func (c *Controller) ZoomBy(steps float64) {
	if c.auto {
		return
	}
	z := c.target.Zoom + steps*parameter.CameraZoomWheelStep*c.current.Zoom
	if z < parameter.CameraZoomMin {
		z = parameter.CameraZoomMin
	}
	if z > parameter.CameraZoomMax {
		z = parameter.CameraZoomMax
	}
	c.target.Zoom = z
}

// SetFlat switches between the 3D and flattened views. Flattening
// zeroes tilt and rotation immediately (current and target); entering
// 3D restores the default targets and lets Step fly there.
func (c *Controller) SetFlat(flat bool) {
	if flat {
		c.target.Tilt = 0
		c.target.Rotation = 0
		c.current.Tilt = 0
		c.current.Rotation = 0
		return
	}
	c.target.Tilt = parameter.CameraDefaultTilt
	c.target.Rotation = parameter.CameraDefaultRotation
}

// FocusGround sets the pan target so the given ground position lands
// at screen center. Elevation is deliberately excluded: centering on
// the well bottom would make the camera jump when a heavy node is
// selected. Computed against target rotation/tilt/zoom so the fly-to
// converges exactly on center.
func (c *Controller) FocusGround(gx, gy float64, width, height int) {
	sx, sy := offset(c.target, width, height, gx, gy, 0)
	c.target.PanX = -sx
	c.target.PanY = -sy
}

// Reset returns pan and zoom to defaults, keeping the current view
// mode's tilt/rotation targets
func (c *Controller) Reset() {
	c.target.PanX = 0
	c.target.PanY = 0
	c.target.Zoom = parameter.CameraDefaultZoom
}

// SetAuto toggles the passive preview motion. While set, all pointer
// transitions are ignored.
func (c *Controller) SetAuto(auto bool) {
	c.auto = auto
}

// Auto reports whether preview motion is active
func (c *Controller) Auto() bool {
	return c.auto
}

func clampTilt(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > parameter.CameraTiltMax {
		return parameter.CameraTiltMax
	}
	return t
}
