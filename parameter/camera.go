package parameter

import "math"

// Camera smoothing and input scaling
const (
	// CameraBlendFactor is the per-frame exponential blend of current
	// toward target. Pan and orbit bypass it (both values move together)
	// so dragging tracks the pointer with zero lag
	CameraBlendFactor = 0.1

	// CameraZoomMin and CameraZoomMax clamp the zoom target
	CameraZoomMin = 0.2
	CameraZoomMax = 20.0

	// CameraZoomWheelStep is the wheel increment before scaling by the
	// current zoom, keeping zoom speed proportional at any scale
	CameraZoomWheelStep = 0.12

	// CameraTiltMax stops the view from flipping past the horizon
	CameraTiltMax = math.Pi / 2.1

	// CameraOrbitRateX converts horizontal drag cells to rotation radians
	CameraOrbitRateX = 0.04

	// CameraOrbitRateY converts vertical drag cells to tilt radians.
	// Cells are roughly twice as tall as wide, hence the higher rate
	CameraOrbitRateY = 0.08

	// CameraKeyPanStep is the pan distance in cells per arrow/hjkl press
	CameraKeyPanStep = 4.0

	// Defaults restored when entering the 3D view
	CameraDefaultTilt     = 0.9
	CameraDefaultRotation = 0.0
	CameraDefaultZoom     = 1.0
)

// Auto (preview) camera motion
const (
	// CameraAutoRotateRate is rotation target advance in radians/second
	CameraAutoRotateRate = 0.15

	// CameraAutoTiltMid and CameraAutoTiltAmplitude define the sinusoid
	// the tilt target oscillates on in auto mode
	CameraAutoTiltMid       = 0.7
	CameraAutoTiltAmplitude = 0.25
	CameraAutoTiltFrequency = 0.2
)

// CameraCellAspect compensates for terminal cells being roughly twice as
// tall as wide: vertical screen offsets shrink by this after projection
const CameraCellAspect = 0.5
