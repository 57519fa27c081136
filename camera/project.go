package camera

import (
	"math"

	"github.com/lixenwraith/sector-atlas/parameter"
)

// Scale converts degrees to cells for the given view and screen size.
// The vertical extent is widened by the cell aspect before taking the
// minimum so a square map fills a terminal of square-ish proportions.
func Scale(v State, width, height int) float64 {
	w := float64(width)
	h := float64(height) / parameter.CameraCellAspect
	m := w
	if h < m {
		m = h
	}
	return m / 180 * v.Zoom
}

// offset is the rotated, tilt-sheared position relative to screen
// center, before pan
func offset(v State, width, height int, x, y, z float64) (float64, float64) {
	s := Scale(v, width, height)
	sinR, cosR := math.Sincos(v.Rotation)
	sinT, cosT := math.Sincos(v.Tilt)

	ox := (x*cosR - y*sinR) * s
	oy := ((x*sinR+y*cosR)*cosT - z*sinT) * s * parameter.CameraCellAspect
	return ox, oy
}

// Project maps a ground position and elevation to screen cells.
// Oblique projection: depth shears the vertical coordinate instead of
// scaling, so there is no perspective divide.
func Project(v State, width, height int, x, y, z float64) (float64, float64) {
	ox, oy := offset(v, width, height, x, y, z)
	cx := float64(width) / 2
	cy := float64(height) / 2
	return cx + v.PanX + ox, cy + v.PanY + oy
}
