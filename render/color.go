package render

import "github.com/gdamore/tcell/v2"

// Fixed palette. The background is the frame clear color; everything
// else dims toward it.
var (
	RgbBackground = tcell.NewRGBColor(8, 10, 24)
	RgbForeground = tcell.NewRGBColor(170, 180, 210)

	RgbGraticule     = tcell.NewRGBColor(40, 52, 86)
	RgbGraticuleAxis = tcell.NewRGBColor(62, 80, 128)

	RgbNode        = tcell.NewRGBColor(120, 200, 255)
	RgbNodeSystem  = tcell.NewRGBColor(255, 214, 110)
	RgbNodePending = tcell.NewRGBColor(130, 138, 160)
	RgbGlow        = tcell.NewRGBColor(60, 110, 160)

	RgbSelection = tcell.NewRGBColor(140, 255, 180)
	RgbHover     = tcell.NewRGBColor(220, 240, 255)

	RgbHudBar  = tcell.NewRGBColor(18, 22, 44)
	RgbHudText = tcell.NewRGBColor(150, 165, 200)
)

// Dim scales a color toward the background by opacity in [0, 1]
func Dim(c tcell.Color, opacity float64) tcell.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}

	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()

	mix := func(f, back int32) int32 {
		return back + int32(float64(f-back)*opacity)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
