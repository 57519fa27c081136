package renderers

import (
	"github.com/lixenwraith/sector-atlas/camera"
	"github.com/lixenwraith/sector-atlas/engine"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/render"
)

// GraticuleRenderer draws the projected lat/lon grid. Every vertex is
// projected independently, elevation included, so grid lines sag into
// gravity wells.
type GraticuleRenderer struct {
	ctx *engine.Context
}

// NewGraticuleRenderer creates the grid layer
func NewGraticuleRenderer(ctx *engine.Context) *GraticuleRenderer {
	return &GraticuleRenderer{ctx: ctx}
}

// Render draws latitude then longitude polylines
func (r *GraticuleRenderer) Render(rc render.Context, buf *render.Buffer) {
	if !r.ctx.ShowGraticule {
		return
	}

	v := r.ctx.Cam.View()

	for lat := -90.0; lat <= 90; lat += parameter.GraticuleStepDeg {
		r.polyline(v, buf, func(t float64) (float64, float64) {
			return -180 + t, lat
		}, 360/parameter.GraticuleSampleDeg, lat == 0)
	}

	for lon := -180.0; lon <= 180; lon += parameter.GraticuleStepDeg {
		r.polyline(v, buf, func(t float64) (float64, float64) {
			return lon, -90 + t
		}, 180/parameter.GraticuleSampleDeg, lon == 0)
	}
}

// polyline projects the sample points of one grid line and joins
// consecutive on-screen vertices. The segment restarts whenever a
// vertex projects far outside the view, instead of rubber-banding a
// line across the screen.
func (r *GraticuleRenderer) polyline(v camera.State, buf *render.Buffer, at func(t float64) (lon, lat float64), steps float64, axis bool) {
	fg := render.RgbGraticule
	if axis {
		fg = render.RgbGraticuleAxis
	}

	w := float64(r.ctx.Width)
	h := float64(r.ctx.Height)
	margin := parameter.GraticuleBreakMargin

	pen := false
	var prevX, prevY int

	for i := 0.0; i <= steps; i++ {
		lon, lat := at(i * parameter.GraticuleSampleDeg)
		z := r.ctx.Field.At(lon, lat)
		sx, sy := camera.Project(v, r.ctx.Width, r.ctx.Height, lon, lat, z)

		if sx < -margin || sx > w+margin || sy < -margin || sy > h+margin {
			pen = false
			continue
		}

		x, y := int(sx+0.5), int(sy+0.5)
		if pen {
			buf.Line(prevX, prevY, x, y, '·', fg)
		}
		prevX, prevY = x, y
		pen = true
	}
}
