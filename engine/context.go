package engine

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/sector-atlas/audio"
	"github.com/lixenwraith/sector-atlas/camera"
	"github.com/lixenwraith/sector-atlas/config"
	"github.com/lixenwraith/sector-atlas/field"
	"github.com/lixenwraith/sector-atlas/geo"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/resolve"
	"github.com/lixenwraith/sector-atlas/scene"
	"github.com/lixenwraith/sector-atlas/sector"
)

// Options configures a map context
type Options struct {
	Store    sector.Store
	Provider resolve.Provider // nil disables background resolution

	// Preview runs the read-only auto-rotate mode: no pointer input,
	// no HUD
	Preview bool

	// OnSelectSector notifies the host when a selection is engaged.
	// Fire and forget; may be nil.
	OnSelectSector func(address string)

	Audio        *audio.Engine // nil disables cues
	Log          *zap.Logger   // nil becomes zap.NewNop
	SettingsPath string        // empty uses config.DefaultPath
}

// Context is the single owned state record behind the map: camera,
// node set, selection and interaction state. Everything here is
// mutated from one goroutine (the frame loop); the resolver hands its
// results over through a channel, never by touching this directly.
type Context struct {
	Screen        tcell.Screen
	Width, Height int

	Cam   *camera.Controller
	Field *field.Field
	Nodes []scene.Node

	System        geo.System
	Flat          bool
	Preview       bool
	ShowGraticule bool
	LabelsAll     bool

	// Hover and Selected are indices into Nodes, -1 for none
	Hover    int
	Selected int

	MouseX, MouseY int

	OnSelectSector func(address string)

	store        sector.Store
	sectors      []sector.Sector
	settings     config.Settings
	settingsPath string

	runner *resolve.Runner
	sound  *audio.Engine
	log    *zap.Logger

	start    time.Time
	lastStep time.Time
	lastKick time.Time

	// selection survives rebuilds by address, not index
	selectedAddr string

	// drag tracking
	dragButtons  tcell.ButtonMask
	downX, downY int
	lastX, lastY int
	dragged      bool
}

// NewContext loads settings and the dataset and builds the initial
// scene
func NewContext(screen tcell.Screen, opts Options) (*Context, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	path := opts.SettingsPath
	if path == "" {
		path = config.DefaultPath()
	}
	settings := config.Load(path)

	sectors, err := opts.Store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load sectors: %w", err)
	}

	width, height := screen.Size()
	now := time.Now()

	c := &Context{
		Screen:         screen,
		Width:          width,
		Height:         height,
		Cam:            camera.New(),
		System:         parseSystem(settings.CoordinateMode),
		Flat:           settings.ViewMode == "flat",
		Preview:        opts.Preview,
		ShowGraticule:  true,
		Hover:          -1,
		Selected:       -1,
		OnSelectSector: opts.OnSelectSector,
		store:          opts.Store,
		sectors:        sectors,
		settings:       settings,
		settingsPath:   path,
		sound:          opts.Audio,
		log:            log,
		start:          now,
		lastStep:       now,
	}

	if c.Flat {
		c.Cam.SetFlat(true)
	}
	if c.Preview {
		c.Cam.SetAuto(true)
	}

	if opts.Provider != nil {
		c.runner = resolve.NewRunner(opts.Provider, log)
	}

	c.Rebuild()

	log.Info("atlas context ready",
		zap.Int("sectors", len(sectors)),
		zap.String("system", c.System.String()),
		zap.Bool("preview", c.Preview))
	return c, nil
}

func parseSystem(mode string) geo.System {
	if mode == "linear" {
		return geo.SystemLinear
	}
	return geo.SystemGeodesic
}

// Elapsed is seconds since the loop started, for the visual oscillators
func (c *Context) Elapsed(now time.Time) float64 {
	return now.Sub(c.start).Seconds()
}

// Stop tears down background work. The resolver checks its liveness
// flag between batches and winds down.
func (c *Context) Stop() {
	if c.runner != nil {
		c.runner.Stop()
	}
}

// Rebuild re-derives the node set from the sector list under the
// active coordinate system. Camera and selection state persist;
// selection is re-bound by address since indices shift.
func (c *Context) Rebuild() {
	c.Nodes = scene.Build(c.sectors, c.System)

	gravity := c.settings.GravityStrength
	if c.Field != nil {
		gravity = c.Field.Gravity()
	}
	c.Field = field.New(scene.Masses(c.Nodes), gravity, c.Flat)

	c.Selected = -1
	if c.selectedAddr != "" {
		for i := range c.Nodes {
			if c.Nodes[i].Address == c.selectedAddr {
				c.Selected = i
				break
			}
		}
	}
	c.Hover = -1

	c.kickResolver()
}

// kickResolver starts a background pass over still-unresolved sectors.
// The runner ignores the kick if a pass is already in flight.
func (c *Context) kickResolver() {
	if c.runner == nil {
		return
	}
	c.lastKick = time.Now()

	var pending []sector.Sector
	for i := range c.sectors {
		if !c.sectors[i].Resolved() {
			pending = append(pending, c.sectors[i])
		}
	}
	c.runner.Kick(pending)
}

// retryResolver re-kicks a pass on an interval while unresolved
// sectors remain, so sectors whose resolution failed are retried
// without waiting for a mode toggle
func (c *Context) retryResolver(now time.Time) {
	if c.runner == nil || now.Sub(c.lastKick) < parameter.ResolveRetryInterval {
		return
	}
	for i := range c.sectors {
		if !c.sectors[i].Resolved() {
			c.kickResolver()
			return
		}
	}
}

// saveSettings persists the current tunables under the fixed key path.
// Failures are logged and otherwise ignored; settings are best-effort.
func (c *Context) saveSettings() {
	c.settings.GravityStrength = c.Field.Gravity()
	if c.Flat {
		c.settings.ViewMode = "flat"
	} else {
		c.settings.ViewMode = "3d"
	}
	c.settings.CoordinateMode = c.System.String()

	if err := config.Save(c.settingsPath, c.settings); err != nil {
		c.log.Warn("settings save failed", zap.Error(err))
	}
}

func (c *Context) play(cue audio.Cue) {
	if c.sound != nil {
		c.sound.Play(cue)
	}
}
