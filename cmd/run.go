package cmd

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/sector-atlas/audio"
	"github.com/lixenwraith/sector-atlas/engine"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/render"
	"github.com/lixenwraith/sector-atlas/render/renderers"
	"github.com/lixenwraith/sector-atlas/resolve"
	"github.com/lixenwraith/sector-atlas/sector"
)

// runAtlas wires the map and drives the frame loop until quit
func runAtlas() error {
	log, err := buildLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := sector.OpenFileStore(datasetPath())
	if err != nil {
		return fail("open dataset: %w", err)
	}

	var provider resolve.Provider
	if resolverPath != "" {
		provider, err = resolve.LoadTable(resolverPath)
		if err != nil {
			return fail("load resolver: %w", err)
		}
	}

	var sound *audio.Engine
	if !mute && !preview {
		if sound, err = audio.NewEngine(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fail("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fail("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	// Restore the terminal before printing any crash, or the trace is
	// unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsector-atlas crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Registered before Fini so it prints to a restored terminal:
	// the last engaged sector surfaces to the host shell on exit
	var engaged string
	defer func() {
		if engaged != "" {
			fmt.Println(engaged)
		}
	}()
	defer screen.Fini()

	ctx, err := engine.NewContext(screen, engine.Options{
		Store:    store,
		Provider: provider,
		Preview:  preview,
		Audio:    sound,
		Log:      log,
		OnSelectSector: func(address string) {
			engaged = address
		},
	})
	if err != nil {
		return err
	}
	defer ctx.Stop()

	pipeline := render.NewPipeline(screen, ctx.Width, ctx.Height)
	pipeline.Register(renderers.NewGraticuleRenderer(ctx), render.PriorityGraticule)
	pipeline.Register(renderers.NewGlowRenderer(ctx), render.PriorityGlow)
	pipeline.Register(renderers.NewNodeRenderer(ctx), render.PriorityNodes)
	pipeline.Register(renderers.NewOverlayRenderer(ctx), render.PriorityOverlay)
	pipeline.Register(renderers.NewHUDRenderer(ctx), render.PriorityHUD)

	// Input polling runs on its own goroutine; everything else shares
	// the frame goroutine below
	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !ctx.HandleEvent(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				pipeline.Resize(ctx.Width, ctx.Height)
			}

		case <-frameTicker.C:
			now := time.Now()
			ctx.Update(now)
			pipeline.RenderFrame(render.Context{
				Width:  ctx.Width,
				Height: ctx.Height,
				Now:    ctx.Elapsed(now),
			})
		}
	}
}

// buildLogger returns a file logger when --log is set, a nop otherwise
func buildLogger() (*zap.Logger, error) {
	if logPath == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	log, err := cfg.Build()
	if err != nil {
		return nil, fail("open log: %w", err)
	}
	return log, nil
}
