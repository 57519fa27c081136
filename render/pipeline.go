package render

import "github.com/gdamore/tcell/v2"

// Context is the per-frame draw state shared by all renderers
type Context struct {
	Width  int
	Height int

	// Now is seconds since the loop started; drives the visual
	// oscillators
	Now float64
}

// Renderer draws one layer of the frame
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// Priority orders renderer execution, low first
type Priority int

const (
	PriorityGraticule Priority = 100
	PriorityGlow      Priority = 150
	PriorityNodes     Priority = 200
	PriorityOverlay   Priority = 300
	PriorityHUD       Priority = 400
)

type entry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Pipeline coordinates the render pass: clear, draw layers in priority
// order, flush, show
type Pipeline struct {
	screen   tcell.Screen
	buffer   *Buffer
	entries  []entry
	regCount int
}

// NewPipeline creates a pipeline over the given screen
func NewPipeline(screen tcell.Screen, width, height int) *Pipeline {
	return &Pipeline{
		screen:  screen,
		buffer:  NewBuffer(width, height),
		entries: make([]entry, 0, 8),
	}
}

// Register inserts a renderer at the given priority, keeping entries
// sorted with registration order as the tie-break
func (p *Pipeline) Register(r Renderer, priority Priority) {
	e := entry{renderer: r, priority: priority, index: p.regCount}
	p.regCount++

	pos := len(p.entries)
	for i, it := range p.entries {
		if priority < it.priority || (priority == it.priority && e.index < it.index) {
			pos = i
			break
		}
	}

	p.entries = append(p.entries, entry{})
	copy(p.entries[pos+1:], p.entries[pos:])
	p.entries[pos] = e
}

// Resize adjusts the backing buffer to the terminal and syncs
func (p *Pipeline) Resize(width, height int) {
	p.buffer.Resize(width, height)
	p.screen.Sync()
}

// RenderFrame executes one full frame
func (p *Pipeline) RenderFrame(ctx Context) {
	p.buffer.Clear()
	for _, e := range p.entries {
		e.renderer.Render(ctx, p.buffer)
	}
	p.buffer.Flush(p.screen)
	p.screen.Show()
}
