package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// Buffer is the off-screen cell grid the renderers draw into. One
// buffer per pipeline, cleared and flushed once per frame.
type Buffer struct {
	width  int
	height int
	cells  []cell
	clear  tcell.Style
}

// NewBuffer allocates a buffer with the fixed background style
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		clear: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground),
	}
	b.Resize(width, height)
	return b
}

// Resize reallocates the grid
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.width = width
	b.height = height
	b.cells = make([]cell, width*height)
	b.Clear()
}

// Size returns the grid dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets every cell to the background
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{ch: ' ', style: b.clear}
	}
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{ch: ch, style: style}
}

// SetFg writes a rune keeping the fixed background
func (b *Buffer) SetFg(x, y int, ch rune, fg tcell.Color) {
	b.Set(x, y, ch, b.clear.Foreground(fg))
}

// Text writes a string left to right, clipped at the buffer edge.
// Columns advance by display width, not byte offset, so multibyte
// runes do not shift the rest of the line.
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		b.Set(col, y, ch, style)
		col += runewidth.RuneWidth(ch)
	}
}

// Flush pushes the buffer to the terminal
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.ch, nil, c.style)
		}
	}
}
