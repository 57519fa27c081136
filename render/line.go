package render

import "github.com/gdamore/tcell/v2"

// Line plots a cell line between two points with the given rune.
// Plain Bresenham; graticule segments are short so no antialiasing.
func (b *Buffer) Line(x0, y0, x1, y1 int, ch rune, fg tcell.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.SetFg(x0, y0, ch, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
