package gridsight

import (
	"iter"
	"slices"
)

// Step is one emission of a line walk: the current cell and the cell
// emitted before it. The first step of every walk has HasPrev == false,
// which marks the path start (a "move" rather than a "draw").
type Step struct {
	Cell    Cell
	Prev    Cell
	HasPrev bool
}

// Line returns the 8-connected discrete line from one cell to another,
// inclusive of both endpoints.
//
// The path has exactly max(|dx|, |dy|) + 1 cells and Line(a, b) is always
// the exact reverse of Line(b, a). Identical endpoints yield a single cell.
func Line(from, to Cell) Path {
	p := make(Path, 0, lineLen(from, to))
	for s := range Lines(from, to) {
		p = append(p, s.Cell)
	}
	return p
}

// LineXY is Line with the endpoints given as four integers.
func LineXY(x1, y1, x2, y2 int) Path {
	return Line(Cell{X: x1, Y: y1}, Cell{X: x2, Y: y2})
}

// Lines returns a lazy walk over the cells of Line(from, to). Each
// iteration recomputes the walk from scratch; breaking out of the loop
// stops it.
//
// Example:
//
//	for s := range gridsight.Lines(a, b) {
//	    if !s.HasPrev {
//	        moveTo(s.Cell)
//	        continue
//	    }
//	    lineTo(s.Cell)
//	}
func Lines(from, to Cell) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		var prev Cell
		hasPrev := false
		emit := func(c Cell) bool {
			s := Step{Cell: c, Prev: prev, HasPrev: hasPrev}
			prev, hasPrev = c, true
			return yield(s)
		}

		if !to.less(from) {
			trace(from, to, emit)
			return
		}

		// Walk the canonical direction and replay it backwards so the two
		// directions of a midpoint tie cannot disagree.
		back := make([]Cell, 0, lineLen(from, to))
		trace(to, from, func(c Cell) bool {
			back = append(back, c)
			return true
		})
		for _, c := range slices.Backward(back) {
			if !emit(c) {
				return
			}
		}
	}
}

// trace runs the octant-normalised Bresenham walk from a to b and hands
// every cell to emit, stopping early when emit returns false.
//
// The walk is reduced to the first octant by mirroring x and y and by
// swapping the axes when |dy| > |dx|. The doubled error term advances the
// minor axis when it passes the major delta; on an exact tie it advances
// only in the second half of the walk (x >= major-x).
func trace(a, b Cell, emit func(Cell) bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	xm, ym := 1, 1

	swapped := abs(dy) > abs(dx)
	if dx < 0 {
		xm = -1
		dx = -dx
	}
	if dy < 0 {
		ym = -1
		dy = -dy
	}
	if swapped {
		dx, dy = dy, dx
		xm, ym = ym, xm
	}

	for x, y, e := 0, 0, 0; x <= dx; x++ {
		var c Cell
		if swapped {
			c = Cell{X: y*ym + a.X, Y: x*xm + a.Y}
		} else {
			c = Cell{X: x*xm + a.X, Y: y*ym + a.Y}
		}
		if !emit(c) {
			return
		}

		e += 2 * dy
		if e > dx || (e == dx && x >= dx-x) {
			e -= 2 * dx
			y++
		}
	}
}

func lineLen(a, b Cell) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
}
