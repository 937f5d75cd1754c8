package gridsight

import (
	"fmt"
	"slices"
)

// Cell is an integer (column, row) grid coordinate.
// Any pair of ints is a valid cell; grid extent belongs to the caller.
type Cell struct {
	X, Y int
}

// C is a convenience function to create a Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference of two cells.
func (c Cell) Sub(d Cell) Cell {
	return Cell{X: c.X - d.X, Y: c.Y - d.Y}
}

// DistanceSquared returns the exact squared Euclidean distance to d.
func (c Cell) DistanceSquared(d Cell) int {
	dx := c.X - d.X
	dy := c.Y - d.Y
	return dx*dx + dy*dy
}

// Adjacent reports whether d is one of the 8 neighbours of c.
// A cell is not adjacent to itself.
func (c Cell) Adjacent(d Cell) bool {
	dx := abs(c.X - d.X)
	dy := abs(c.Y - d.Y)
	return dx <= 1 && dy <= 1 && dx+dy > 0
}

// less orders cells by X, then Y.
func (c Cell) less(d Cell) bool {
	if c.X != d.X {
		return c.X < d.X
	}
	return c.Y < d.Y
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Path is an ordered sequence of 8-adjacent cells produced by the line
// rasterizer. The first cell is the source, the last is the target.
type Path []Cell

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p) }

// Start returns the first cell. It panics on an empty path.
func (p Path) Start() Cell { return p[0] }

// End returns the last cell. It panics on an empty path.
func (p Path) End() Cell { return p[len(p)-1] }

// Reversed returns a new path with the cells in reverse order.
func (p Path) Reversed() Path {
	r := slices.Clone(p)
	slices.Reverse(r)
	return r
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c Cell) bool {
	return slices.Contains(p, c)
}

// BoundarySet is the sequence of cells emitted by the circle rasterizer for
// one radius. It is not a path and may contain the same cell more than once.
type BoundarySet []Cell

// Unique returns a copy without repeated cells, keeping first-seen order.
func (b BoundarySet) Unique() BoundarySet {
	seen := make(map[Cell]struct{}, len(b))
	out := make(BoundarySet, 0, len(b))
	for _, c := range b {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Contains reports whether c was emitted at least once.
func (b BoundarySet) Contains(c Cell) bool {
	return slices.Contains(b, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
