package gridsight

import "math"

// Circle returns the cells approximating the boundary of a circle of
// radius r around center, using an integer midpoint walk.
//
// Every walk step emits exactly 8 cells, one per octant. Where octants
// meet (on the axes at the first step, on the diagonals when x == y) the
// same cell is emitted more than once; those duplicates are kept. Use
// BoundarySet.Unique for a set without them.
//
// A radius of 0 yields the center cell 8 times. A negative, NaN, infinite
// or int-overflowing radius returns a *RadiusError wrapping
// ErrInvalidArgument.
func Circle(center Cell, r float64) (BoundarySet, error) {
	if err := checkRadius(r); err != nil {
		return nil, err
	}
	out := make(BoundarySet, 0, circleCap(r))
	walkCircle(center, r, func(c Cell) {
		out = append(out, c)
	})
	return out, nil
}

// WalkCircle is the streaming form of Circle: fn is called once per
// emission, duplicates included, in emission order.
func WalkCircle(center Cell, r float64, fn func(Cell)) error {
	if err := checkRadius(r); err != nil {
		return err
	}
	walkCircle(center, r, fn)
	return nil
}

// maxRadius is the largest radius the circle rasterizer accepts, about
// 1.5e9 with 64-bit ints. Beyond it the squared walk terms overflow.
var maxRadius = math.Sqrt(math.MaxInt / 4)

func checkRadius(r float64) error {
	if !(r >= 0 && r <= maxRadius) {
		return &RadiusError{Radius: r}
	}
	return nil
}

// walkCircle keeps a running x²+y² for the current cell and steps y inward
// once it exceeds (r+0.5)², i.e. r² + r + 0.25.
func walkCircle(center Cell, r float64, fn func(Cell)) {
	cx, cy := center.X, center.Y
	threshold := 0.25 + r + r*r

	x := 0
	y := int(math.Round(r))
	trial := x*x + y*y

	for x <= y {
		fn(Cell{X: cx + y, Y: cy - x})
		fn(Cell{X: cx + x, Y: cy - y})
		fn(Cell{X: cx - x, Y: cy - y})
		fn(Cell{X: cx - y, Y: cy - x})
		fn(Cell{X: cx - y, Y: cy + x})
		fn(Cell{X: cx - x, Y: cy + y})
		fn(Cell{X: cx + x, Y: cy + y})
		fn(Cell{X: cx + y, Y: cy + x})

		trial += 2*x + 1
		x++

		if float64(trial) > threshold {
			y--
			trial -= 2*y + 1
		}
	}
}

// circleCap estimates the emission count: about r/sqrt(2) steps of 8.
func circleCap(r float64) int {
	return 8 * (int(r*0.71) + 2)
}
