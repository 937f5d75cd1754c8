package gridsight

import "image"

// OutsidePolicy decides what an OccupancyGrid reports for cells beyond its
// extent. The rasterizers never reject a coordinate, so a query near the
// edge of a grid may well ask about such cells.
type OutsidePolicy int

const (
	// OutsideOpen treats cells outside the grid as unoccupied.
	OutsideOpen OutsidePolicy = iota

	// OutsideBlocked treats cells outside the grid as occupied.
	OutsideBlocked
)

// String returns the policy name as used in scenario files.
func (p OutsidePolicy) String() string {
	switch p {
	case OutsideOpen:
		return "open"
	case OutsideBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// OccupancyGrid is a bounded width×height grid of occupied cells with its
// origin at (0, 0).
//
// A nil *OccupancyGrid reads as a 0×0 open grid, so At and Occluded report
// every cell unoccupied. Its mutating methods panic.
type OccupancyGrid struct {
	width   int
	height  int
	outside OutsidePolicy
	data    []bool
}

// NewOccupancyGrid creates an empty grid. Negative dimensions are treated
// as zero.
func NewOccupancyGrid(width, height int, outside OutsidePolicy) *OccupancyGrid {
	width = max(width, 0)
	height = max(height, 0)
	return &OccupancyGrid{
		width:   width,
		height:  height,
		outside: outside,
		data:    make([]bool, width*height),
	}
}

// NewOccupancyGridFromImage builds a grid with one cell per pixel of img.
//
// For images that report themselves opaque a pixel is occupied when its
// darkness (255 minus luminance) is at least threshold; otherwise the
// alpha channel is compared against threshold. Either way dark or solid
// pixels are walls.
func NewOccupancyGridFromImage(img image.Image, threshold uint8, outside OutsidePolicy) *OccupancyGrid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g := NewOccupancyGrid(w, h, outside)

	opaque := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		opaque = o.Opaque()
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, gr, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			var v uint32
			if opaque {
				// Rec. 601 luma on 16-bit channels, scaled to 0-255.
				luma := (299*r + 587*gr + 114*b) / 1000
				v = 255 - luma>>8
			} else {
				v = a >> 8
			}
			g.data[y*w+x] = v >= uint32(threshold)
		}
	}

	return g
}

// Bounds returns the grid extent as an image.Rectangle.
func (g *OccupancyGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// Width returns the grid width.
func (g *OccupancyGrid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Height returns the grid height.
func (g *OccupancyGrid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Outside returns the grid's outside policy.
func (g *OccupancyGrid) Outside() OutsidePolicy { return g.outside }

// In reports whether c lies inside the grid.
func (g *OccupancyGrid) In(c Cell) bool {
	if g == nil {
		return false
	}
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At reports whether c is occupied. Cells outside the grid follow the
// outside policy.
func (g *OccupancyGrid) At(c Cell) bool {
	if g == nil {
		return false
	}
	if !g.In(c) {
		return g.outside == OutsideBlocked
	}
	return g.data[c.Y*g.width+c.X]
}

// Set marks c as occupied. Cells outside the grid are ignored.
func (g *OccupancyGrid) Set(c Cell) {
	g.put(c, true)
}

// Clear marks c as unoccupied. Cells outside the grid are ignored.
func (g *OccupancyGrid) Clear(c Cell) {
	g.put(c, false)
}

// Toggle flips c and reports whether it is occupied afterwards.
// Cells outside the grid are left alone and report the outside policy.
func (g *OccupancyGrid) Toggle(c Cell) bool {
	if !g.In(c) {
		return g.At(c)
	}
	i := c.Y*g.width + c.X
	g.data[i] = !g.data[i]
	return g.data[i]
}

func (g *OccupancyGrid) put(c Cell, v bool) {
	if !g.In(c) {
		return
	}
	g.data[c.Y*g.width+c.X] = v
}

// Fill marks every cell inside the grid as occupied.
func (g *OccupancyGrid) Fill() {
	for i := range g.data {
		g.data[i] = true
	}
}

// Reset clears every cell.
func (g *OccupancyGrid) Reset() {
	clear(g.data)
}

// Count returns the number of occupied cells inside the grid.
func (g *OccupancyGrid) Count() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clone creates a copy of the grid.
func (g *OccupancyGrid) Clone() *OccupancyGrid {
	clone := NewOccupancyGrid(g.width, g.height, g.outside)
	copy(clone.data, g.data)
	return clone
}

// Occluded implements Occluder.
func (g *OccupancyGrid) Occluded(c Cell) bool { return g.At(c) }
