package gridsight

import (
	"math"

	"github.com/gogpu/gridsight/internal/cache"
)

// rings holds origin-centered boundary rings keyed by squared radius.
var rings = cache.New[int, BoundarySet](256)

// RangeSpec is a range around a center cell, stored as an integer squared
// radius so that membership is exact.
//
// Contains and Boundary describe the same disk in two different ways.
// Contains is the authoritative test. Boundary comes from the circle
// rasterizer and rounds, so its cells are not guaranteed to lie at exactly
// Radius from Center, nor to agree with Contains cell for cell.
type RangeSpec struct {
	Center        Cell
	RadiusSquared int
}

// RangeThrough returns the range around center whose edge passes through
// edge.
func RangeThrough(center, edge Cell) RangeSpec {
	return RangeSpec{Center: center, RadiusSquared: center.DistanceSquared(edge)}
}

// Radius returns sqrt(RadiusSquared).
func (r RangeSpec) Radius() float64 {
	return math.Sqrt(float64(r.RadiusSquared))
}

// Contains reports whether c is within range.
func (r RangeSpec) Contains(c Cell) bool {
	return r.RadiusSquared >= r.Center.DistanceSquared(c)
}

// Boundary returns BoundaryCells(r.Center, r.Radius()).
//
// The ring for each squared radius is walked once and translated to
// Center on later calls. The returned set is the caller's to modify.
func (r RangeSpec) Boundary() (BoundarySet, error) {
	radius := r.Radius()
	if err := checkRadius(radius); err != nil {
		return nil, err
	}

	ring := rings.GetOrCreate(r.RadiusSquared, func() BoundarySet {
		b, _ := Circle(Cell{}, radius)
		return b
	})

	out := make(BoundarySet, len(ring))
	for i, c := range ring {
		out[i] = c.Add(r.Center)
	}
	return out, nil
}

// RingCacheStats reports how often Boundary reused a cached ring.
type RingCacheStats struct {
	Rings    int // squared radii currently cached
	Hits     uint64
	Misses   uint64
	HitRate  float64
	Capacity int
}

// BoundaryCacheStats returns the counters of the ring cache shared by every
// RangeSpec.Boundary call in the process.
func BoundaryCacheStats() RingCacheStats {
	s := rings.Stats()
	return RingCacheStats{
		Rings:    s.Len,
		Hits:     s.Hits,
		Misses:   s.Misses,
		HitRate:  s.HitRate(),
		Capacity: s.Capacity,
	}
}

// BoundaryCells returns the cells marking the edge of a range, for display.
//
// It must not be used to decide whether something is in range: use
// RangeSpec.Contains or Visible for that.
func BoundaryCells(center Cell, radius float64) (BoundarySet, error) {
	return Circle(center, radius)
}

// Spokes returns one line from center to each boundary emission of the
// given radius, duplicates included, in emission order.
func Spokes(center Cell, radius float64) ([]Path, error) {
	var spokes []Path
	err := WalkCircle(center, radius, func(c Cell) {
		spokes = append(spokes, Line(center, c))
	})
	if err != nil {
		return nil, err
	}
	return spokes, nil
}
