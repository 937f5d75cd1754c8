package gridsight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccluderFunc(t *testing.T) {
	diagonal := OccluderFunc(func(c Cell) bool { return c.X == c.Y })
	assert.True(t, diagonal.Occluded(C(3, 3)))
	assert.False(t, diagonal.Occluded(C(3, 4)))
}

func TestCellSet(t *testing.T) {
	s := NewCellSet(C(1, 1), C(2, 2), C(1, 1))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(C(1, 1)))
	assert.True(t, s.Occluded(C(2, 2)))
	assert.False(t, s.Occluded(C(3, 3)))

	s.Add(C(3, 3))
	assert.True(t, s.Has(C(3, 3)))

	s.Remove(C(1, 1))
	assert.False(t, s.Has(C(1, 1)))

	assert.True(t, s.Toggle(C(9, 9)))
	assert.False(t, s.Toggle(C(9, 9)))
	assert.Equal(t, 2, s.Len())
}

func TestUnion(t *testing.T) {
	grid := NewOccupancyGrid(4, 4, OutsideOpen)
	grid.Set(C(0, 0))
	set := NewCellSet(C(10, 10))

	u := Union(grid, nil, set)
	assert.True(t, u.Occluded(C(0, 0)))
	assert.True(t, u.Occluded(C(10, 10)))
	assert.False(t, u.Occluded(C(1, 1)))

	assert.False(t, Union().Occluded(C(0, 0)), "empty union occludes nothing")
}

func TestNilCellSet(t *testing.T) {
	var s *CellSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(C(0, 0)))

	v := Visible(C(0, 0), C(4, 0), 16, s)
	assert.True(t, v.Clear(), "nil set occludes nothing")
	assert.Len(t, v.Trace, 5)

	assert.True(t, IsVisible(C(0, 0), C(4, 0), 16, Union(s, NewCellSet(C(9, 9)))))
}
