package gridsight

// Occluder reports whether a cell blocks sight.
//
// Implementations must answer for every cell they are asked about and must
// not have side effects the engine could observe. The engine calls
// Occluded from whichever goroutine runs the query; an Occluder shared by a
// Tracker must be safe for concurrent reads.
type Occluder interface {
	Occluded(c Cell) bool
}

// OccluderFunc adapts an ordinary function to the Occluder interface.
type OccluderFunc func(c Cell) bool

// Occluded calls f(c).
func (f OccluderFunc) Occluded(c Cell) bool { return f(c) }

// Union returns an Occluder that reports a cell as occupied when any of
// the given occluders does. Nil entries are skipped.
func Union(occluders ...Occluder) Occluder {
	list := make([]Occluder, 0, len(occluders))
	for _, o := range occluders {
		if o != nil {
			list = append(list, o)
		}
	}
	return OccluderFunc(func(c Cell) bool {
		for _, o := range list {
			if o.Occluded(c) {
				return true
			}
		}
		return false
	})
}

// CellSet is a set of occupied cells. The zero value is not usable; create
// one with NewCellSet.
//
// CellSet is not safe for concurrent mutation. Concurrent Occluded calls
// are fine as long as nothing writes to the set.
//
// A nil *CellSet is an empty set: Has, Len and Occluded report nothing
// occupied. Add on a nil set panics.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Add marks c as occupied.
func (s *CellSet) Add(c Cell) { s.cells[c] = struct{}{} }

// Remove clears c.
func (s *CellSet) Remove(c Cell) { delete(s.cells, c) }

// Toggle flips c and reports whether it is occupied afterwards.
func (s *CellSet) Toggle(c Cell) bool {
	if s.Has(c) {
		s.Remove(c)
		return false
	}
	s.Add(c)
	return true
}

// Has reports whether c is occupied.
func (s *CellSet) Has(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of occupied cells.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Occluded implements Occluder.
func (s *CellSet) Occluded(c Cell) bool { return s.Has(c) }
