package gridsight

// Visibility is the verdict of a sight-line query.
type Visibility struct {
	// InRange reports the exact disk test: rangeSquared >= dx² + dy².
	InRange bool

	// Obstructed reports that the traced line hit an occupied cell.
	// It is always false when InRange is false.
	Obstructed bool

	// Blocker is the first occupied cell on the line. Only meaningful when
	// Obstructed is true.
	Blocker Cell

	// Trace is the part of the line that was walked: the whole line when
	// clear, up to and including Blocker when obstructed, nil when out of
	// range.
	Trace Path
}

// Clear reports a clear line of sight: in range and not obstructed.
func (v Visibility) Clear() bool {
	return v.InRange && !v.Obstructed
}

// Visible decides whether target can be seen from source.
//
// The range test is algebraic and exact: target is in range when
// rangeSquared >= |source-target|². It does not consult the circle
// rasterizer, whose boundary is only an approximation of the same disk.
// When the target is out of range no line is traced and occ is never
// called.
//
// Otherwise the line from source to target is walked in order. The first
// cell is the source itself and is not checked. Each later cell is checked
// with occ, except the target cell unless WithTargetBlocking is given. The
// first occupied cell makes the result obstructed and no further cells are
// checked. A nil occ means nothing is occupied.
//
// The target is skipped by default because whatever is being looked at
// usually stands in its own cell: an occupied target is still seen. Only
// the source and target cells are exempt; every cell between them counts.
func Visible(source, target Cell, rangeSquared int, occ Occluder, opts ...QueryOption) Visibility {
	if rangeSquared < source.DistanceSquared(target) {
		return Visibility{}
	}

	o := applyQueryOptions(opts)
	v := Visibility{
		InRange: true,
		Trace:   make(Path, 0, lineLen(source, target)),
	}

	for s := range Lines(source, target) {
		v.Trace = append(v.Trace, s.Cell)
		if !s.HasPrev || occ == nil {
			continue
		}
		if s.Cell == target && !o.targetBlocks {
			continue
		}
		if occ.Occluded(s.Cell) {
			v.Obstructed = true
			v.Blocker = s.Cell
			break
		}
	}

	return v
}

// IsVisible is shorthand for Visible(...).Clear().
func IsVisible(source, target Cell, rangeSquared int, occ Occluder, opts ...QueryOption) bool {
	return Visible(source, target, rangeSquared, occ, opts...).Clear()
}
