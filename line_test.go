package gridsight

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		from, to Cell
		want     Path
	}{
		{
			name: "shallow first octant with tie",
			from: C(0, 0), to: C(4, 2),
			want: Path{C(0, 0), C(1, 0), C(2, 1), C(3, 2), C(4, 2)},
		},
		{
			name: "shallow first octant reversed",
			from: C(4, 2), to: C(0, 0),
			want: Path{C(4, 2), C(3, 2), C(2, 1), C(1, 0), C(0, 0)},
		},
		{
			name: "no ties",
			from: C(1, 1), to: C(4, 2),
			want: Path{C(1, 1), C(2, 1), C(3, 2), C(4, 2)},
		},
		{
			name: "steep swaps axes",
			from: C(0, 0), to: C(1, 3),
			want: Path{C(0, 0), C(0, 1), C(1, 2), C(1, 3)},
		},
		{
			name: "vertical",
			from: C(0, 0), to: C(0, 3),
			want: Path{C(0, 0), C(0, 1), C(0, 2), C(0, 3)},
		},
		{
			name: "horizontal negative",
			from: C(0, 0), to: C(-3, 0),
			want: Path{C(0, 0), C(-1, 0), C(-2, 0), C(-3, 0)},
		},
		{
			name: "diagonal third quadrant",
			from: C(0, 0), to: C(-3, -3),
			want: Path{C(0, 0), C(-1, -1), C(-2, -2), C(-3, -3)},
		},
		{
			name: "midpoint tie forward",
			from: C(0, 0), to: C(2, 1),
			want: Path{C(0, 0), C(1, 0), C(2, 1)},
		},
		{
			name: "midpoint tie backward",
			from: C(2, 1), to: C(0, 0),
			want: Path{C(2, 1), C(1, 0), C(0, 0)},
		},
		{
			name: "single cell",
			from: C(5, -7), to: C(5, -7),
			want: Path{C(5, -7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.from, tt.to)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Line(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestLineXY(t *testing.T) {
	got := LineXY(0, 0, 4, 2)
	want := Line(C(0, 0), C(4, 2))
	if !slices.Equal(got, want) {
		t.Errorf("LineXY(0, 0, 4, 2) = %v, want %v", got, want)
	}
}

// forEachPair visits every ordered pair of cells in [-n, n]².
func forEachPair(n int, fn func(a, b Cell)) {
	for x1 := -n; x1 <= n; x1++ {
		for y1 := -n; y1 <= n; y1++ {
			for x2 := -n; x2 <= n; x2++ {
				for y2 := -n; y2 <= n; y2++ {
					fn(C(x1, y1), C(x2, y2))
				}
			}
		}
	}
}

func TestLineReversalSymmetry(t *testing.T) {
	forEachPair(5, func(a, b Cell) {
		forward := Line(a, b)
		backward := Line(b, a)
		require.Equal(t, forward.Reversed(), backward, "Line(%v, %v) reversed", a, b)
	})
}

func TestLineLength(t *testing.T) {
	forEachPair(5, func(a, b Cell) {
		want := max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
		require.Len(t, Line(a, b), want, "Line(%v, %v)", a, b)
	})
}

func TestLineAdjacencyAndEndpoints(t *testing.T) {
	forEachPair(5, func(a, b Cell) {
		p := Line(a, b)
		require.Equal(t, a, p.Start(), "start of Line(%v, %v)", a, b)
		require.Equal(t, b, p.End(), "end of Line(%v, %v)", a, b)
		for i := 1; i < len(p); i++ {
			require.True(t, p[i-1].Adjacent(p[i]),
				"Line(%v, %v): %v and %v are not 8-adjacent", a, b, p[i-1], p[i])
		}
	})
}

// The inner walk must round to the nearest cell; ties are the only place
// the tie-break rule is allowed to choose.
func TestLineStaysNearIdeal(t *testing.T) {
	for dx := 1; dx <= 12; dx++ {
		for dy := 0; dy <= dx; dy++ {
			p := Line(C(0, 0), C(dx, dy))
			for i, c := range p {
				// |c.Y - i*dy/dx| <= 1/2  <=>  |2*dx*c.Y - 2*i*dy| <= dx
				diff := abs(2*dx*c.Y - 2*i*dy)
				if diff > dx {
					t.Errorf("Line(0,0 -> %d,%d)[%d] = %v, more than half a cell off", dx, dy, i, c)
				}
			}
		}
	}
}

func TestLines(t *testing.T) {
	from, to := C(-2, 3), C(5, -1)
	want := Line(from, to)

	var got Path
	for s := range Lines(from, to) {
		if len(got) == 0 {
			if s.HasPrev {
				t.Errorf("first step has a previous cell %v", s.Prev)
			}
		} else {
			if !s.HasPrev {
				t.Errorf("step %d has no previous cell", len(got))
			}
			if s.Prev != got[len(got)-1] {
				t.Errorf("step %d Prev = %v, want %v", len(got), s.Prev, got[len(got)-1])
			}
		}
		got = append(got, s.Cell)
	}

	if !slices.Equal(got, want) {
		t.Errorf("Lines(%v, %v) = %v, want %v", from, to, got, want)
	}
}

func TestLinesStartAtOrigin(t *testing.T) {
	// The start marker must not be confused with a (0,0) previous cell.
	for s := range Lines(C(0, 0), C(1, 0)) {
		if s.Cell == C(0, 0) && s.HasPrev {
			t.Error("first step reports a previous cell")
		}
		if s.Cell == C(1, 0) && (!s.HasPrev || s.Prev != C(0, 0)) {
			t.Errorf("second step = %+v, want Prev (0,0)", s)
		}
	}
}

func TestLinesEarlyStop(t *testing.T) {
	for _, dir := range [][2]Cell{{C(0, 0), C(10, 3)}, {C(10, 3), C(0, 0)}} {
		n := 0
		for range Lines(dir[0], dir[1]) {
			n++
			if n == 3 {
				break
			}
		}
		if n != 3 {
			t.Errorf("Lines(%v, %v) walked %d steps after break, want 3", dir[0], dir[1], n)
		}
	}
}

func TestLinesRestartable(t *testing.T) {
	seq := Lines(C(0, 0), C(-6, 4))
	var first, second Path
	for s := range seq {
		first = append(first, s.Cell)
	}
	for s := range seq {
		second = append(second, s.Cell)
	}
	if !slices.Equal(first, second) {
		t.Errorf("second walk = %v, want %v", second, first)
	}
}

func BenchmarkLine(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Line(C(0, 0), C(97, 41))
	}
}

func BenchmarkLines(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		for s := range Lines(C(0, 0), C(97, 41)) {
			_ = s
		}
	}
}
