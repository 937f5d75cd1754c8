// Package gridsight rasterizes lines and circles on an integer grid and
// answers range and line-of-sight queries on top of them.
//
// # Overview
//
// gridsight is the engine behind small grid toys: a watcher with a range
// looks for a target across a grid of occupied and free cells. It has no
// rendering, input or storage of its own; callers map the cells it returns
// to whatever they draw.
//
// # Quick Start
//
//	import "github.com/gogpu/gridsight"
//
//	walls := gridsight.NewCellSet(gridsight.C(2, 0))
//
//	v := gridsight.Visible(gridsight.C(0, 0), gridsight.C(4, 0), 16, walls)
//	// v.InRange == true, v.Obstructed == true, v.Blocker == (2,0)
//
//	edge, _ := gridsight.BoundaryCells(gridsight.C(0, 0), 4)
//	// cells to highlight as the edge of the range
//
// # Algorithms
//
//   - Line: integer Bresenham reduced to the first octant and always traced
//     from the lesser endpoint, so Line(a, b) is the exact reverse of
//     Line(b, a).
//   - Circle: integer midpoint circle, 8 emissions per step, duplicates
//     kept.
//
// # Range versus boundary
//
// A range is tested exactly: dx² + dy² <= rangeSquared. The circle drawn
// for the same range rounds, so a boundary cell can fall just inside or
// just outside the exact disk. Use the boundary to show a range and
// Visible or RangeSpec.Contains to decide one.
//
// # Coordinate System
//
//   - Cells are (column, row) pairs of ints; negative values are fine
//   - X increases right, Y increases down
//   - Grid extent is the caller's business (see OccupancyGrid)
//
// # Concurrency
//
// Every function is pure and safe for concurrent use. Tracker fans a batch
// of queries out over a worker pool.
package gridsight

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
