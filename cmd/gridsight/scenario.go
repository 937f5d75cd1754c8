package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gridsight"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Scenario is the root YAML structure of a scenario file.
type Scenario struct {
	Grid           GridDef      `yaml:"grid"`
	Mask           *MaskDef     `yaml:"mask,omitempty"`
	Obstacles      []CellDef    `yaml:"obstacles"`
	Target         CellDef      `yaml:"target"`
	Watchers       []WatcherDef `yaml:"watchers"`
	OccupantsBlock *bool        `yaml:"occupants_block,omitempty"` // default true
	TargetBlocks   bool         `yaml:"target_blocks,omitempty"`
}

// GridDef sizes the occupancy grid when no mask is given.
type GridDef struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Outside string `yaml:"outside"` // open, blocked
}

// MaskDef loads grid occupancy from an image. Relative paths are resolved
// against the scenario file's directory.
type MaskDef struct {
	Path      string `yaml:"path"`
	Threshold *int   `yaml:"threshold,omitempty"` // default 128
}

// WatcherDef defines one watcher. Exactly one of RangeSquared and Edge is
// set.
type WatcherDef struct {
	Name         string   `yaml:"name"`
	Position     CellDef  `yaml:"position"`
	RangeSquared *int     `yaml:"range_squared,omitempty"`
	Edge         *CellDef `yaml:"edge,omitempty"`
}

// CellDef is a cell written as [x, y].
type CellDef []int

// Cell converts the definition, checking it has two coordinates.
func (c CellDef) Cell() (gridsight.Cell, error) {
	if len(c) != 2 {
		return gridsight.Cell{}, fmt.Errorf("cell %v: want [x, y]", []int(c))
	}
	return gridsight.C(c[0], c[1]), nil
}

const defaultMaskThreshold = 128

// LoadScenario parses scenario YAML.
func LoadScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &s, nil
}

// world is a scenario resolved into engine values.
type world struct {
	grid         *gridsight.OccupancyGrid
	obstacles    *gridsight.CellSet
	occupants    *gridsight.CellSet
	target       gridsight.Cell
	watchers     []gridsight.Watcher
	targetBlocks bool
}

func (w *world) occluder() gridsight.Occluder {
	if w.occupants == nil {
		return gridsight.Union(w.grid, w.obstacles)
	}
	return gridsight.Union(w.grid, w.obstacles, w.occupants)
}

func (w *world) queryOptions() []gridsight.QueryOption {
	if w.targetBlocks {
		return []gridsight.QueryOption{gridsight.WithTargetBlocking()}
	}
	return nil
}

func parseOutside(s string) (gridsight.OutsidePolicy, error) {
	switch s {
	case "", "open":
		return gridsight.OutsideOpen, nil
	case "blocked":
		return gridsight.OutsideBlocked, nil
	default:
		return 0, fmt.Errorf("unknown outside policy: %s", s)
	}
}

// resolve validates the scenario and builds its world. dir is the
// directory mask paths are relative to.
func (s *Scenario) resolve(dir string) (*world, error) {
	outside, err := parseOutside(s.Grid.Outside)
	if err != nil {
		return nil, err
	}

	w := &world{targetBlocks: s.TargetBlocks}

	if s.Mask != nil {
		threshold := defaultMaskThreshold
		if s.Mask.Threshold != nil {
			threshold = *s.Mask.Threshold
		}
		if threshold < 0 || threshold > 255 {
			return nil, fmt.Errorf("mask threshold %d out of range [0, 255]", threshold)
		}
		path := s.Mask.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if w.grid, err = loadMask(path, uint8(threshold), outside); err != nil {
			return nil, err
		}
		if (s.Grid.Width != 0 || s.Grid.Height != 0) &&
			(s.Grid.Width != w.grid.Width() || s.Grid.Height != w.grid.Height()) {
			return nil, fmt.Errorf("mask is %dx%d but grid is %dx%d",
				w.grid.Width(), w.grid.Height(), s.Grid.Width, s.Grid.Height)
		}
	} else {
		if s.Grid.Width < 0 || s.Grid.Height < 0 {
			return nil, fmt.Errorf("grid size %dx%d is negative", s.Grid.Width, s.Grid.Height)
		}
		w.grid = gridsight.NewOccupancyGrid(s.Grid.Width, s.Grid.Height, outside)
	}

	w.obstacles = gridsight.NewCellSet()
	for i, def := range s.Obstacles {
		c, err := def.Cell()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		w.obstacles.Add(c)
	}

	if w.target, err = s.Target.Cell(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	if len(s.Watchers) == 0 {
		return nil, errors.New("scenario has no watchers")
	}
	if s.OccupantsBlock == nil || *s.OccupantsBlock {
		w.occupants = gridsight.NewCellSet()
	}
	seen := make(map[string]bool, len(s.Watchers))
	for i, def := range s.Watchers {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("watcher-%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate watcher name: %s", name)
		}
		seen[name] = true

		pos, err := def.Position.Cell()
		if err != nil {
			return nil, fmt.Errorf("watcher %s position: %w", name, err)
		}

		var rangeSquared int
		switch {
		case def.RangeSquared != nil && def.Edge != nil:
			return nil, fmt.Errorf("watcher %s: range_squared and edge are mutually exclusive", name)
		case def.RangeSquared != nil:
			if *def.RangeSquared < 0 {
				return nil, fmt.Errorf("watcher %s: range_squared %d is negative", name, *def.RangeSquared)
			}
			rangeSquared = *def.RangeSquared
		case def.Edge != nil:
			edge, err := def.Edge.Cell()
			if err != nil {
				return nil, fmt.Errorf("watcher %s edge: %w", name, err)
			}
			rangeSquared = gridsight.RangeThrough(pos, edge).RadiusSquared
		default:
			return nil, fmt.Errorf("watcher %s: one of range_squared or edge is required", name)
		}

		w.watchers = append(w.watchers, gridsight.Watcher{Name: name, Position: pos, RangeSquared: rangeSquared})
		if w.occupants != nil {
			w.occupants.Add(pos)
		}
	}

	return w, nil
}

func newScenarioCmd(root *rootOptions) *cobra.Command {
	var (
		workers int
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "scenario FILE",
		Short: "Track a target from every watcher of a YAML scenario",
		Long: `Load a scenario file and report, for every watcher, whether the target
is in range and whether the sight line is clear.

Example scenario:

  grid: {width: 64, height: 64, outside: open}
  mask: {path: walls.png, threshold: 128}
  obstacles: [[3, 4], [5, 6]]
  target: [10, 10]
  watchers:
    - {name: north, position: [10, 2], range_squared: 100}
    - {name: west, position: [2, 10], edge: [9, 10]}
  occupants_block: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, root, args[0], workers, trace)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Tracker goroutines (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Include every sight line's walked cells")

	return cmd
}

func runScenario(cmd *cobra.Command, root *rootOptions, file string, workers int, trace bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	sc, err := LoadScenario(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	w, err := sc.resolve(filepath.Dir(file))
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	tracker := gridsight.NewTracker(workers)
	defer tracker.Close()

	sightings, err := tracker.Track(cmd.Context(), w.watchers, w.target, w.occluder(), w.queryOptions()...)
	if err != nil {
		return fmt.Errorf("track: %w", err)
	}

	if root.format == "json" {
		err = writeJSON(cmd, scenarioReport(w, sightings, trace))
	} else {
		err = printScenario(cmd, root.styles(cmd), w, sightings, trace)
	}

	rc := gridsight.BoundaryCacheStats()
	gridsight.Logger().Debug("gridsight: boundary cache",
		"rings", rc.Rings,
		"hits", rc.Hits,
		"misses", rc.Misses,
		"hit_rate", rc.HitRate)
	return err
}

type jsonSighting struct {
	Watcher       string   `json:"watcher"`
	Position      jsonCell `json:"position"`
	RangeSquared  int      `json:"range_squared"`
	BoundaryCells int      `json:"boundary_cells"`
	jsonVisibility
}

type jsonScenario struct {
	Target       jsonCell       `json:"target"`
	GridOccupied int            `json:"grid_occupied"`
	Obstacles    int            `json:"obstacles"`
	Visible      int            `json:"visible"`
	Sightings    []jsonSighting `json:"sightings"`
}

func boundaryCount(w gridsight.Watcher) int {
	b, err := w.Range().Boundary()
	if err != nil {
		return 0
	}
	return len(b.Unique())
}

func scenarioReport(w *world, sightings []gridsight.Sighting, trace bool) jsonScenario {
	out := jsonScenario{
		Target:       toJSONCell(w.target),
		GridOccupied: w.grid.Count(),
		Obstacles:    w.obstacles.Len(),
		Sightings:    make([]jsonSighting, 0, len(sightings)),
	}
	for _, s := range sightings {
		if s.Visibility.Clear() {
			out.Visible++
		}
		out.Sightings = append(out.Sightings, jsonSighting{
			Watcher:        s.Watcher.Name,
			Position:       toJSONCell(s.Watcher.Position),
			RangeSquared:   s.Watcher.RangeSquared,
			BoundaryCells:  boundaryCount(s.Watcher),
			jsonVisibility: toJSONVisibility(s.Visibility, trace),
		})
	}
	return out
}

func printScenario(cmd *cobra.Command, s *styles, w *world, sightings []gridsight.Sighting, trace bool) error {
	out := cmd.OutOrStdout()

	visible := 0
	for _, st := range sightings {
		if st.Visibility.Clear() {
			visible++
		}
	}

	fmt.Fprintf(out, "%s target %s, %s occupied grid cells, %s obstacles\n", s.heading.Sprint("Scenario"),
		s.cell.Sprint(w.target), printer.Sprintf("%d", w.grid.Count()), printer.Sprintf("%d", w.obstacles.Len()))
	for _, st := range sightings {
		fmt.Fprintf(out, "  %-12s %v range² %s (%s boundary cells): %s\n",
			st.Watcher.Name, st.Watcher.Position,
			printer.Sprintf("%d", st.Watcher.RangeSquared),
			printer.Sprintf("%d", boundaryCount(st.Watcher)),
			s.verdict(st.Visibility))
		if trace && st.Visibility.InRange {
			fmt.Fprintf(out, "    trace: %s\n", s.cells(st.Visibility.Trace))
		}
	}
	fmt.Fprintf(out, "%d of %d watchers see the target\n", visible, len(sightings))
	return nil
}
