package main

import (
	"fmt"
	"strconv"

	"github.com/gogpu/gridsight"
	"github.com/spf13/cobra"
)

func newCircleCmd(root *rootOptions) *cobra.Command {
	var (
		unique bool
		spokes bool
	)

	cmd := &cobra.Command{
		Use:   "circle CX CY R",
		Short: "Print the boundary cells of a circle",
		Long: `Print the cells the circle rasterizer emits for a radius around a center.

Cells on the axes and diagonals are emitted more than once; --unique drops
the repeats. The boundary only marks a range for display, it is not the
in-range test (see "sight").`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args[:2])
			if err != nil {
				return err
			}
			r, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid radius %q: %w", args[2], err)
			}
			center := gridsight.C(v[0], v[1])

			cells, err := gridsight.BoundaryCells(center, r)
			if err != nil {
				return err
			}
			emitted := len(cells)
			if unique {
				cells = cells.Unique()
			}

			var rays []gridsight.Path
			if spokes {
				if rays, err = gridsight.Spokes(center, r); err != nil {
					return err
				}
			}

			if root.format == "json" {
				out := struct {
					Center  jsonCell     `json:"center"`
					Radius  float64      `json:"radius"`
					Emitted int          `json:"emitted"`
					Cells   []jsonCell   `json:"cells"`
					Spokes  [][]jsonCell `json:"spokes,omitempty"`
				}{
					Center:  toJSONCell(center),
					Radius:  r,
					Emitted: emitted,
					Cells:   toJSONCells(cells),
				}
				for _, p := range rays {
					out.Spokes = append(out.Spokes, toJSONCells(p))
				}
				return writeJSON(cmd, out)
			}

			s := root.styles(cmd)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %v r=%g (%s emitted, %s shown)\n", s.heading.Sprint("Circle"),
				center, r, printer.Sprintf("%d", emitted), printer.Sprintf("%d", len(cells)))
			fmt.Fprintln(w, s.cells(cells))
			for _, p := range rays {
				fmt.Fprintf(w, "  spoke to %v: %s\n", p.End(), s.cells(p))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unique, "unique", false, "Drop repeated cells")
	cmd.Flags().BoolVar(&spokes, "spokes", false, "Also print the line from the center to every boundary cell")

	return cmd
}
