package main

import (
	"fmt"

	"github.com/gogpu/gridsight"
	"github.com/spf13/cobra"
)

func newLineCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "line X1 Y1 X2 Y2",
		Short: "Print the cells of the line between two cells",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			path := gridsight.LineXY(v[0], v[1], v[2], v[3])

			if root.format == "json" {
				return writeJSON(cmd, struct {
					From  jsonCell   `json:"from"`
					To    jsonCell   `json:"to"`
					Cells []jsonCell `json:"cells"`
				}{
					From:  toJSONCell(path.Start()),
					To:    toJSONCell(path.End()),
					Cells: toJSONCells(path),
				})
			}

			s := root.styles(cmd)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %v -> %v (%s cells)\n", s.heading.Sprint("Line"),
				path.Start(), path.End(), printer.Sprintf("%d", path.Len()))
			fmt.Fprintln(out, s.cells(path))
			return nil
		},
	}
}
