package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gogpu/gridsight"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// styles holds color formatters for human output.
type styles struct {
	heading    *color.Color
	cell       *color.Color
	clear      *color.Color
	blocked    *color.Color
	outOfRange *color.Color
}

// newStyles creates color formatters; enabled=false strips all escapes.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:    color.New(color.Bold),
		cell:       color.New(color.FgHiBlue),
		clear:      color.New(color.Bold, color.FgHiGreen),
		blocked:    color.New(color.Bold, color.FgHiRed),
		outOfRange: color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{s.heading, s.cell, s.clear, s.blocked, s.outOfRange} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// colorEnabled resolves the --color flag. "auto" colors only a terminal
// and honours NO_COLOR.
func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (o *rootOptions) styles(cmd *cobra.Command) *styles {
	return newStyles(colorEnabled(o.color, cmd.OutOrStdout()))
}

// verdict renders a visibility result as a single colored word.
func (s *styles) verdict(v gridsight.Visibility) string {
	switch {
	case !v.InRange:
		return s.outOfRange.Sprint("OUT OF RANGE")
	case v.Obstructed:
		return s.blocked.Sprint("BLOCKED") + " at " + s.cell.Sprint(v.Blocker)
	default:
		return s.clear.Sprint("CLEAR")
	}
}

func (s *styles) cells(cells []gridsight.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = s.cell.Sprint(c)
	}
	return strings.Join(parts, " ")
}

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

// jsonCell is a cell as a two-element [x, y] array.
type jsonCell [2]int

func toJSONCell(c gridsight.Cell) jsonCell {
	return jsonCell{c.X, c.Y}
}

func toJSONCells(cells []gridsight.Cell) []jsonCell {
	out := make([]jsonCell, len(cells))
	for i, c := range cells {
		out[i] = toJSONCell(c)
	}
	return out
}

// jsonVisibility is the JSON form of a visibility verdict.
type jsonVisibility struct {
	InRange    bool       `json:"in_range"`
	Obstructed bool       `json:"obstructed"`
	Clear      bool       `json:"clear"`
	Blocker    *jsonCell  `json:"blocker,omitempty"`
	Trace      []jsonCell `json:"trace,omitempty"`
}

func toJSONVisibility(v gridsight.Visibility, withTrace bool) jsonVisibility {
	out := jsonVisibility{
		InRange:    v.InRange,
		Obstructed: v.Obstructed,
		Clear:      v.Clear(),
	}
	if v.Obstructed {
		b := toJSONCell(v.Blocker)
		out.Blocker = &b
	}
	if withTrace && v.Trace != nil {
		out.Trace = toJSONCells(v.Trace)
	}
	return out
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseInts parses every argument as an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseCell parses "x,y".
func parseCell(s string) (gridsight.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridsight.Cell{}, fmt.Errorf("invalid cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridsight.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridsight.Cell{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return gridsight.C(x, y), nil
}
