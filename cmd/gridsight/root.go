package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gridsight"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	verbose bool
	format  string
	color   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gridsight",
		Short: "Grid line, circle and line-of-sight queries",
		Long: `gridsight rasterizes lines and circles on an integer grid and decides
whether watchers can see a target across occupied cells.

Coordinates are integers and may be negative. Put "--" before the first
negative positional argument so it is not read as a flag:

  gridsight line -- -3 2 4 -1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "human", "Output format: human, json")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")

	cmd.AddCommand(newLineCmd(opts))
	cmd.AddCommand(newCircleCmd(opts))
	cmd.AddCommand(newSightCmd(opts))
	cmd.AddCommand(newScenarioCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	switch o.format {
	case "human", "json":
	default:
		return fmt.Errorf("unknown output format: %s", o.format)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode: %s", o.color)
	}

	if o.verbose {
		gridsight.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}
