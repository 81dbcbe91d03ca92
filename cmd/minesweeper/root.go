package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vancomm/minesweeper/internal/mines"
)

type flags struct {
	width, height, mines int
	seed                 uint64
	game                 string
	tui                  bool
}

// params resolves the board flags. --game, when given, wins over the
// individual dimensions.
func (f flags) params() (mines.GameParams, error) {
	if f.game != "" {
		p, err := mines.ParseGameParams(f.game)
		if err != nil {
			return mines.GameParams{}, fmt.Errorf("--game: %w", err)
		}
		return *p, nil
	}
	p := mines.GameParams{Width: f.width, Height: f.height, MineCount: f.mines}
	if err := p.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return p, nil
}

func newRootCmd(run func(cmd *cobra.Command, f flags) error) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Minesweeper in the terminal",
		Long: `minesweeper plays Minesweeper on a text console or, with --tui, in an
interactive full-screen view with mouse support.

Environment:
  MINESWEEPER_AUTODEMO   play a short scripted demo and exit
  MINESWEEPER_LOG_FILE   write logs to a rotating file instead of stderr
  MINESWEEPER_LOG_LEVEL  log level (default info)
  DEVELOPMENT            log at debug level`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	d := mines.Beginner
	rootCmd.Flags().IntVar(&f.width, "width", d.Width, "board width")
	rootCmd.Flags().IntVar(&f.height, "height", d.Height, "board height")
	rootCmd.Flags().IntVar(&f.mines, "mines", d.MineCount, "number of mines")
	rootCmd.Flags().Uint64Var(&f.seed, "seed", 0, "board seed, 0 for a random one")
	rootCmd.Flags().StringVarP(&f.game, "game", "g", "", `board as WxH:M or a preset: beginner, intermediate, expert`)
	rootCmd.Flags().BoolVar(&f.tui, "tui", false, "run the interactive full-screen view")

	return rootCmd
}
