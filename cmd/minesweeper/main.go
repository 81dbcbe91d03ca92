package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/tui"
)

var log = logrus.New()

func setupLogging(env *config.Env, tuiMode bool) error {
	l, err := config.NewLogger(*env)
	if err != nil {
		return err
	}
	if tuiMode && env.LogFile == "" {
		l.SetOutput(io.Discard)
	}
	log = l
	mines.Log = l
	return nil
}

func play(ctx context.Context, env *config.Env, f flags, game *mines.GameState) error {
	if f.tui {
		return tui.Run(ctx, game, tui.Options{
			RestartSeed: f.seed,
			AutoDemo:    env.AutoDemo,
			Log:         log,
		})
	}

	var in io.Reader = os.Stdin
	if env.AutoDemo {
		in = strings.NewReader(console.DemoScript(game.Params()))
	}
	return console.NewSession(game, in, os.Stdout, log).Run(ctx)
}

func run(cmd *cobra.Command, f flags) error {
	mainCtx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	env, err := config.Load()
	if err != nil {
		return err
	}
	if err := setupLogging(env, f.tui); err != nil {
		return err
	}
	log.WithFields(env.Fields()).Debug("config")

	params, err := f.params()
	if err != nil {
		return err
	}
	game, err := mines.NewGame(params, f.seed)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"params": params.String(), "seed": game.Seed(), "tui": f.tui,
	}).Info("starting up")

	playCtx, done := context.WithCancel(mainCtx)
	g, gCtx := errgroup.WithContext(playCtx)
	g.Go(func() error {
		defer done()
		return play(gCtx, env, f, game)
	})
	g.Go(func() error {
		<-gCtx.Done()
		if mainCtx.Err() != nil {
			log.Info("interrupted")
		}
		return nil
	})

	err = g.Wait()
	log.WithFields(logrus.Fields{
		"outcome": game.Outcome().String(), "moves": game.Moves(),
	}).Info("exiting")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		os.Exit(1)
	}
}
