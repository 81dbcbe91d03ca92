package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

const helpText = `Commands:
  r x y       reveal the cell at column x, row y
  f x y       toggle a flag at x, y
  c x y       reveal the neighbours of a satisfied number at x, y
  n [seed=N]  start a new game, optionally with a given seed
  q           quit
  h           show this help
`

// Session plays one game over a line-oriented text stream.
type Session struct {
	game *mines.GameState
	in   *bufio.Scanner
	out  io.Writer
	log  logrus.FieldLogger
}

func NewSession(
	game *mines.GameState, in io.Reader, out io.Writer, log logrus.FieldLogger,
) *Session {
	return &Session{
		game: game,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
	}
}

type readResult struct {
	line string
	err  error
	eof  bool
}

// Run prints the board and executes commands until the player quits, the
// game ends, the input runs dry or ctx is cancelled. Only the last of these
// is reported as an error, together with read failures.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := s.readLines(ctx)
	s.printBanner()

	for {
		s.printf("\n%s", s.game.Snapshot())

		switch s.game.Outcome() {
		case mines.Lost:
			s.printf("Boom! You hit a mine. Game over.\n\n")
			s.printFinal()
			return nil
		case mines.Won:
			s.printf("You won! Cleared in %d moves.\n\n", s.game.Moves())
			s.printFinal()
			return nil
		}

		s.printf("Mines left: %d\n> ", s.game.RemainingMines())
		var (
			r  readResult
			ok bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r, ok = <-lines:
		}
		if !ok {
			return ctx.Err()
		}
		if r.eof {
			return r.err
		}

		cmd, err := ParseCommand(r.line)
		switch {
		case errors.Is(err, ErrEmptyCommand):
			continue
		case errors.Is(err, ErrUnknownCommand):
			s.printf("%s. Type 'h' for help.\n", err)
			continue
		case err != nil:
			s.printf("%s\n", err)
			continue
		}
		if quit := s.execute(cmd); quit {
			return nil
		}
	}
}

func (s *Session) execute(cmd Command) (quit bool) {
	s.log.WithFields(logrus.Fields{
		"cmd": cmd.Kind.String(), "x": cmd.X, "y": cmd.Y,
	}).Debug("console command")

	switch cmd.Kind {
	case Quit:
		return true
	case Help:
		s.printf("%s", helpText)
	case Reveal:
		_, err := s.game.Reveal(cmd.X, cmd.Y)
		s.reportMoveError(err)
	case Chord:
		_, err := s.game.Chord(cmd.X, cmd.Y)
		s.reportMoveError(err)
	case Flag:
		ok, err := s.game.ToggleFlag(cmd.X, cmd.Y)
		if err != nil {
			s.reportMoveError(err)
		} else if !ok {
			s.printf("Cannot flag a revealed cell\n")
		}
	case NewGame:
		if err := s.game.Restart(cmd.Options.Seed); err != nil {
			s.log.Error("unable to restart: ", err)
			s.printf("Unable to start a new game: %s\n", err)
			return false
		}
		s.printf("New game (seed %d)\n", s.game.Seed())
	}
	return false
}

func (s *Session) reportMoveError(err error) {
	if errors.Is(err, mines.ErrOutOfBounds) {
		w, h := s.game.Width(), s.game.Height()
		s.printf("Out of bounds, the board is %d columns by %d rows\n", w, h)
	} else if err != nil {
		s.log.Error(err)
		s.printf("%s\n", err)
	}
}

/*
 * Scanner reads block, so they run on their own goroutine and are handed
 * over one line at a time. The goroutine exits once ctx is done, although a
 * read that is already blocked only returns when the input does.
 */
func (s *Session) readLines(ctx context.Context) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		defer close(lines)
		for s.in.Scan() {
			select {
			case lines <- readResult{line: s.in.Text()}:
			case <-ctx.Done():
				return
			}
		}
		select {
		case lines <- readResult{eof: true, err: s.in.Err()}:
		case <-ctx.Done():
		}
	}()
	return lines
}

func (s *Session) printBanner() {
	p := s.game.Params()
	s.printf(
		"Minesweeper %dx%d with %d mines (seed %d)\n",
		p.Width, p.Height, p.MineCount, s.game.Seed(),
	)
	s.printf("Coordinates are 1-based. Type 'h' for help.\n%s", helpText)
}

func (s *Session) printFinal() {
	s.printf("Final board (mines shown):\n")
	if err := s.game.Snapshot().Render(s.out, true, true); err != nil {
		s.log.Error(err)
	}
}

func (s *Session) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(s.out, format, a...); err != nil {
		s.log.Debug("write failed: ", err)
	}
}
