package mines

import (
	"fmt"
	"hash/maphash"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// NewSeed returns a fresh non-zero seed from the process-random maphash seed.
func NewSeed() uint64 {
	s := new(maphash.Hash).Sum64()
	if s == 0 {
		return FallbackSeed
	}
	return s
}

// GameState owns one board for the lifetime of a game. All mutation goes
// through its methods; callers only ever see copies of cell state.
type GameState struct {
	params GameParams
	seed   uint64
	board  *Board
	moves  int
}

// NewGame validates params and builds a covered board. A zero seed draws a
// fresh one with [NewSeed]; [GameState.Seed] reports the seed in use.
func NewGame(params GameParams, seed uint64) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &GameState{params: params}
	if err := g.reset(seed); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GameState) reset(seed uint64) error {
	if seed == 0 {
		seed = NewSeed()
	}
	w, h, mc := g.params.Unpack()
	board, err := NewBoard(w, h, mc, NewXorShift(seed))
	if err != nil {
		return err
	}
	g.board = board
	g.seed = seed
	g.moves = 0
	Log.WithFields(logrus.Fields{
		"params": g.params.String(), "seed": seed,
	}).Debug("new board")
	return nil
}

// Restart throws the current board away and starts over with the same
// params, from any outcome.
func (g *GameState) Restart(seed uint64) error {
	return g.reset(seed)
}

func (g *GameState) Outcome() Outcome {
	switch {
	case g.board.Dead():
		return Lost
	case g.board.Won():
		return Won
	default:
		return InProgress
	}
}

func (g *GameState) Reveal(x, y int) (RevealResult, error) {
	if g.Outcome().Terminal() {
		return NoOp, g.checkBounds(x, y)
	}
	res, err := g.board.Reveal(x, y)
	g.record(res != NoOp, "reveal", x, y)
	return res, err
}

func (g *GameState) ToggleFlag(x, y int) (bool, error) {
	if g.Outcome().Terminal() {
		return false, g.checkBounds(x, y)
	}
	ok, err := g.board.ToggleFlag(x, y)
	g.record(ok, "flag", x, y)
	return ok, err
}

func (g *GameState) Chord(x, y int) (RevealResult, error) {
	if g.Outcome().Terminal() {
		return NoOp, g.checkBounds(x, y)
	}
	res, err := g.board.Chord(x, y)
	g.record(res != NoOp, "chord", x, y)
	return res, err
}

func (g *GameState) checkBounds(x, y int) error {
	_, err := g.board.index(x, y)
	return err
}

func (g *GameState) record(changed bool, op string, x, y int) {
	if !changed {
		return
	}
	g.moves++
	if o := g.Outcome(); o.Terminal() {
		Log.WithFields(logrus.Fields{
			"op": op, "x": x, "y": y, "moves": g.moves, "seed": g.seed,
		}).Info("game ", o)
	}
}

func (g *GameState) Params() GameParams  { return g.params }
func (g *GameState) Seed() uint64        { return g.seed }
func (g *GameState) Moves() int          { return g.moves }
func (g *GameState) Width() int          { return g.board.Width() }
func (g *GameState) Height() int         { return g.board.Height() }
func (g *GameState) MinesPlaced() bool   { return g.board.MinesPlaced() }
func (g *GameState) RemainingMines() int { return g.board.RemainingMines() }
func (g *GameState) Snapshot() Grid      { return g.board.Snapshot() }

func (g *GameState) Cell(x, y int) (Cell, error) {
	return g.board.Cell(x, y)
}
