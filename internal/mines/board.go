package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type RevealResult uint8

const (
	NoOp RevealResult = iota
	Revealed
	HitMine
	Cleared // last safe cell revealed
)

func (r RevealResult) String() string {
	switch r {
	case NoOp:
		return "no-op"
	case Revealed:
		return "revealed"
	case HitMine:
		return "hit mine"
	case Cleared:
		return "cleared"
	default:
		return fmt.Sprintf("RevealResult(%d)", uint8(r))
	}
}

type cell struct {
	mine, revealed, flagged bool
	adjacent                uint8
}

func (c cell) view() Cell {
	return Cell{
		Mine:     c.mine,
		Revealed: c.revealed,
		Flagged:  c.flagged,
		Adjacent: int(c.adjacent),
	}
}

// Board is a width x height minefield. Mines are placed lazily on the first
// reveal so that the first revealed cell is always safe.
type Board struct {
	width, height int
	mineCount     int
	cells         []cell

	minesPlaced   bool
	remainingSafe int
	dead, won     bool

	rng *XorShift
}

// NewBoard allocates a covered board. The board takes ownership of rng; a nil
// rng is replaced with one seeded by [FallbackSeed].
func NewBoard(width, height, mineCount int, rng *XorShift) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf(
			"%w (width = %d, height = %d)", ErrInvalidDimensions, width, height,
		)
	}
	total := width * height
	if mineCount < 0 || mineCount >= total {
		return nil, fmt.Errorf(
			"%w (mine_count = %d, cells = %d)", ErrTooManyMines, mineCount, total,
		)
	}
	if rng == nil {
		rng = NewXorShift(0)
	}
	return &Board{
		width:         width,
		height:        height,
		mineCount:     mineCount,
		cells:         make([]cell, total),
		remainingSafe: total - mineCount,
		rng:           rng,
	}, nil
}

func (b *Board) Width() int         { return b.width }
func (b *Board) Height() int        { return b.height }
func (b *Board) MineCount() int     { return b.mineCount }
func (b *Board) MinesPlaced() bool  { return b.minesPlaced }
func (b *Board) RemainingSafe() int { return b.remainingSafe }
func (b *Board) Dead() bool         { return b.dead }
func (b *Board) Won() bool          { return b.won }
func (b *Board) Over() bool         { return b.dead || b.won }

// RemainingMines is the mine count minus the number of flags. It goes
// negative when the player places more flags than there are mines.
func (b *Board) RemainingMines() int {
	flags := 0
	for _, c := range b.cells {
		if c.flagged {
			flags++
		}
	}
	return b.mineCount - flags
}

func (b *Board) PointInBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) (int, error) {
	if !b.PointInBounds(x, y) {
		return 0, fmt.Errorf(
			"%w (x = %d, y = %d, width = %d, height = %d)",
			ErrOutOfBounds, x, y, b.width, b.height,
		)
	}
	return y*b.width + x, nil
}

func (b *Board) Cell(x, y int) (Cell, error) {
	i, err := b.index(x, y)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i].view(), nil
}

func (b *Board) Snapshot() Grid {
	cells := make([]Cell, len(b.cells))
	for i, c := range b.cells {
		cells[i] = c.view()
	}
	return Grid{Width: b.width, Height: b.height, Cells: cells}
}

// Reveal opens the cell at x, y. Flagged and already revealed cells are left
// alone, as is everything once the board is dead or won.
func (b *Board) Reveal(x, y int) (RevealResult, error) {
	i, err := b.index(x, y)
	if err != nil {
		return NoOp, err
	}
	if b.Over() || b.cells[i].revealed || b.cells[i].flagged {
		return NoOp, nil
	}
	if !b.minesPlaced {
		b.placeMines(x, y)
	}
	return b.open(i), nil
}

// ToggleFlag flips the flag on a covered cell and reports whether anything
// changed.
func (b *Board) ToggleFlag(x, y int) (bool, error) {
	i, err := b.index(x, y)
	if err != nil {
		return false, err
	}
	if b.Over() || b.cells[i].revealed {
		return false, nil
	}
	b.cells[i].flagged = !b.cells[i].flagged
	return true, nil
}

// Chord opens every covered, unflagged neighbour of a revealed number once
// the player has flagged as many neighbours as the number says.
func (b *Board) Chord(x, y int) (RevealResult, error) {
	i, err := b.index(x, y)
	if err != nil {
		return NoOp, err
	}
	c := b.cells[i]
	if b.Over() || !c.revealed || c.mine || c.adjacent == 0 {
		return NoOp, nil
	}

	flags := 0
	covered := make([]int, 0, 8)
	for j := range neighbours(b.width, b.height, i) {
		if b.cells[j].flagged {
			flags++
		} else if !b.cells[j].revealed {
			covered = append(covered, j)
		}
	}
	if flags != int(c.adjacent) || len(covered) == 0 {
		return NoOp, nil
	}

	for _, j := range covered {
		if b.cells[j].revealed {
			continue // opened by an earlier flood
		}
		if res := b.open(j); res == HitMine || res == Cleared {
			return res, nil
		}
	}
	return Revealed, nil
}

func (b *Board) open(i int) RevealResult {
	if b.cells[i].mine {
		b.explode(i)
		return HitMine
	}
	n := b.floodReveal(i)
	Log.WithFields(logrus.Fields{
		"x": i % b.width, "y": i / b.width, "opened": n,
		"remaining": b.remainingSafe,
	}).Debug("revealed")
	if b.remainingSafe == 0 {
		b.won = true
		Log.Debug("board cleared")
		return Cleared
	}
	return Revealed
}

/*
 * Opens the cell at i and, whenever an opened cell has no mined
 * neighbours, every covered unflagged neighbour as well. Cells are
 * marked revealed as they are pushed, so each one enters the stack at
 * most once.
 */
func (b *Board) floodReveal(i int) (opened int) {
	stack := []int{i}
	b.cells[i].revealed = true
	b.remainingSafe--
	opened++

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.cells[i].adjacent != 0 {
			continue
		}
		for j := range neighbours(b.width, b.height, i) {
			c := &b.cells[j]
			if c.revealed || c.flagged || c.mine {
				continue
			}
			c.revealed = true
			b.remainingSafe--
			opened++
			stack = append(stack, j)
		}
	}
	return
}

// explode ends the game and uncovers every mine. Flags on mines are
// cleared; flags on safe cells stay.
func (b *Board) explode(i int) {
	b.dead = true
	for j := range b.cells {
		if b.cells[j].mine {
			b.cells[j].revealed = true
			b.cells[j].flagged = false
		}
	}
	Log.WithFields(logrus.Fields{
		"x": i % b.width, "y": i / b.width,
	}).Debug("hit a mine")
}

/*
 * Places mineCount mines, none of which is at sx,sy. When the board
 * is roomy enough, the neighbours of sx,sy are kept clear too, so the
 * first click opens an area.
 */
func (b *Board) placeMines(sx, sy int) {
	total := b.width * b.height
	start := sy*b.width + sx

	candidates := make([]int, 0, total)
	for y := range b.height {
		for x := range b.width {
			if absDiff(sy, y) > 1 || absDiff(sx, x) > 1 {
				candidates = append(candidates, y*b.width+x)
			}
		}
	}
	if len(candidates) < b.mineCount {
		candidates = candidates[:0]
		for i := range total {
			if i != start {
				candidates = append(candidates, i)
			}
		}
	}

	/*
	 * Pick mineCount off the list at random, moving the last live
	 * candidate into each picked slot.
	 */
	k := len(candidates)
	for range b.mineCount {
		j := b.rng.IntN(k)
		b.cells[candidates[j]].mine = true
		k--
		candidates[j] = candidates[k]
	}

	b.computeAdjacency()
	b.minesPlaced = true

	Log.WithFields(logrus.Fields{
		"width": b.width, "height": b.height, "mines": b.mineCount,
		"sx": sx, "sy": sy,
	}).Debug("mines placed")
}

func (b *Board) computeAdjacency() {
	for i := range b.cells {
		if b.cells[i].mine {
			continue
		}
		var n uint8
		for j := range neighbours(b.width, b.height, i) {
			if b.cells[j].mine {
				n++
			}
		}
		b.cells[i].adjacent = n
	}
}
