package mines

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// newTestBoard builds a board with mines at the given x,y positions,
// skipping random placement.
func newTestBoard(t *testing.T, width, height int, mines ...[2]int) *Board {
	t.Helper()
	b, err := NewBoard(width, height, len(mines), NewXorShift(1))
	require.NoError(t, err)
	for _, m := range mines {
		b.cells[m[1]*width+m[0]].mine = true
	}
	b.computeAdjacency()
	b.minesPlaced = true
	return b
}

func countMines(g Grid) (n int) {
	for _, c := range g.Cells {
		if c.Mine {
			n++
		}
	}
	return
}

func countRevealed(g Grid) (n int) {
	for _, c := range g.Cells {
		if c.Revealed {
			n++
		}
	}
	return
}

func bruteAdjacent(g Grid, x, y int) (n int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) &&
				0 <= xx && xx < g.Width && 0 <= yy && yy < g.Height &&
				g.At(xx, yy).Mine {
				n++
			}
		}
	}
	return
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, mineCount int
		err                      error
	}{
		{"zero width", 0, 5, 0, ErrInvalidDimensions},
		{"zero height", 5, 0, 0, ErrInvalidDimensions},
		{"negative width", -1, 5, 0, ErrInvalidDimensions},
		{"full of mines", 3, 3, 9, ErrTooManyMines},
		{"more mines than cells", 3, 3, 20, ErrTooManyMines},
		{"negative mines", 3, 3, -1, ErrTooManyMines},
		{"single cell", 1, 1, 0, nil},
		{"one safe cell", 3, 3, 8, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(test.width, test.height, test.mineCount, nil)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.width*test.height-test.mineCount, b.RemainingSafe())
		})
	}
}

func TestNewBoardIsCovered(t *testing.T) {
	b, err := NewBoard(9, 9, 10, NewXorShift(3))
	require.NoError(t, err)

	assert.False(t, b.MinesPlaced())
	g := b.Snapshot()
	require.Len(t, g.Cells, 81)
	for _, c := range g.Cells {
		assert.Equal(t, Cell{}, c)
		assert.Equal(t, Covered, c.Status())
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	tests := []struct {
		name   string
		params GameParams
	}{
		{"9x9(10)", Beginner},
		{"9x9(35)", GameParams{Width: 9, Height: 9, MineCount: 35}},
		{"16x16(40)", Intermediate},
		{"30x16(99)", Expert},
		{"5x5(24)", GameParams{Width: 5, Height: 5, MineCount: 24}},
		{"1x2(1)", GameParams{Width: 1, Height: 2, MineCount: 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			w, h, mc := test.params.Unpack()
			for seed := range uint64(5) {
				for sx := range w {
					for sy := range h {
						b, err := NewBoard(w, h, mc, NewXorShift(seed))
						require.NoError(t, err)

						res, err := b.Reveal(sx, sy)
						require.NoError(t, err)
						require.Contains(t, []RevealResult{Revealed, Cleared}, res)

						g := b.Snapshot()
						c := g.At(sx, sy)
						require.False(t, c.Mine, "mine under first click @ %d:%d", sx, sy)
						require.True(t, c.Revealed)
						require.Equal(t, mc, countMines(g))
						require.False(t, b.Dead())
					}
				}
			}
		})
	}
}

func TestAdjacencyMatchesNeighbourMines(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b, err := NewBoard(8, 8, 10, NewXorShift(seed*999))
		require.NoError(t, err)
		_, err = b.Reveal(0, 0)
		require.NoError(t, err)

		g := b.Snapshot()
		for y := range g.Height {
			for x := range g.Width {
				c := g.At(x, y)
				if c.Mine {
					continue
				}
				require.Equal(t, bruteAdjacent(g, x, y), c.Adjacent,
					"adjacency mismatch @ %d:%d (seed %d)", x, y, seed)
			}
		}
	}
}

func TestFirstRevealClearsNeighbourhood(t *testing.T) {
	b, err := NewBoard(9, 9, 10, NewXorShift(42))
	require.NoError(t, err)
	_, err = b.Reveal(4, 4)
	require.NoError(t, err)

	g := b.Snapshot()
	assert.Equal(t, 0, g.At(4, 4).Adjacent)
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			assert.False(t, g.At(x, y).Mine)
			assert.True(t, g.At(x, y).Revealed)
		}
	}
}

func TestCrowdedBoardKeepsOnlyStartSafe(t *testing.T) {
	b, err := NewBoard(3, 3, 8, NewXorShift(5))
	require.NoError(t, err)

	res, err := b.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Cleared, res)
	assert.True(t, b.Won())

	c, err := b.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Adjacent)
	assert.Equal(t, 8, countMines(b.Snapshot()))
}

func TestSameSeedSameBoard(t *testing.T) {
	layout := func() Grid {
		b, err := NewBoard(9, 9, 10, NewXorShift(42))
		require.NoError(t, err)
		_, err = b.Reveal(5, 5)
		require.NoError(t, err)
		return b.Snapshot()
	}
	first := layout()
	assert.Equal(t, first, layout())
	assert.False(t, first.At(5, 5).Mine)
	assert.Equal(t, 10, countMines(first))
}

func TestFloodFillStopsAtBorder(t *testing.T) {
	// a wall of mines down column 2
	wall := [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	b := newTestBoard(t, 5, 5, wall...)

	res, err := b.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Revealed, res)

	g := b.Snapshot()
	for y := range 5 {
		assert.True(t, g.At(0, y).Revealed, "zero cell 0:%d", y)
		assert.Equal(t, 0, g.At(0, y).Adjacent)
		assert.True(t, g.At(1, y).Revealed, "border cell 1:%d", y)
		assert.NotZero(t, g.At(1, y).Adjacent)
		assert.False(t, g.At(2, y).Revealed)
		assert.False(t, g.At(3, y).Revealed)
		assert.False(t, g.At(4, y).Revealed)
	}
	assert.Equal(t, 10, countRevealed(g))
	assert.Equal(t, 10, b.RemainingSafe())

	res, err = b.Reveal(4, 4)
	require.NoError(t, err)
	assert.Equal(t, Cleared, res)
	assert.True(t, b.Won())
	assert.Equal(t, 0, b.RemainingSafe())
}

func TestFloodFillSkipsFlags(t *testing.T) {
	wall := [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	b := newTestBoard(t, 5, 5, wall...)

	ok, err := b.ToggleFlag(0, 2)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = b.Reveal(0, 0)
	require.NoError(t, err)

	g := b.Snapshot()
	assert.True(t, g.At(0, 1).Revealed)
	assert.True(t, g.At(1, 2).Revealed)
	assert.True(t, g.At(0, 2).Flagged)
	assert.False(t, g.At(0, 2).Revealed)
	for _, p := range [][2]int{{0, 3}, {0, 4}, {1, 3}, {1, 4}} {
		assert.False(t, g.At(p[0], p[1]).Revealed, "%d:%d", p[0], p[1])
	}
}

func TestNumberedCellDoesNotExpand(t *testing.T) {
	b := newTestBoard(t, 3, 3, [2]int{0, 0})

	res, err := b.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Revealed, res)
	assert.Equal(t, 1, countRevealed(b.Snapshot()))
}

func TestRevealFlaggedCellIsRejected(t *testing.T) {
	b, err := NewBoard(9, 9, 10, NewXorShift(42))
	require.NoError(t, err)

	ok, err := b.ToggleFlag(3, 3)
	require.NoError(t, err)
	require.True(t, ok)

	res, err := b.Reveal(3, 3)
	require.NoError(t, err)
	assert.Equal(t, NoOp, res)
	assert.False(t, b.MinesPlaced())

	c, err := b.Cell(3, 3)
	require.NoError(t, err)
	assert.True(t, c.Flagged)
	assert.False(t, c.Revealed)
	assert.Equal(t, Flagged, c.Status())
}

func TestRevealTwiceIsNoOp(t *testing.T) {
	b := newTestBoard(t, 3, 3, [2]int{0, 0})
	_, err := b.Reveal(2, 2)
	require.NoError(t, err)
	before := b.Snapshot()

	res, err := b.Reveal(2, 2)
	require.NoError(t, err)
	assert.Equal(t, NoOp, res)
	assert.Equal(t, before, b.Snapshot())
}

func TestToggleFlag(t *testing.T) {
	b := newTestBoard(t, 3, 3, [2]int{0, 0})

	ok, err := b.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, b.RemainingMines())

	ok, err = b.ToggleFlag(0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, b.RemainingMines())

	_, err = b.Reveal(1, 1)
	require.NoError(t, err)
	ok, err = b.ToggleFlag(1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "flagged a revealed cell")

	c, err := b.Cell(1, 1)
	require.NoError(t, err)
	assert.False(t, c.Flagged)
}

func TestRemainingMinesGoesNegative(t *testing.T) {
	b := newTestBoard(t, 3, 3, [2]int{0, 0})
	for _, p := range [][2]int{{0, 1}, {1, 0}, {2, 2}} {
		_, err := b.ToggleFlag(p[0], p[1])
		require.NoError(t, err)
	}
	assert.Equal(t, -2, b.RemainingMines())
}

func TestOutOfBounds(t *testing.T) {
	b, err := NewBoard(9, 9, 10, nil)
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {100, 100}} {
		_, err := b.Reveal(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.ToggleFlag(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.Chord(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.Cell(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.False(t, b.MinesPlaced())
}

func TestRevealEverySafeCellWins(t *testing.T) {
	b, err := NewBoard(9, 9, 10, NewXorShift(42))
	require.NoError(t, err)
	last, err := b.Reveal(5, 5)
	require.NoError(t, err)

	for y := range 9 {
		for x := range 9 {
			c, err := b.Cell(x, y)
			require.NoError(t, err)
			if c.Mine || c.Revealed {
				continue
			}
			require.False(t, b.Won())
			last, err = b.Reveal(x, y)
			require.NoError(t, err)
			if b.RemainingSafe() > 0 {
				require.Equal(t, Revealed, last)
			}
		}
	}
	assert.Equal(t, Cleared, last)
	assert.True(t, b.Won())
	assert.False(t, b.Dead())
	assert.Equal(t, 71, countRevealed(b.Snapshot()))
}

func TestHitMineRevealsAllMines(t *testing.T) {
	b, err := NewBoard(3, 3, 7, NewXorShift(11))
	require.NoError(t, err)

	res, err := b.Reveal(0, 0)
	require.NoError(t, err)
	require.Equal(t, Revealed, res)

	var mines [][2]int
	var safe [2]int
	g := b.Snapshot()
	for y := range 3 {
		for x := range 3 {
			switch c := g.At(x, y); {
			case c.Mine:
				mines = append(mines, [2]int{x, y})
			case !c.Revealed:
				safe = [2]int{x, y}
			}
		}
	}
	require.Len(t, mines, 7)

	// one flag on a mine, one on the remaining safe cell
	_, err = b.ToggleFlag(mines[0][0], mines[0][1])
	require.NoError(t, err)
	_, err = b.ToggleFlag(safe[0], safe[1])
	require.NoError(t, err)

	res, err = b.Reveal(mines[1][0], mines[1][1])
	require.NoError(t, err)
	assert.Equal(t, HitMine, res)
	assert.True(t, b.Dead())

	g = b.Snapshot()
	for _, m := range mines {
		c := g.At(m[0], m[1])
		assert.True(t, c.Revealed)
		assert.False(t, c.Flagged)
		assert.Equal(t, Mine, c.Status())
	}
	assert.True(t, g.At(safe[0], safe[1]).Flagged)
	assert.False(t, g.At(safe[0], safe[1]).Revealed)

	before := g
	res, err = b.Reveal(safe[0], safe[1])
	require.NoError(t, err)
	assert.Equal(t, NoOp, res)
	ok, err := b.ToggleFlag(safe[0], safe[1])
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, b.Snapshot())
}

func TestChord(t *testing.T) {
	t.Run("opens neighbours when flags match", func(t *testing.T) {
		b := newTestBoard(t, 3, 3, [2]int{0, 0})
		_, err := b.Reveal(1, 1)
		require.NoError(t, err)

		res, err := b.Chord(1, 1)
		require.NoError(t, err)
		assert.Equal(t, NoOp, res, "chord without flags")

		_, err = b.ToggleFlag(0, 0)
		require.NoError(t, err)
		res, err = b.Chord(1, 1)
		require.NoError(t, err)
		assert.Equal(t, Cleared, res)
		assert.True(t, b.Won())
	})

	t.Run("wrong flag hits the mine", func(t *testing.T) {
		b := newTestBoard(t, 3, 3, [2]int{0, 0})
		_, err := b.Reveal(1, 1)
		require.NoError(t, err)
		_, err = b.ToggleFlag(2, 2)
		require.NoError(t, err)

		res, err := b.Chord(1, 1)
		require.NoError(t, err)
		assert.Equal(t, HitMine, res)
		assert.True(t, b.Dead())
	})

	t.Run("covered and empty cells are ignored", func(t *testing.T) {
		wall := [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
		b := newTestBoard(t, 5, 5, wall...)
		_, err := b.Reveal(0, 0)
		require.NoError(t, err)
		before := b.Snapshot()

		res, err := b.Chord(4, 4)
		require.NoError(t, err)
		assert.Equal(t, NoOp, res)

		res, err = b.Chord(0, 0)
		require.NoError(t, err)
		assert.Equal(t, NoOp, res)
		assert.Equal(t, before, b.Snapshot())
	})

	t.Run("partial chord", func(t *testing.T) {
		// mines at 0:0 and 4:0; 5x2 board
		b := newTestBoard(t, 5, 2, [2]int{0, 0}, [2]int{4, 0})
		_, err := b.Reveal(1, 0)
		require.NoError(t, err)
		_, err = b.ToggleFlag(0, 0)
		require.NoError(t, err)

		res, err := b.Chord(1, 0)
		require.NoError(t, err)
		assert.Equal(t, Revealed, res)
		g := b.Snapshot()
		assert.True(t, g.At(0, 1).Revealed)
		assert.True(t, g.At(2, 0).Revealed)
		assert.False(t, g.At(4, 0).Revealed)
		assert.False(t, b.Over())
	})
}
