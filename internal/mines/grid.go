package mines

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Covered CellStatus = -2
	Flagged CellStatus = -1
	// 0-8 for revealed cells with given number of mined neighbours
	Mine CellStatus = 65
)

func (s CellStatus) String() string {
	switch s {
	case Covered:
		return "."
	case Flagged:
		return "F"
	case Mine:
		return "*"
	case 0:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// Cell is a read-only copy of one board position.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int
}

func (c Cell) Status() CellStatus {
	switch {
	case c.Revealed && c.Mine:
		return Mine
	case c.Revealed:
		return CellStatus(c.Adjacent)
	case c.Flagged:
		return Flagged
	default:
		return Covered
	}
}

// Grid is a row-major snapshot of a board. Mutating it does not affect the
// board it was taken from.
type Grid struct {
	Width, Height int
	Cells         []Cell
}

func (g Grid) At(x, y int) Cell {
	return g.Cells[y*g.Width+x]
}

// Render writes the grid as text with column and row labels. With showAll,
// covered mines are drawn as well.
func (g Grid) Render(w io.Writer, showAll, oneBased bool) error {
	var b strings.Builder
	label := func(i int) int {
		if oneBased {
			return i + 1
		}
		return i
	}

	b.WriteString("    ")
	for x := range g.Width {
		fmt.Fprintf(&b, "%2d ", label(x))
	}
	b.WriteString("\n   ")
	b.WriteString(strings.Repeat("-", g.Width*3+1))
	b.WriteString("\n")

	for y := range g.Height {
		fmt.Fprintf(&b, "%2d | ", label(y))
		for x := range g.Width {
			c := g.At(x, y)
			s := c.Status()
			if showAll && c.Mine {
				s = Mine
			}
			b.WriteString(s.String() + "  ")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Grid implements [fmt.Stringer]
func (g Grid) String() string {
	var b strings.Builder
	_ = g.Render(&b, false, true)
	return b.String()
}
