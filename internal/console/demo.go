package console

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// DemoScript returns console input that plays a few moves on a board of the
// given size and quits: reveal the corner, reveal one cell diagonally in,
// flag the centre.
func DemoScript(params mines.GameParams) string {
	w, h := params.Width, params.Height
	var b strings.Builder
	fmt.Fprintf(&b, "r 1 1\n")
	fmt.Fprintf(&b, "r %d %d\n", min(2, w), min(2, h))
	fmt.Fprintf(&b, "f %d %d\n", w/2+1, h/2+1)
	fmt.Fprintf(&b, "q\n")
	return b.String()
}
