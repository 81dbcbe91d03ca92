package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf(
			"%w (width = %d, height = %d)", ErrInvalidDimensions, p.Width, p.Height,
		)
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return fmt.Errorf(
			"%w (mine_count = %d, cells = %d)",
			ErrTooManyMines, p.MineCount, p.Width*p.Height,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// GameParams implements [fmt.Stringer]; the result can be read back with
// [ParseGameParams].
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d:%d", p.Width, p.Height, p.MineCount)
}

// ParseGameParams reads a "WxH:M" descriptor or one of the preset names
// "beginner", "intermediate" and "expert".
func ParseGameParams(s string) (*GameParams, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		p := Beginner
		return &p, nil
	case "intermediate":
		p := Intermediate
		return &p, nil
	case "expert":
		p := Expert
		return &p, nil
	}

	p := &GameParams{}
	ss := strings.NewReplacer("x", " ", ":", " ").Replace(strings.ToLower(s))
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`%w: "%s" is not WxH:M (n = %d, err = %v)`, ErrInvalidParams, s, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
