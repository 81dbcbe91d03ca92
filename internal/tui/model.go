package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	tickRate = 250 * time.Millisecond

	// Screen position of the first cell: title, status and a blank line
	// above the board, then the top border. Every cell is a glyph and a
	// space wide.
	boardTop  = 4
	boardLeft = 1
	cellWidth = 2
)

type point struct {
	x, y int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Options struct {
	// Seed passed to [mines.GameState.Restart] on a new game; zero draws a
	// fresh one every time.
	RestartSeed uint64
	// AutoDemo plays a few scripted moves, one per tick, and quits.
	AutoDemo bool
	Log      logrus.FieldLogger
}

type Model struct {
	game     *mines.GameState
	keys     KeyMap
	help     help.Model
	cursor   point
	opts     Options
	demoStep int
}

func NewModel(game *mines.GameState, opts Options) Model {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return Model{
		game: game,
		keys: Keys,
		help: help.New(),
		opts: opts,
	}
}

func (m Model) Init() tea.Cmd {
	if m.opts.AutoDemo {
		return tick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tickMsg:
		if !m.opts.AutoDemo {
			return m, nil
		}
		if done := m.demo(); done {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, h := m.game.Width(), m.game.Height()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor.y = max(m.cursor.y-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor.y = min(m.cursor.y+1, h-1)

	case key.Matches(msg, m.keys.Left):
		m.cursor.x = max(m.cursor.x-1, 0)

	case key.Matches(msg, m.keys.Right):
		m.cursor.x = min(m.cursor.x+1, w-1)

	case key.Matches(msg, m.keys.Reveal):
		m.reveal(m.cursor)

	case key.Matches(msg, m.keys.Flag):
		m.flag(m.cursor)

	case key.Matches(msg, m.keys.Chord):
		m.chord(m.cursor)

	case key.Matches(msg, m.keys.New):
		m.restart()
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	p, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.cursor = p
		m.reveal(p)
	case tea.MouseButtonRight:
		m.cursor = p
		m.flag(p)
	case tea.MouseButtonMiddle:
		m.cursor = p
		m.chord(p)
	}
}

// cellAt maps a terminal position to the board cell drawn there.
func (m Model) cellAt(x, y int) (point, bool) {
	if x < boardLeft || y < boardTop {
		return point{}, false
	}
	p := point{x: (x - boardLeft) / cellWidth, y: y - boardTop}
	if !m.game.Params().PointInBounds(p.x, p.y) {
		return point{}, false
	}
	return p, true
}

func (m Model) reveal(p point) {
	if _, err := m.game.Reveal(p.x, p.y); err != nil {
		m.opts.Log.Error(err)
	}
}

func (m Model) flag(p point) {
	if _, err := m.game.ToggleFlag(p.x, p.y); err != nil {
		m.opts.Log.Error(err)
	}
}

func (m Model) chord(p point) {
	if _, err := m.game.Chord(p.x, p.y); err != nil {
		m.opts.Log.Error(err)
	}
}

func (m *Model) restart() {
	if err := m.game.Restart(m.opts.RestartSeed); err != nil {
		m.opts.Log.Error("unable to restart: ", err)
		return
	}
	m.opts.Log.WithField("seed", m.game.Seed()).Debug("new game")
}

// demo runs the next scripted step and reports whether the script is over.
func (m *Model) demo() (done bool) {
	w, h := m.game.Width(), m.game.Height()
	switch m.demoStep {
	case 0:
		m.reveal(point{0, 0})
		m.cursor = point{min(1, w-1), min(1, h-1)}
	case 1:
		m.reveal(m.cursor)
	case 2:
		m.flag(point{w / 2, h / 2})
	case 3:
		// pause on the last frame
	default:
		return true
	}
	m.demoStep++
	return false
}

func (m Model) status() string {
	switch m.game.Outcome() {
	case mines.Lost:
		return lostStyle.Render("Boom! You hit a mine. q to quit, n to restart")
	case mines.Won:
		return wonStyle.Render("You won! q to quit, n to restart")
	default:
		return statusStyle.Render(
			"Mouse: left reveal, right flag, middle chord. Arrows/hjkl move.",
		)
	}
}

func (m Model) board() string {
	grid := m.game.Snapshot()
	rows := make([]string, grid.Height)
	for y := range grid.Height {
		var b strings.Builder
		for x := range grid.Width {
			c := grid.At(x, y)
			glyph, style := cellGlyph(c), cellStyle(c)
			if m.cursor == (point{x, y}) {
				if glyph == " " {
					glyph = coveredGlyph
				}
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(glyph))
			b.WriteString(" ")
		}
		rows[y] = b.String()
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) View() string {
	p := m.game.Params()
	footer := fmt.Sprintf(
		"Size: %dx%d  Mines: %d  Left: %d  Seed: %d",
		p.Width, p.Height, p.MineCount, m.game.RemainingMines(), m.game.Seed(),
	)

	var s strings.Builder
	s.WriteString(titleStyle.Render("Minesweeper") + "\n")
	s.WriteString(m.status() + "\n\n")
	s.WriteString(m.board() + "\n")
	s.WriteString(footerStyle.Render(footer) + "\n")
	s.WriteString(m.help.View(m.keys) + "\n")
	return s.String()
}
