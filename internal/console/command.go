package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrBadCoordinate  = errors.New("invalid coordinate")
	ErrBadOption      = errors.New("invalid option")
)

type Kind uint8

const (
	Reveal Kind = iota + 1
	Flag
	Chord
	NewGame
	Quit
	Help
)

func (k Kind) String() string {
	switch k {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	case NewGame:
		return "new"
	case Quit:
		return "quit"
	case Help:
		return "help"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Maps command names and aliases to kinds
var commandKinds = map[string]Kind{
	"r": Reveal, "reveal": Reveal,
	"f": Flag, "flag": Flag,
	"c": Chord, "chord": Chord,
	"n": NewGame, "new": NewGame,
	"q": Quit, "quit": Quit, "exit": Quit,
	"h": Help, "help": Help,
}

// Maps kinds to number of positional arguments. NewGame takes key=value
// options instead.
var commandNargs = map[Kind]int{
	Reveal: 2,
	Flag:   2,
	Chord:  2,
	Quit:   0,
	Help:   0,
}

var commandUsage = map[Kind]string{
	Reveal:  "r x y",
	Flag:    "f x y",
	Chord:   "c x y",
	NewGame: "n [seed=N]",
	Quit:    "q",
	Help:    "h",
}

type NewGameOptions struct {
	Seed uint64 `schema:"seed"`
}

// Command is one parsed console line. X and Y are zero-based.
type Command struct {
	Kind    Kind
	X, Y    int
	Options NewGameOptions
}

var dec = schema.NewDecoder()

// ParseCommand reads a line such as "r 3 4" or "n seed=42". Coordinates are
// typed 1-based and come back 0-based; whether they fit the board is left to
// the game.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrEmptyCommand
	}
	kind, ok := commandKinds[strings.ToLower(parts[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w '%s'", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]

	if kind == NewGame {
		opts, err := parseOptions(args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: NewGame, Options: opts}, nil
	}

	if commandNargs[kind] != len(args) {
		return Command{}, fmt.Errorf("%w, usage: %s", ErrArgCount, commandUsage[kind])
	}
	cmd := Command{Kind: kind}
	if len(args) == 2 {
		x, y, err := parseXY(args)
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	}
	return cmd, nil
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = parseCoordinate(twoStrings[0]); err != nil {
		return 0, 0, fmt.Errorf("%w x: %s", ErrBadCoordinate, err)
	}
	if y, err = parseCoordinate(twoStrings[1]); err != nil {
		return 0, 0, fmt.Errorf("%w y: %s", ErrBadCoordinate, err)
	}
	return
}

func parseCoordinate(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", s)
	}
	if n < 1 {
		return 0, errors.New("use 1-based coordinates")
	}
	return n - 1, nil
}

func parseOptions(args []string) (opts NewGameOptions, err error) {
	values := make(map[string][]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return opts, fmt.Errorf(
				"%w '%s', usage: %s", ErrBadOption, arg, commandUsage[NewGame],
			)
		}
		k = strings.ToLower(k)
		values[k] = append(values[k], v)
	}
	if err := dec.Decode(&opts, values); err != nil {
		return opts, fmt.Errorf("%w: %s", ErrBadOption, err)
	}
	return opts, nil
}
