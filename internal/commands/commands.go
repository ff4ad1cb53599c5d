// Package commands implements the text protocol used to play a game from a
// terminal or a script. A command is a letter followed by its arguments:
//
//	o X Y    dig
//	c X Y    chord
//	f X Y    place a flag
//	u X Y    remove a flag
//	t X Y    toggle a flag
//	x X Y    set off an armed bomb after a loss
//	n [D]    new game, optionally with difficulty D
//	r        restart with the same difficulty
//	g        no-op, useful to request a redraw
//
// Several commands can be sent at once separated by ';'.
package commands

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid number of arguments")
	ErrInvalidSquare  = errors.New("invalid square coordinates")
)

// Maps known commands to number of arguments; -1 means zero or one
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"c": 2,
	"f": 2,
	"u": 2,
	"t": 2,
	"x": 2,
	"n": -1,
	"r": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func square(g *game.Game, args []string) (int, error) {
	x, y, err := parseXY(args)
	if err != nil {
		return 0, err
	}
	i, ok := g.Board().Index(x, y)
	if !ok {
		return 0, fmt.Errorf("%w: %d %d", ErrInvalidSquare, x, y)
	}
	return i, nil
}

// Execute runs a single command against g and reports whether it changed
// the game.
func Execute(g *game.Game, c string) (changed bool, err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return false, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	if nargs >= 0 && nargs != len(args) || nargs < 0 && len(args) > 1 {
		return false, fmt.Errorf("%w for %q", ErrInvalidArgs, parts[0])
	}

	switch parts[0] {
	case "g":
		return false, nil
	case "r":
		g.Restart()
		return true, nil
	case "n":
		d := g.Difficulty()
		if len(args) == 1 {
			if d, err = mines.ParseDifficulty(args[0]); err != nil {
				return false, err
			}
		}
		g.NewGame(d)
		return true, nil
	}

	i, err := square(g, args)
	if err != nil {
		return false, err
	}
	switch parts[0] {
	case "o":
		return g.Dig(i), nil
	case "c":
		return g.Chord(i), nil
	case "f":
		return g.SetFlag(mines.PlaceFlag, i), nil
	case "u":
		return g.SetFlag(mines.RemoveFlag, i), nil
	case "t":
		return g.SetFlag(mines.ToggleFlag, i), nil
	case "x":
		return g.ExplodeAt(i), nil
	}
	return false, ErrUnknownCommand
}

// ExecuteAll runs every ';'-separated command in text, stopping at the first
// error. Empty pieces are skipped.
func ExecuteAll(g *game.Game, text string) (changed bool, err error) {
	for _, c := range byPiece(text, ";") {
		if strings.TrimSpace(c) == "" {
			continue
		}
		ok, err := Execute(g, c)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
