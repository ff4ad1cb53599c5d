package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Tile uint8

const (
	Unopened Tile = iota
	Dug
	Flag
)

func (t Tile) String() string {
	switch t {
	case Unopened:
		return "unopened"
	case Dug:
		return "dug"
	case Flag:
		return "flag"
	default:
		return "Tile(" + strconv.Itoa(int(t)) + ")"
	}
}

type GameState uint8

const (
	Prelude GameState = iota
	Playing
	Win
	Lose
)

func (s GameState) String() string {
	switch s {
	case Prelude:
		return "prelude"
	case Playing:
		return "playing"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "GameState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Active reports whether the board still accepts digs and flags.
func (s GameState) Active() bool {
	return s == Prelude || s == Playing
}

type FlagMode uint8

const (
	PlaceFlag FlagMode = iota
	RemoveFlag
	ToggleFlag
)

// symbol is the one-character rendering of cell i. Bombs are only shown once
// the game is over.
func (b *Board) symbol(i int) string {
	switch b.tiles[i] {
	case Flag:
		return "*"
	case Dug:
		if n := b.neighbours[i]; n > 0 {
			return strconv.Itoa(int(n))
		}
		return "."
	default:
		if b.isBomb[i] && !b.state.Active() {
			if i == b.lostAt {
				return "X"
			}
			return "@"
		}
		return "#"
	}
}

// String renders the board one row per line, cells separated by spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.params.Height {
		for x := range b.params.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.symbol(y*b.params.Width + x))
		}
		fmt.Fprintln(&sb)
	}
	return sb.String()
}
