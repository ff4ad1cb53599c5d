package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

// Board is the state of a single game. Bomb placement is deferred until the
// first successful Dig so that the first dug tile is always safe.
//
// A Board is not safe for concurrent use.
type Board struct {
	params GameParams
	rnd    Rand

	tiles      []Tile
	bombs      []int
	isBomb     []bool
	neighbours []uint8

	state  GameState
	turns  int
	flags  int
	opened int
	lostAt int
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewBoard creates an unpopulated board. If r is nil a randomly seeded
// generator is used.
func NewBoard(d Difficulty, r Rand) *Board {
	if r == nil {
		r = newRand()
	}
	return newBoard(d.Resolve(), r)
}

func newBoard(params GameParams, r Rand) *Board {
	n := params.Cells()
	return &Board{
		params:     params,
		rnd:        r,
		tiles:      make([]Tile, n),
		isBomb:     make([]bool, n),
		neighbours: make([]uint8, n),
		state:      Prelude,
		lostAt:     -1,
	}
}

// NewBoardWithBombs creates a board with a fixed bomb layout, already in the
// Playing state. The usual size limits do not apply.
func NewBoardWithBombs(width, height int, bombs []int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid board size %dx%d", width, height)
	}
	params := GameParams{Width: width, Height: height, BombCount: len(bombs)}
	if len(bombs) >= params.Cells() {
		return nil, fmt.Errorf("too many bombs: %d on %d cells", len(bombs), params.Cells())
	}
	b := newBoard(params, nil)
	for _, i := range bombs {
		if i < 0 || i >= params.Cells() {
			return nil, fmt.Errorf("bomb index %d out of range", i)
		}
		if b.isBomb[i] {
			return nil, fmt.Errorf("duplicate bomb index %d", i)
		}
		b.isBomb[i] = true
	}
	b.setBombs(bombs)
	b.state = Playing
	return b, nil
}

func (b *Board) logInvalid(op string, i int) {
	Log.WithFields(logrus.Fields{
		"index": i,
		"cells": b.params.Cells(),
		"state": b.state,
	}).Debug(op + ": index out of range")
}

// Dig opens tile i and reports whether anything changed. Digging a bomb loses
// the game; the bomb tile itself is left unopened.
func (b *Board) Dig(i int) bool {
	if !b.InBounds(i) {
		b.logInvalid("dig", i)
		return false
	}
	if !b.state.Active() || b.tiles[i] != Unopened {
		return false
	}
	if b.state == Prelude {
		b.populate(i)
		b.state = Playing
	}
	b.turns++
	b.dig(i)
	return true
}

func (b *Board) dig(i int) {
	if b.isBomb[i] {
		b.state = Lose
		b.lostAt = i
		Log.WithField("index", i).Debug("bomb dug")
		return
	}
	b.reveal(i)
	if b.opened == b.params.Cells()-len(b.bombs) {
		b.state = Win
	}
}

// reveal flood-fills from start in breadth-first waves. Tiles without
// neighbouring bombs spread to their unopened 4-connected neighbours.
func (b *Board) reveal(start int) {
	wave := []int{start}
	var next []int
	for len(wave) > 0 {
		for _, i := range wave {
			if b.tiles[i] != Unopened {
				continue
			}
			b.tiles[i] = Dug
			b.opened++
			if b.neighbours[i] != 0 {
				continue
			}
			for _, d := range cross {
				j, ok := b.params.offset(i, d[0], d[1])
				if ok && b.tiles[j] == Unopened && !b.isBomb[j] {
					next = append(next, j)
				}
			}
		}
		slices.Sort(next)
		wave, next = slices.Compact(next), wave[:0]
	}
}

// SetFlag places or removes a flag on an unopened tile and reports whether
// anything changed.
func (b *Board) SetFlag(mode FlagMode, i int) bool {
	if !b.InBounds(i) {
		b.logInvalid("flag", i)
		return false
	}
	if !b.state.Active() {
		return false
	}
	switch b.tiles[i] {
	case Unopened:
		if mode == RemoveFlag {
			return false
		}
		b.tiles[i] = Flag
		b.flags++
	case Flag:
		if mode == PlaceFlag {
			return false
		}
		b.tiles[i] = Unopened
		b.flags--
	default:
		return false
	}
	b.turns++
	return true
}

// Chord digs every unopened neighbour of dug tile i once the number of
// flags around it matches its bomb count. If that hits a bomb the game is
// lost and the bomb's index is returned with true.
func (b *Board) Chord(i int) (int, bool) {
	if !b.InBounds(i) {
		b.logInvalid("chord", i)
		return 0, false
	}
	if b.state != Playing || b.tiles[i] != Dug || b.neighbours[i] == 0 {
		return 0, false
	}
	flags := 0
	closed := make([]int, 0, 8)
	for _, j := range b.params.neighbours(i, around[:]) {
		switch b.tiles[j] {
		case Flag:
			flags++
		case Unopened:
			closed = append(closed, j)
		}
	}
	if flags != int(b.neighbours[i]) || len(closed) == 0 {
		return 0, false
	}
	b.turns++
	for _, j := range closed {
		// an earlier flood fill may have opened it already
		if b.tiles[j] != Unopened {
			continue
		}
		b.dig(j)
		switch b.state {
		case Lose:
			return j, true
		case Win:
			return 0, false
		}
	}
	return 0, false
}

func (b *Board) State() GameState { return b.state }

// Tiles returns the board in row-major order. The slice must not be modified.
func (b *Board) Tiles() []Tile { return b.tiles }

func (b *Board) Tile(i int) Tile {
	if !b.InBounds(i) {
		return Unopened
	}
	return b.tiles[i]
}

// Bombs returns the bomb indices in placement order. It is empty until the
// first dig. The slice must not be modified.
func (b *Board) Bombs() []int { return b.bombs }

func (b *Board) IsBomb(i int) bool { return b.InBounds(i) && b.isBomb[i] }

func (b *Board) NeighbourCount(i int) uint8 {
	if !b.InBounds(i) {
		return 0
	}
	return b.neighbours[i]
}

func (b *Board) Params() GameParams { return b.params }
func (b *Board) Width() int         { return b.params.Width }
func (b *Board) Height() int        { return b.params.Height }
func (b *Board) BombCount() int     { return b.params.BombCount }
func (b *Board) Turns() int         { return b.turns }

func (b *Board) FlagsLeft() int {
	return max(b.params.BombCount-b.flags, 0)
}

// Diggable reports whether Dig(i) would currently do anything.
func (b *Board) Diggable(i int) bool {
	return b.InBounds(i) && b.state.Active() && b.tiles[i] == Unopened
}

// LosingTile returns the bomb that ended the game.
func (b *Board) LosingTile() (int, bool) {
	return b.lostAt, b.state == Lose
}

func (b *Board) InBounds(i int) bool {
	return 0 <= i && i < len(b.tiles)
}

func (b *Board) Index(x, y int) (int, bool) {
	if x < 0 || x >= b.params.Width || y < 0 || y >= b.params.Height {
		return 0, false
	}
	return y*b.params.Width + x, true
}

func (b *Board) Coords(i int) (x, y int) {
	return i % b.params.Width, i / b.params.Width
}
