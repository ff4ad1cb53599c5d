// Package game drives one minesweeper session frame by frame: it owns the
// board and the explosion sequencer and replaces both on every new game.
package game

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/explosion"
	"github.com/vancomm/minesweeper/internal/mines"
)

// the timer display stops here
const maxElapsed = 999

type Rand interface {
	mines.Rand
	IntN(n int) int
}

type Game struct {
	log        *logrus.Logger
	rnd        Rand
	difficulty mines.Difficulty

	board      *mines.Board
	seq        *explosion.Sequencer
	sequencing bool
	elapsed    float64
}

// New starts a game of difficulty d. If r is nil a randomly seeded
// generator is used.
func New(log *logrus.Logger, d mines.Difficulty, r Rand) *Game {
	if r == nil {
		r = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	g := &Game{log: log, rnd: r}
	g.NewGame(d)
	return g
}

// NewGame discards the current board and starts over with d.
func (g *Game) NewGame(d mines.Difficulty) {
	g.difficulty = d
	g.board = mines.NewBoard(d, g.rnd)
	g.seq = explosion.New()
	g.sequencing = false
	g.elapsed = 0
	g.log.WithFields(logrus.Fields{
		"difficulty": d.String(),
		"width":      g.board.Width(),
		"height":     g.board.Height(),
		"bombs":      g.board.BombCount(),
	}).Info("new game")
}

func (g *Game) Restart() {
	g.NewGame(g.difficulty)
}

func (g *Game) Difficulty() mines.Difficulty { return g.difficulty }

// Board gives read access for rendering. Mutate it through Game only.
func (g *Game) Board() *mines.Board { return g.board }

func (g *Game) Elapsed() float64 { return g.elapsed }

// InProgress reports whether abandoning the game would lose any work.
func (g *Game) InProgress() bool {
	return g.board.Turns() > 0 && g.board.State().Active()
}

func (g *Game) Dig(i int) bool {
	changed := g.board.Dig(i)
	if changed {
		g.settle()
	}
	return changed
}

func (g *Game) SetFlag(mode mines.FlagMode, i int) bool {
	return g.board.SetFlag(mode, i)
}

func (g *Game) Chord(i int) bool {
	before := g.board.Turns()
	g.board.Chord(i)
	if g.board.Turns() == before {
		return false
	}
	g.settle()
	return true
}

// Click is the primary action on a tile: dig when closed, chord when open.
func (g *Game) Click(i int) bool {
	if g.board.InBounds(i) && g.board.Tile(i) == mines.Dug {
		return g.Chord(i)
	}
	return g.Dig(i)
}

// settle reacts to the board entering a terminal state.
func (g *Game) settle() {
	state := g.board.State()
	if state.Active() || g.sequencing {
		return
	}
	entry := g.log.WithFields(logrus.Fields{
		"difficulty": g.difficulty.String(),
		"turns":      g.board.Turns(),
		"elapsed":    g.elapsed,
	})
	if state == mines.Win {
		entry.Info("game won")
		return
	}
	origin, _ := g.board.LosingTile()
	g.seq.Initialise(origin, g.board)
	g.sequencing = true
	entry.WithField("bomb", origin).Info("game lost")
}

// Update advances the game by dt seconds. It reports whether a bomb went off
// this frame, for shake or sound effects.
func (g *Game) Update(dt float64) bool {
	switch g.board.State() {
	case mines.Playing:
		g.elapsed = min(g.elapsed+dt, maxElapsed)
	case mines.Lose:
		return g.seq.Tick(dt)
	}
	return false
}

// Exploded reports whether bomb i has gone off; ok is false when i is not a
// bomb or the game is not lost.
func (g *Game) Exploded(i int) (exploded bool, ok bool) {
	return g.seq.IsExploded(i)
}

// ExplodeAt sets off an armed, unflagged bomb ahead of the blast.
func (g *Game) ExplodeAt(i int) bool {
	if !g.sequencing || !g.board.InBounds(i) || g.board.Tile(i) == mines.Flag {
		return false
	}
	return g.seq.Explode(i)
}

// ExplodeRandom sets off a random armed, unflagged bomb.
func (g *Game) ExplodeRandom() (int, bool) {
	if !g.sequencing {
		return 0, false
	}
	var armed []int
	for _, i := range g.board.Bombs() {
		if exploded, ok := g.seq.IsExploded(i); ok && !exploded && g.board.Tile(i) != mines.Flag {
			armed = append(armed, i)
		}
	}
	if len(armed) == 0 {
		return 0, false
	}
	i := armed[g.rnd.IntN(len(armed))]
	return i, g.seq.Explode(i)
}

// Sequencing reports whether the explosion animation is still running.
func (g *Game) Sequencing() bool {
	return g.sequencing && !g.seq.Done()
}
