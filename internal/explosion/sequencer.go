// Package explosion sequences the bomb detonations shown after a game is
// lost: a circle grows from the losing tile and every bomb it reaches goes
// off, nearest first.
package explosion

import (
	"cmp"
	"math"
	"slices"
)

const (
	// the first ring (radius 1) is reached after this many seconds
	popDuration = 0.7
	// minimum seconds between two notifications
	notifyCooldown = 0.1
)

// Board is the part of a board the sequencer reads. *mines.Board
// implements it.
type Board interface {
	Width() int
	Height() int
	Bombs() []int
}

type entry struct {
	bomb     int
	dist2    int
	exploded bool
}

// Sequencer is the zero value ready to use; it tracks nothing until
// Initialise is called.
type Sequencer struct {
	entries []entry
	lookup  map[int]int

	radius      float64
	rate        float64
	skip        int
	sinceNotify float64
}

func New() *Sequencer {
	return &Sequencer{}
}

func (s *Sequencer) Reset() {
	s.entries = s.entries[:0]
	s.lookup = make(map[int]int)
	s.radius = 0
	s.rate = 0
	s.skip = 0
	s.sinceNotify = 0
}

// Initialise tracks every bomb of b, ordered by squared grid distance from
// origin. Bombs at equal distance keep the board's order.
func (s *Sequencer) Initialise(origin int, b Board) {
	s.Reset()
	w, h := b.Width(), b.Height()
	ox, oy := origin%w, origin/w
	for _, bomb := range b.Bombs() {
		dx, dy := bomb%w-ox, bomb/w-oy
		s.entries = append(s.entries, entry{bomb: bomb, dist2: dx*dx + dy*dy})
	}
	slices.SortStableFunc(s.entries, func(a, b entry) int {
		return cmp.Compare(a.dist2, b.dist2)
	})
	for i, e := range s.entries {
		s.lookup[e.bomb] = i
	}
	s.rate = math.Sqrt(float64(max(w, h))) * 2
	s.sinceNotify = notifyCooldown
}

// Tick advances the radius by dt seconds and explodes every bomb inside it.
// It reports whether the caller should fire a "bomb exploded" effect.
func (s *Sequencer) Tick(dt float64) bool {
	if s.Done() {
		return false
	}
	if s.radius < 1 {
		s.radius += dt / popDuration
	} else {
		s.radius += dt * s.rate
	}
	s.sinceNotify += dt

	r2 := s.radius * s.radius
	fresh := 0
	for s.skip < len(s.entries) {
		e := &s.entries[s.skip]
		if !e.exploded {
			if float64(e.dist2) >= r2 {
				break
			}
			e.exploded = true
			fresh++
		}
		s.skip++
	}

	if fresh > 0 && s.sinceNotify >= notifyCooldown {
		s.sinceNotify = 0
		return true
	}
	return false
}

// Explode sets off a tracked bomb ahead of the radius. It reports false if
// the bomb is unknown or already exploded.
func (s *Sequencer) Explode(bomb int) bool {
	i, ok := s.lookup[bomb]
	if !ok || s.entries[i].exploded {
		return false
	}
	s.entries[i].exploded = true
	return true
}

// IsExploded reports the state of a tracked bomb; ok is false for indices
// that are not tracked.
func (s *Sequencer) IsExploded(bomb int) (exploded bool, ok bool) {
	i, ok := s.lookup[bomb]
	if !ok {
		return false, false
	}
	return s.entries[i].exploded, true
}

func (s *Sequencer) Contains(bomb int) bool {
	_, ok := s.lookup[bomb]
	return ok
}

// Done reports whether every tracked bomb has exploded.
func (s *Sequencer) Done() bool {
	return s.skip == len(s.entries)
}

func (s *Sequencer) Len() int {
	return len(s.entries)
}

func (s *Sequencer) Radius() float64 {
	return s.radius
}
