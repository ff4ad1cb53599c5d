package mines

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Rand is the randomness the board needs. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// populate places the bombs, none of which is at safe or within one square
// of it, and computes the neighbour counts.
func (b *Board) populate(safe int) {
	width, height, bombCount := b.params.Unpack()
	sx, sy := safe%width, safe/width

	candidates := make([]int, 0, width*height)
	for y := range height {
		for x := range width {
			if absDiff(sx, x) > 1 || absDiff(sy, y) > 1 {
				candidates = append(candidates, y*width+x)
			}
		}
	}

	b.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	b.setBombs(candidates[:bombCount])

	Log.WithFields(logrus.Fields{
		"safe":  safe,
		"bombs": bombCount,
	}).Debug("board populated")
}

func (b *Board) setBombs(bombs []int) {
	b.bombs = slices.Clone(bombs)
	for _, i := range b.bombs {
		b.isBomb[i] = true
	}
	for i := range b.neighbours {
		var n uint8
		for _, j := range b.params.neighbours(i, around[:]) {
			if b.isBomb[j] {
				n++
			}
		}
		b.neighbours[i] = n
	}
}
