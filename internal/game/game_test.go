package game

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log, mines.Difficulty{Preset: mines.Easy}, rand.New(rand.NewPCG(1, 2)))
}

// loseGame digs the first tile and then a bomb; it returns the bomb.
func loseGame(t *testing.T, g *Game) int {
	t.Helper()
	require.True(t, g.Dig(0))
	bomb := g.Board().Bombs()[0]
	require.True(t, g.Dig(bomb))
	require.Equal(t, mines.Lose, g.Board().State())
	return bomb
}

func TestNewGameReplacesBoard(t *testing.T) {
	g := newTestGame(t)
	first := g.Board()
	require.True(t, g.Dig(0))
	assert.True(t, g.InProgress())

	g.NewGame(mines.NewCustom(8, 6, 10))

	assert.NotSame(t, first, g.Board())
	assert.Equal(t, mines.Prelude, g.Board().State())
	assert.Equal(t, 8, g.Board().Width())
	assert.Equal(t, 6, g.Board().Height())
	assert.Equal(t, 10, g.Board().BombCount())
	assert.False(t, g.InProgress())
	assert.Zero(t, g.Elapsed())

	g.Restart()
	assert.Equal(t, mines.NewCustom(8, 6, 10), g.Difficulty())
}

func TestTimerRunsWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.Update(1)
	assert.Zero(t, g.Elapsed(), "timer starts with the first dig")

	require.True(t, g.Dig(0))
	g.Update(1.5)
	g.Update(0.5)
	assert.InDelta(t, 2.0, g.Elapsed(), 1e-9)

	g.Update(5000)
	assert.Equal(t, float64(maxElapsed), g.Elapsed())
}

func TestLossStartsExplosions(t *testing.T) {
	g := newTestGame(t)
	bomb := loseGame(t, g)
	elapsed := g.Elapsed()

	assert.True(t, g.Sequencing())
	exploded, ok := g.Exploded(bomb)
	require.True(t, ok)
	assert.False(t, exploded)

	notified := 0
	for frames := 0; g.Sequencing(); frames++ {
		require.Less(t, frames, 10000)
		if g.Update(frame) {
			notified++
		}
	}
	assert.Positive(t, notified)
	for _, i := range g.Board().Bombs() {
		exploded, ok := g.Exploded(i)
		assert.True(t, ok)
		assert.True(t, exploded, "bomb %d", i)
	}
	assert.Equal(t, elapsed, g.Elapsed(), "timer stops on loss")
}

func TestExplodeAt(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Dig(0))
	bombs := g.Board().Bombs()
	assert.False(t, g.ExplodeAt(bombs[0]), "nothing explodes while playing")

	require.True(t, g.SetFlag(mines.PlaceFlag, bombs[1]))
	require.True(t, g.Dig(bombs[0]))

	assert.False(t, g.ExplodeAt(bombs[1]), "flagged bombs stay armed")
	assert.True(t, g.ExplodeAt(bombs[2]))
	assert.False(t, g.ExplodeAt(bombs[2]))
	assert.False(t, g.ExplodeAt(-1))

	safe := -1
	for i := range g.Board().Tiles() {
		if !g.Board().IsBomb(i) {
			safe = i
			break
		}
	}
	assert.False(t, g.ExplodeAt(safe))
}

func TestExplodeRandom(t *testing.T) {
	g := newTestGame(t)
	_, ok := g.ExplodeRandom()
	assert.False(t, ok)

	loseGame(t, g)
	seen := map[int]bool{}
	for {
		i, ok := g.ExplodeRandom()
		if !ok {
			break
		}
		assert.True(t, g.Board().IsBomb(i))
		assert.False(t, seen[i])
		seen[i] = true
	}
	assert.Len(t, seen, g.Board().BombCount())
}

func TestClickChordsOpenTiles(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.Click(0))
	assert.Equal(t, mines.Dug, g.Board().Tile(0))

	// chording an open tile without the right flags does nothing
	numbered := -1
	for i, tile := range g.Board().Tiles() {
		if tile == mines.Dug && g.Board().NeighbourCount(i) > 0 {
			numbered = i
			break
		}
	}
	require.NotEqual(t, -1, numbered)
	turns := g.Board().Turns()
	assert.False(t, g.Click(numbered))
	assert.Equal(t, turns, g.Board().Turns())
}

func TestChordLossStartsExplosions(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	g := New(log, mines.Difficulty{Preset: mines.Easy}, rand.New(rand.NewPCG(3, 4)))

	// # 1 #
	// # # #
	// # # #   bombs at 0 and 8
	b, err := mines.NewBoardWithBombs(3, 3, []int{0, 8})
	require.NoError(t, err)
	g.board = b

	require.True(t, g.Dig(1))
	require.Equal(t, uint8(1), b.NeighbourCount(1))
	require.True(t, g.SetFlag(mines.PlaceFlag, 2))
	require.True(t, g.Chord(1))

	assert.Equal(t, mines.Lose, b.State())
	lostAt, _ := b.LosingTile()
	assert.Equal(t, 0, lostAt)
	assert.True(t, g.Sequencing())
	exploded, ok := g.Exploded(8)
	assert.True(t, ok)
	assert.False(t, exploded)
}
