package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePresets(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
		want   GameParams
	}{
		{"easy", Easy, GameParams{Width: 10, Height: 10, BombCount: 9}},
		{"normal", Normal, GameParams{Width: 16, Height: 16, BombCount: 40}},
		{"hard", Hard, GameParams{Width: 30, Height: 16, BombCount: 99}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Difficulty{Preset: test.preset, Width: 1, Height: 1, Bombs: 1}
			assert.Equal(t, test.want, d.Resolve())
		})
	}
}

func TestResolveCustomClamps(t *testing.T) {
	tests := []struct {
		name string
		in   Difficulty
		want GameParams
	}{
		{"in range", NewCustom(20, 10, 30), GameParams{20, 10, 30}},
		{"too small", NewCustom(0, -3, 5), GameParams{MinWidth, MinHeight, 5}},
		{"too large", NewCustom(1000, 1000, 1), GameParams{MaxWidth, MaxHeight, 1}},
		{"too many bombs", NewCustom(8, 6, 1000), GameParams{8, 6, 35}},
		{"no bombs", NewCustom(8, 6, 0), GameParams{8, 6, 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.in.Resolve()
			assert.Equal(t, test.want, got)
			assert.LessOrEqual(t, got.BombCount, MaxBombs(got.Width, got.Height))
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"easy", Difficulty{Preset: Easy}},
		{"  Normal ", Difficulty{Preset: Normal}},
		{"HARD", Difficulty{Preset: Hard}},
		{"width=30&height=20&bombs=120", NewCustom(30, 20, 120)},
		{"bombs=3&height=7&width=9&extra=1", NewCustom(9, 7, 3)},
		{"width=20&height=10&bombs=30&Preset=2", NewCustom(20, 10, 30)},
		{"width=20&height=10&bombs=30&Preset=7", NewCustom(20, 10, 30)},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseDifficulty(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseDifficultyErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"impossible",
		"width=10&height=10",
		"width=ten&height=10&bombs=5",
		"width=%zz",
	} {
		_, err := ParseDifficulty(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDifficultyStringRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{
		{Preset: Easy},
		{Preset: Normal},
		{Preset: Hard},
		NewCustom(12, 9, 20),
	} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
