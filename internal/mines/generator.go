package mines

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

const (
	MinWidth  = 5
	MaxWidth  = 60
	MinHeight = 5
	MaxHeight = 40
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// MaxBombs is the largest bomb count a width x height board accepts. One row
// and one column worth of cells stay free for the first dig's neighbourhood.
func MaxBombs(width, height int) int {
	return (width - 1) * (height - 1)
}

type GameParams struct {
	Width, Height, BombCount int
}

func (p GameParams) Unpack() (w int, h int, bombs int) {
	return p.Width, p.Height, p.BombCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

type Preset int

const (
	Easy Preset = iota
	Normal
	Hard
	Custom
)

var presetNames = map[Preset]string{
	Easy:   "easy",
	Normal: "normal",
	Hard:   "hard",
	Custom: "custom",
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

var presets = map[Preset]GameParams{
	Easy:   {Width: 10, Height: 10, BombCount: 9},
	Normal: {Width: 16, Height: 16, BombCount: 40},
	Hard:   {Width: 30, Height: 16, BombCount: 99},
}

// Difficulty is one of the named presets, or Custom with its own dimensions.
// The dimensions are ignored for named presets.
type Difficulty struct {
	Preset Preset `schema:"-"`
	Width  int    `schema:"width,required"`
	Height int    `schema:"height,required"`
	Bombs  int    `schema:"bombs,required"`
}

func NewCustom(width, height, bombs int) Difficulty {
	return Difficulty{Preset: Custom, Width: width, Height: height, Bombs: bombs}
}

// Resolve returns the concrete board parameters. Custom values are clamped
// into the supported range.
func (d Difficulty) Resolve() GameParams {
	if p, ok := presets[d.Preset]; ok {
		return p
	}
	w := clamp(d.Width, MinWidth, MaxWidth)
	h := clamp(d.Height, MinHeight, MaxHeight)
	return GameParams{
		Width:     w,
		Height:    h,
		BombCount: clamp(d.Bombs, 1, MaxBombs(w, h)),
	}
}

func (d Difficulty) String() string {
	if d.Preset != Custom {
		return d.Preset.String()
	}
	v := url.Values{}
	v.Set("width", fmt.Sprint(d.Width))
	v.Set("height", fmt.Sprint(d.Height))
	v.Set("bombs", fmt.Sprint(d.Bombs))
	return v.Encode()
}

// ParseDifficulty accepts a preset name or a custom board in query form,
// e.g. "width=30&height=20&bombs=120".
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for p, name := range presetNames {
		if p != Custom && strings.EqualFold(s, name) {
			return Difficulty{Preset: p}, nil
		}
	}
	query, err := url.ParseQuery(s)
	if err != nil {
		return Difficulty{}, fmt.Errorf("invalid difficulty %q: %w", s, err)
	}
	d := Difficulty{Preset: Custom}
	if err := decoder.Decode(&d, query); err != nil {
		return Difficulty{}, fmt.Errorf("invalid difficulty %q: %w", s, err)
	}
	return d, nil
}
