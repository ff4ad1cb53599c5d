package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	tileSize     = 16
	headerHeight = 20
	shakeTime    = 0.25 // seconds
	shakeAmount  = 3.0  // pixels
)

var (
	colorBackground = color.RGBA{0x30, 0x30, 0x38, 0xff}
	colorUnopened   = color.RGBA{0x9a, 0xa0, 0xaa, 0xff}
	colorDug        = color.RGBA{0xdc, 0xdc, 0xd8, 0xff}
	colorGrid       = color.RGBA{0x60, 0x64, 0x6c, 0xff}
	colorFlag       = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	colorBomb       = color.RGBA{0x18, 0x18, 0x18, 0xff}
	colorExploded   = color.RGBA{0xff, 0x8c, 0x1a, 0xff}
	colorLosing     = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	colorText       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

// number colours, indexed by neighbour count
var colorNumbers = [9]color.Color{
	nil,
	color.RGBA{0x20, 0x40, 0xe0, 0xff},
	color.RGBA{0x10, 0x80, 0x20, 0xff},
	color.RGBA{0xd0, 0x20, 0x20, 0xff},
	color.RGBA{0x20, 0x10, 0x80, 0xff},
	color.RGBA{0x80, 0x10, 0x10, 0xff},
	color.RGBA{0x10, 0x80, 0x80, 0xff},
	color.RGBA{0x10, 0x10, 0x10, 0xff},
	color.RGBA{0x70, 0x70, 0x70, 0xff},
}

var presetKeys = map[ebiten.Key]mines.Preset{
	ebiten.Key1: mines.Easy,
	ebiten.Key2: mines.Normal,
	ebiten.Key3: mines.Hard,
}

// jitter is the part of the configured generator the screen shake needs.
type jitter interface {
	Float64() float64
}

type ui struct {
	game  *game.Game
	rnd   jitter
	scale float64
	face  font.Face
	shake float64
}

func newUI(g *game.Game, rnd jitter, scale float64) *ui {
	u := &ui{game: g, rnd: rnd, scale: scale, face: basicfont.Face7x13}
	u.resizeWindow()
	return u
}

func (u *ui) resizeWindow() {
	w, h := u.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*u.scale), int(float64(h)*u.scale))
	ebiten.SetWindowTitle(fmt.Sprintf("Minesweeper - %s", u.game.Difficulty().Preset))
}

func (u *ui) Layout(_, _ int) (int, int) {
	b := u.game.Board()
	return b.Width() * tileSize, headerHeight + b.Height()*tileSize
}

// tileAt translates a cursor position into a tile index.
func (u *ui) tileAt(x, y int) (int, bool) {
	if y < headerHeight {
		return 0, false
	}
	return u.game.Board().Index(x/tileSize, (y-headerHeight)/tileSize)
}

func (u *ui) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		u.game.Restart()
	}
	for key, preset := range presetKeys {
		if inpututil.IsKeyJustPressed(key) {
			u.game.NewGame(mines.Difficulty{Preset: preset})
			u.resizeWindow()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if _, ok := u.game.ExplodeRandom(); ok {
			u.shake = shakeTime
		}
	}
}

func (u *ui) handleMouse() {
	i, ok := u.tileAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if u.game.Board().State() == mines.Lose {
			if u.game.ExplodeAt(i) {
				u.shake = shakeTime
			}
			return
		}
		u.game.Click(i)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		u.game.SetFlag(mines.ToggleFlag, i)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		u.game.Chord(i)
	}
}

func (u *ui) Update() error {
	dt := 1 / float64(ebiten.TPS())
	u.handleKeys()
	u.handleMouse()
	if u.game.Update(dt) {
		u.shake = shakeTime
	}
	u.shake = max(u.shake-dt, 0)
	return nil
}

func (u *ui) status() string {
	b := u.game.Board()
	state := ""
	switch b.State() {
	case mines.Win:
		state = "  cleared!"
	case mines.Lose:
		state = "  boom"
	}
	return fmt.Sprintf("%03d  %03d%s", b.FlagsLeft(), int(u.game.Elapsed()), state)
}

func (u *ui) drawTile(screen *ebiten.Image, i int, ox, oy float32) {
	b := u.game.Board()
	x, y := b.Coords(i)
	px := ox + float32(x*tileSize)
	py := oy + float32(headerHeight+y*tileSize)
	cx, cy := px+tileSize/2, py+tileSize/2

	lostAt, lost := b.LosingTile()
	switch {
	case lost && i == lostAt:
		vector.DrawFilledRect(screen, px, py, tileSize, tileSize, colorLosing, false)
	case b.Tile(i) == mines.Dug:
		vector.DrawFilledRect(screen, px, py, tileSize, tileSize, colorDug, false)
	default:
		vector.DrawFilledRect(screen, px, py, tileSize, tileSize, colorUnopened, false)
	}
	vector.StrokeRect(screen, px, py, tileSize, tileSize, 1, colorGrid, false)

	switch b.Tile(i) {
	case mines.Flag:
		vector.DrawFilledRect(screen, cx-1, py+3, 2, tileSize-6, colorBomb, false)
		vector.DrawFilledRect(screen, cx-4, py+3, 5, 5, colorFlag, false)
	case mines.Dug:
		if n := b.NeighbourCount(i); n > 0 {
			text.Draw(screen, strconv.Itoa(int(n)), u.face, int(px)+5, int(py)+12, colorNumbers[n])
		}
	default:
		if exploded, ok := u.game.Exploded(i); ok {
			if exploded {
				vector.DrawFilledCircle(screen, cx, cy, tileSize/2-1, colorExploded, true)
			}
			vector.DrawFilledCircle(screen, cx, cy, tileSize/4, colorBomb, true)
		}
	}
}

func (u *ui) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	var ox, oy float32
	if u.shake > 0 {
		ox = float32((u.rnd.Float64()*2 - 1) * shakeAmount)
		oy = float32((u.rnd.Float64()*2 - 1) * shakeAmount)
	}

	text.Draw(screen, u.status(), u.face, 4, 14, colorText)
	for i := range u.game.Board().Tiles() {
		u.drawTile(screen, i, ox, oy)
	}
}
