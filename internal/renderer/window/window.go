package window

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/assets"
	"pong/internal/geom"
	"pong/internal/pong"
)

const Title = "Pong"

var keymap = map[pong.Key]ebiten.Key{
	pong.KeyW: ebiten.KeyW,
	pong.KeyS: ebiten.KeyS,
	pong.KeyI: ebiten.KeyI,
	pong.KeyK: ebiten.KeyK,
}

type keyboard struct{}

func (keyboard) IsKeyDown(key pong.Key) bool {
	k, ok := keymap[key]
	return ok && ebiten.IsKeyPressed(k)
}

type canvas struct {
	screen *ebiten.Image
	images map[pong.Visual]*ebiten.Image
}

func (c canvas) Clear(col color.Color) {
	c.screen.Fill(col)
}

func (c canvas) DrawVisual(v pong.Visual, at geom.Vector) {
	img, ok := c.images[v]
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	c.screen.DrawImage(img, op)
}

// Game hosts a round in a desktop window through ebiten.
type Game struct {
	state   *pong.GameState
	images  map[pong.Visual]*ebiten.Image
	outcome pong.Outcome
	log     *slog.Logger
}

func New(state *pong.GameState, sprites assets.Sprites, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	images := map[pong.Visual]*ebiten.Image{}
	for _, s := range []*assets.Sprite{sprites.PlayerOne, sprites.PlayerTwo, sprites.Ball} {
		images[s] = ebiten.NewImageFromImage(s.Image)
	}
	return &Game{state: state, images: images, log: log}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.log.Debug("player quit")
		return ebiten.Termination
	}

	outcome := g.state.Update(keyboard{})
	if outcome.Ended {
		g.outcome = outcome
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.state.Draw(canvas{screen: screen, images: g.images})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(pong.WindowWidth), int(pong.WindowHeight)
}

// Run opens the window and blocks until the round is over or the window is
// closed. Closing early returns a zero Outcome.
func (g *Game) Run() (pong.Outcome, error) {
	ebiten.SetWindowSize(int(pong.WindowWidth), int(pong.WindowHeight))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil {
		return pong.Outcome{}, fmt.Errorf("failed to run window: %w", err)
	}
	return g.outcome, nil
}
