package renderer

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong/internal/ansii"
	"pong/internal/assets"
	"pong/internal/geom"
	"pong/internal/pong"
)

func sprite(w, h int, mean color.RGBA) *assets.Sprite {
	return &assets.Sprite{Image: image.NewNRGBA(image.Rect(0, 0, w, h)), Mean: mean}
}

var (
	red   = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	green = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func newTestTerminal(in io.Reader) (*Terminal, *bytes.Buffer) {
	state := pong.NewGameState(sprite(16, 64, red), sprite(16, 64, green), sprite(16, 16, white))
	out := &bytes.Buffer{}
	t := NewTerminal(state, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.in = in
	t.out = out
	return t, out
}

func TestHeldKeysExpire(t *testing.T) {
	k := newHeldKeys()
	k.press(pong.KeyW)

	for range keyHoldTicks {
		assert.True(t, k.IsKeyDown(pong.KeyW))
		k.tick()
	}
	assert.False(t, k.IsKeyDown(pong.KeyW))
	assert.False(t, k.IsKeyDown(pong.KeyS))
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	k := newHeldKeys()
	k.press(pong.KeyS)
	k.tick()
	k.press(pong.KeyW)

	assert.True(t, k.IsKeyDown(pong.KeyW))
	assert.False(t, k.IsKeyDown(pong.KeyS))
}

func TestApplyMovesPaddles(t *testing.T) {
	term, _ := newTestTerminal(strings.NewReader(""))

	quit := term.apply([]UiAction{P1Up, DownArrow})
	require.False(t, quit)
	term.step()

	assert.Equal(t, float32(200), term.state.PlayerOne.Position.Y)
	assert.Equal(t, float32(216), term.state.PlayerTwo.Position.Y)
	assert.Equal(t, 1, term.frame)
}

func TestApplyQuit(t *testing.T) {
	term, _ := newTestTerminal(strings.NewReader(""))
	assert.True(t, term.apply([]UiAction{P1Up, Quit}))
}

func TestDrainInput(t *testing.T) {
	term, _ := newTestTerminal(strings.NewReader(""))
	input := make(chan []UiAction, 4)

	assert.False(t, term.drainInput(input), "empty input does not block")

	input <- []UiAction{P2Up}
	input <- []UiAction{P1Down}
	assert.False(t, term.drainInput(input))
	assert.True(t, term.keys.IsKeyDown(pong.KeyI))
	assert.True(t, term.keys.IsKeyDown(pong.KeyS))
	assert.Empty(t, input)
}

func TestReadInputQuitsOnEOF(t *testing.T) {
	term, _ := newTestTerminal(strings.NewReader("w"))
	input := make(chan []UiAction, 4)

	term.readInput(input)

	require.Len(t, input, 2)
	assert.Equal(t, []UiAction{P1Up}, <-input)
	assert.Equal(t, []UiAction{Quit}, <-input)
}

func TestRenderScalesWorldToTerminal(t *testing.T) {
	term, out := newTestTerminal(strings.NewReader(""))

	// A 64x48 terminal is a tenth of the window in both directions.
	term.render(64, 48, 0)
	frame := out.String()

	assert.True(t, strings.HasPrefix(frame, string(ansii.Background(pong.Background))))

	// Paddle one spans x 16..32, y 208..272.
	var want strings.Builder
	ansii.FillBox(&want, ansii.Cell{Col: 1, Row: 20}, 8, 3, 64, 48, ansii.Foreground(red))
	assert.Contains(t, frame, want.String())

	// Ball spans x 312..328, y 232..248.
	want.Reset()
	ansii.FillBox(&want, ansii.Cell{Col: 31, Row: 23}, 2, 2, 64, 48, ansii.Foreground(white))
	assert.Contains(t, frame, want.String())

	p1 := strings.Index(frame, string(ansii.Foreground(red)))
	p2 := strings.Index(frame, string(ansii.Foreground(green)))
	ball := strings.Index(frame, string(ansii.Foreground(white)))
	assert.Less(t, p1, p2)
	assert.Less(t, p2, ball)
	assert.NotContains(t, frame, "Frame #")
}

func TestRenderStats(t *testing.T) {
	term, out := newTestTerminal(strings.NewReader(""))
	term.ShowStats = true
	term.frame = 12

	term.render(80, 24, 0)
	assert.Contains(t, out.String(), "Frame #: 12")
	assert.Contains(t, out.String(), "Spare Time:")
}

func TestCanvasKeepsTinySpritesVisible(t *testing.T) {
	var b strings.Builder
	c := &terminalCanvas{builder: &b, cols: 10, rows: 10}

	c.DrawVisual(sprite(1, 1, white), geom.Vector{X: 320, Y: 240})

	assert.Contains(t, b.String(), string(ansii.Screen.PlaceCursor(ansii.Cell{Col: 5, Row: 5}))+ansii.Blocks.Block)
}
