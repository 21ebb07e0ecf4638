package renderer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"pong/internal/ansii"
	"pong/internal/pong"
)

// Terminals only report key presses. A key counts as held for this many ticks
// after its last press, which bridges the gaps in key repeat.
const keyHoldTicks = 8

type heldKeys struct {
	now     int
	pressed map[pong.Key]int
}

func newHeldKeys() *heldKeys {
	return &heldKeys{pressed: map[pong.Key]int{}}
}

var opposite = map[pong.Key]pong.Key{
	pong.KeyW: pong.KeyS,
	pong.KeyS: pong.KeyW,
	pong.KeyI: pong.KeyK,
	pong.KeyK: pong.KeyI,
}

func (k *heldKeys) press(key pong.Key) {
	delete(k.pressed, opposite[key])
	k.pressed[key] = k.now
}

func (k *heldKeys) IsKeyDown(key pong.Key) bool {
	at, ok := k.pressed[key]
	return ok && k.now-at < keyHoldTicks
}

func (k *heldKeys) tick() {
	k.now++
}

type Terminal struct {
	state *pong.GameState
	keys  *heldKeys
	in    io.Reader
	out   io.Writer
	log   *slog.Logger

	// ShowStats draws frame timings in the bottom right corner.
	ShowStats bool
	frame     int
}

func NewTerminal(state *pong.GameState, log *slog.Logger) *Terminal {
	if log == nil {
		log = slog.Default()
	}
	return &Terminal{
		state: state,
		keys:  newHeldKeys(),
		in:    os.Stdin,
		out:   os.Stdout,
		log:   log,
	}
}

// Run plays the round in the current terminal until somebody wins or the
// player quits. A quit returns a zero Outcome.
func (t *Terminal) Run() (pong.Outcome, error) {
	if !ansii.IsTerminal() {
		return pong.Outcome{}, errors.New("terminal display needs an interactive terminal")
	}

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return pong.Outcome{}, fmt.Errorf("failed to make terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	io.WriteString(t.out, string(ansii.Screen.HideCursor))
	defer io.WriteString(t.out, string(ansii.Styles.Reset+ansii.Screen.ClearScreen+ansii.Screen.CursorHome+ansii.Screen.ShowCursor))

	input := make(chan []UiAction, 16)
	go t.readInput(input)

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for range ticker.C {
		start := time.Now()

		if t.drainInput(input) {
			t.log.Debug("player quit")
			return pong.Outcome{}, nil
		}

		outcome := t.step()

		cols, rows, err := ansii.GetTermSize()
		if err != nil {
			return pong.Outcome{}, fmt.Errorf("failed to get terminal size: %w", err)
		}
		t.render(cols, rows, time.Since(start))

		if outcome.Ended {
			return outcome, nil
		}
	}
	return pong.Outcome{}, nil
}

func (t *Terminal) readInput(input chan<- []UiAction) {
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			input <- ProcessInput(buf[:n])
		}
		if err != nil {
			t.log.Debug("stopped reading input", slog.Any("error", err))
			input <- []UiAction{Quit}
			return
		}
	}
}

// drainInput applies everything typed since the last tick and reports
// whether the player asked to quit.
func (t *Terminal) drainInput(input <-chan []UiAction) bool {
	for {
		select {
		case actions := <-input:
			if t.apply(actions) {
				return true
			}
		default:
			return false
		}
	}
}

func (t *Terminal) apply(actions []UiAction) bool {
	for _, action := range actions {
		switch action {
		case Quit:
			return true
		case P1Up:
			t.keys.press(pong.KeyW)
		case P1Down:
			t.keys.press(pong.KeyS)
		case P2Up, UpArrow:
			t.keys.press(pong.KeyI)
		case P2Down, DownArrow:
			t.keys.press(pong.KeyK)
		case Unknown:
		default:
			t.log.Debug("unrecognized input", slog.Any("action", action))
		}
	}
	return false
}

func (t *Terminal) step() pong.Outcome {
	outcome := t.state.Update(t.keys)
	t.keys.tick()
	t.frame++
	return outcome
}

func (t *Terminal) render(cols, rows int, frameTime time.Duration) {
	var builder = strings.Builder{}
	t.state.Draw(&terminalCanvas{builder: &builder, cols: cols, rows: rows})
	if t.ShowStats {
		drawFrameStats(&builder, cols, rows, t.frame, frameTime)
	}
	io.WriteString(t.out, builder.String())
}
