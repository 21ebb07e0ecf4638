package pong

import (
	"image/color"
	"log/slog"

	"pong/internal/geom"
)

type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "nobody"
	}
}

func (p Player) Announcement() string {
	return p.String() + " wins!"
}

type Phase int

const (
	Playing Phase = iota
	Terminated
)

// Outcome is what a single Update reports back to the host loop.
// Ended is only true on the tick where the round finished.
type Outcome struct {
	Winner Player
	Ended  bool
}

type Key int

const (
	KeyW Key = iota
	KeyS
	KeyI
	KeyK
)

type Keyboard interface {
	IsKeyDown(key Key) bool
}

type Canvas interface {
	Clear(c color.Color)
	DrawVisual(v Visual, at geom.Vector)
}

var Background = color.RGBA{R: 100, G: 149, B: 237, A: 255}

type GameState struct {
	PlayerOne Entity
	PlayerTwo Entity
	Ball      Entity

	Phase  Phase
	Winner Player

	log *slog.Logger
}
