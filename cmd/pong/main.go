package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"pong/internal/assets"
	"pong/internal/config"
	"pong/internal/pong"
	"pong/internal/renderer"
	"pong/internal/renderer/window"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	level := slog.Level(config.Config.LogLevel)
	slog.SetLogLoggerLevel(level)
	log := slog.With("session", uuid.NewString())

	sprites, err := assets.Load(config.Config.ResourceDir)
	if err != nil {
		log.Error("failed to load sprites", slog.Any("error", err))
		os.Exit(1)
	}

	state := pong.NewGameState(sprites.PlayerOne, sprites.PlayerTwo, sprites.Ball)
	state.SetLogger(log)

	var host renderer.Host
	switch config.Config.Display {
	case config.DisplayTerminal:
		t := renderer.NewTerminal(state, log)
		t.ShowStats = level <= slog.LevelDebug
		host = t
	default:
		host = window.New(state, sprites, log)
	}

	log.Debug("starting round", slog.String("display", config.Config.Display))
	outcome, err := host.Run()
	if err != nil {
		log.Error("display failed", slog.Any("error", err))
		os.Exit(1)
	}

	if outcome.Winner != pong.NoPlayer {
		fmt.Println(outcome.Winner.Announcement())
	}
}
