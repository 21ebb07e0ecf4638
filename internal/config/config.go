package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"

	defaultPath        = "config.json"
	defaultResourceDir = "./resources"
)

var Config Configuration

// Configuration only covers how the game is hosted. The rules of the game are
// compiled in.
type Configuration struct {
	LogLevel    int    `json:"logLevel"`
	ResourceDir string `json:"resourceDir"`
	Display     string `json:"display"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:    int(slog.LevelInfo),
		ResourceDir: defaultResourceDir,
		Display:     DisplayWindow,
	}
}

func LoadConfig(path string) {
	Config = Read(path)
}

// Read loads the configuration at path, or config.json when path is empty.
// Anything missing or unreadable falls back to the defaults.
func Read(path string) Configuration {
	c := Default()

	if path == "" {
		path = defaultPath
	}
	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
		return c
	}

	err = json.Unmarshal(cf, &c)
	if err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		return Default()
	}

	if c.ResourceDir == "" {
		c.ResourceDir = defaultResourceDir
	}
	switch c.Display {
	case DisplayWindow, DisplayTerminal:
	default:
		slog.Info("unknown display, using window", slog.String("display", c.Display))
		c.Display = DisplayWindow
	}
	return c
}
