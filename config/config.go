// Package config resolves runtime settings from defaults, a TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
)

// Backend names accepted by Render.Backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete runtime configuration
type Config struct {
	Game   GameConfig   `toml:"game"`
	Arena  ArenaConfig  `toml:"arena"`
	Audio  AudioConfig  `toml:"audio"`
	Render RenderConfig `toml:"render"`

	// Source names where the values came from, for the startup log
	Source string `toml:"-"`
}

type GameConfig struct {
	FPS    int    `toml:"fps"`
	Agents int    `toml:"agents"` // including the player
	Seed   uint64 `toml:"seed"`   // 0 seeds from the clock
}

// ArenaConfig is the initial arena rectangle; the frame loop may slide or shrink it to fit
type ArenaConfig struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"` // physical rows
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0..1
}

type RenderConfig struct {
	Backend string `toml:"backend"`
	ShowFPS bool   `toml:"show_fps"`
	Debug   bool   `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FPS:    parameter.DefaultFPS,
			Agents: parameter.DefaultAgentCount,
		},
		Arena: ArenaConfig{
			X:      parameter.ArenaDefaultX,
			Y:      parameter.ArenaDefaultY,
			Width:  parameter.ArenaDefaultWidth,
			Height: parameter.ArenaDefaultHeight,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioDefaultVolume,
		},
		Render: RenderConfig{
			Backend: BackendANSI,
		},
		Source: "defaults",
	}
}

// Load returns defaults overlaid with the TOML file at path (if any) and the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
		cfg.Source = path
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overlays SERPENT_* environment variables; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SERPENT_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Game.FPS = n
		}
	}
	if v := os.Getenv("SERPENT_AGENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Game.Agents = n
		}
	}
	if v := os.Getenv("SERPENT_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = n
		}
	}

	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.ApplyEnv()
	c.Audio.Enabled = ac.Enabled
	c.Audio.MasterVolume = ac.MasterVolume
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	switch {
	case c.Game.FPS < 1 || c.Game.FPS > parameter.MaxFPS:
		return fmt.Errorf("%w: fps %d outside 1..%d", ErrInvalid, c.Game.FPS, parameter.MaxFPS)
	case c.Game.Agents < 1 || c.Game.Agents > parameter.MaxAgentCount:
		return fmt.Errorf("%w: agents %d outside 1..%d", ErrInvalid, c.Game.Agents, parameter.MaxAgentCount)
	case c.Arena.Width < parameter.ArenaMinSize || c.Arena.Width > parameter.ArenaMaxWidth:
		return fmt.Errorf("%w: arena width %d outside %d..%d", ErrInvalid, c.Arena.Width, parameter.ArenaMinSize, parameter.ArenaMaxWidth)
	case c.Arena.Height < parameter.ArenaMinSize || c.Arena.Height > parameter.ArenaMaxHeight:
		return fmt.Errorf("%w: arena height %d outside %d..%d", ErrInvalid, c.Arena.Height, parameter.ArenaMinSize, parameter.ArenaMaxHeight)
	case c.Arena.X < parameter.ArenaMinOffsetX || c.Arena.X > 255 || c.Arena.Y < parameter.ArenaMinOffsetY || c.Arena.Y > 255:
		return fmt.Errorf("%w: arena position (%d,%d) off screen", ErrInvalid, c.Arena.X, c.Arena.Y)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master volume %.2f outside 0..1", ErrInvalid, c.Audio.MasterVolume)
	case c.Render.Backend != BackendANSI && c.Render.Backend != BackendTcell:
		return fmt.Errorf("%w: backend %q (want %s or %s)", ErrInvalid, c.Render.Backend, BackendANSI, BackendTcell)
	}
	return nil
}

// ArenaRect converts the validated arena section
func (c *Config) ArenaRect() engine.Arena {
	return engine.NewArena(uint8(c.Arena.X), uint8(c.Arena.Y), uint8(c.Arena.Width), uint8(c.Arena.Height))
}

// AudioSettings builds the mixer configuration; per-effect volumes come from the environment
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.LoadAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	return ac
}
