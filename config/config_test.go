package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serpent.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid defaults, got %v", err)
	}
	if cfg.Game.FPS != 30 {
		t.Errorf("Expected 30 FPS, got %d", cfg.Game.FPS)
	}
	if cfg.Render.Backend != BackendANSI {
		t.Errorf("Expected ansi backend, got %s", cfg.Render.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[game]
fps = 60
agents = 4
seed = 99

[arena]
width = 30
height = 12

[render]
backend = "tcell"
show_fps = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.FPS != 60 || cfg.Game.Agents != 4 || cfg.Game.Seed != 99 {
		t.Errorf("Expected game 60/4/99, got %+v", cfg.Game)
	}
	if cfg.Arena.Width != 30 || cfg.Arena.Height != 12 {
		t.Errorf("Expected arena 30x12, got %dx%d", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Arena.X != 2 || cfg.Arena.Y != 3 {
		t.Errorf("Expected unset position to keep defaults, got (%d,%d)", cfg.Arena.X, cfg.Arena.Y)
	}
	if cfg.Render.Backend != BackendTcell || !cfg.Render.ShowFPS {
		t.Errorf("Expected tcell with FPS shown, got %+v", cfg.Render)
	}
	if cfg.Source != path {
		t.Errorf("Expected source %s, got %s", path, cfg.Source)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "[game]\nspeed = 3\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[game]\nfps = 60\n")
	t.Setenv("SERPENT_FPS", "20")
	t.Setenv("SERPENT_AGENTS", "9")
	t.Setenv("SERPENT_SEED", "7")
	t.Setenv("SERPENT_AUDIO_ENABLED", "false")
	t.Setenv("SERPENT_MASTER_VOLUME", "25")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.FPS != 20 {
		t.Errorf("Expected env FPS 20, got %d", cfg.Game.FPS)
	}
	if cfg.Game.Agents != 9 || cfg.Game.Seed != 7 {
		t.Errorf("Expected agents 9 seed 7, got %d and %d", cfg.Game.Agents, cfg.Game.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected volume 0.25, got %f", cfg.Audio.MasterVolume)
	}

	ac := cfg.AudioSettings()
	if ac.Enabled || ac.MasterVolume != 0.25 {
		t.Errorf("Expected mixer settings to follow config, got %v %f", ac.Enabled, ac.MasterVolume)
	}
}

func TestEnvInvalidIgnored(t *testing.T) {
	t.Setenv("SERPENT_FPS", "fast")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.FPS != 30 {
		t.Errorf("Expected default FPS, got %d", cfg.Game.FPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.Game.FPS = 0 }},
		{"fps too high", func(c *Config) { c.Game.FPS = 1000 }},
		{"no agents", func(c *Config) { c.Game.Agents = 0 }},
		{"too many agents", func(c *Config) { c.Game.Agents = 33 }},
		{"narrow arena", func(c *Config) { c.Arena.Width = 4 }},
		{"tall arena", func(c *Config) { c.Arena.Height = 200 }},
		{"arena over status line", func(c *Config) { c.Arena.Y = 1 }},
		{"loud", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"unknown backend", func(c *Config) { c.Render.Backend = "sdl" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestArenaRect(t *testing.T) {
	cfg := Default()
	a := cfg.ArenaRect()
	if a.Position.X != 2 || a.Position.Y != 3 || a.Size.X != 48 || a.Size.Y != 16 {
		t.Errorf("Expected (2,3) 48x16, got %+v", a)
	}
}
