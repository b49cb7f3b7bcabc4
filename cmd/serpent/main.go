package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/game"
	"github.com/lixenwraith/serpent/terminal"
)

const (
	logDir      = "logs"
	logFileName = "serpent.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML configuration file")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/serpent.log and show the debug overlay")
	backendFlag = flag.String("backend", "", "Render backend: ansi, tcell")
	fpsFlag     = flag.Int("fps", 0, "Frames per second")
	agentsFlag  = flag.Int("agents", 0, "Number of snakes including the player")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	showFPSFlag = flag.Bool("show-fps", false, "Show the FPS counter on start")
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		terminal.HandleCrash(recover())
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Printf("Configuration rejected: %v", err)
		fmt.Fprintf(os.Stderr, "serpent: %v\n", err)
		return 2
	}
	log.Printf("Configuration from %s: %+v", cfg.Source, *cfg)

	if err := run(cfg); err != nil {
		log.Printf("Fatal: %v", err)
		fmt.Fprintf(os.Stderr, "serpent: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig resolves defaults, file and environment, then applies explicitly set flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Render.Backend = *backendFlag
		case "fps":
			cfg.Game.FPS = *fpsFlag
		case "agents":
			cfg.Game.Agents = *agentsFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "show-fps":
			cfg.Render.ShowFPS = *showFPSFlag
		case "debug":
			cfg.Render.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	display, err := game.NewDisplay(cfg.Render.Backend)
	if err != nil {
		return err
	}
	if err := display.Init(); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer display.Fini()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	} else {
		defer sound.Cleanup()
	}

	g := game.New(cfg, display, sound)
	log.Printf("Session %s started with %d snakes", g.World().Session, len(g.World().Snakes))

	start := time.Now()
	err = g.Run()
	log.Printf("Session %s ended after %s, tick %d", g.World().Session, time.Since(start).Round(time.Second), g.World().Tick)
	return err
}

// setupLogging routes the std logger to logs/serpent.log when debug is set, discarding otherwise
// A log over maxLogSize is moved aside with a timestamp before the new one is opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("serpent-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
