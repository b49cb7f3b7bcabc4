// Package game runs the frame loop: input, simulation, rendering and event dispatch
package game

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/render"
	"github.com/lixenwraith/serpent/status"
	"github.com/lixenwraith/serpent/system"
	"github.com/lixenwraith/serpent/terminal"
)

// Game owns the world and everything the loop touches; single goroutine
type Game struct {
	display Display
	sound   *audio.SoundManager

	world  *engine.World
	clock  *engine.PausableClock
	agents *system.AgentSystem
	scene  *render.Scene
	reg    *status.Registry
	proc   sampler

	frameInterval time.Duration
	running       bool
	showFPS       bool
	showDebug     bool
	lastKey       string
	events        []engine.Event

	// FPS measurement window
	fps         int
	fpsFrames   int
	fpsWindowAt time.Time

	// Telemetry
	statFrames *atomic.Int64
	statTick   *atomic.Int64
	statPaused *atomic.Bool
	statMuted  *atomic.Bool
	statFPS    *status.AtomicFloat
	statEvents [engine.EventTypeCount]*atomic.Int64
}

// sampler refreshes process metrics in the status registry
type sampler interface {
	Sample() error
}

// New builds a world from cfg; sound may be uninitialized, cues are then dropped
func New(cfg *config.Config, display Display, sound *audio.SoundManager) *Game {
	if sound == nil {
		sound = audio.NewSoundManager(cfg.AudioSettings())
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	world := engine.NewWorld(engine.WorldConfig{
		Agents: cfg.Game.Agents,
		Seed:   seed,
		Arena:  cfg.ArenaRect(),
		Clock:  clock,
	})

	return newGame(cfg, display, sound, world, clock)
}

func newGame(cfg *config.Config, display Display, sound *audio.SoundManager, world *engine.World, clock *engine.PausableClock) *Game {
	reg := status.NewRegistry()
	g := &Game{
		display:       display,
		sound:         sound,
		world:         world,
		clock:         clock,
		agents:        system.NewAgentSystem(world, reg),
		scene:         render.NewScene(),
		reg:           reg,
		frameInterval: time.Second / time.Duration(cfg.Game.FPS),
		showFPS:       cfg.Render.ShowFPS,
		showDebug:     cfg.Render.Debug,
		lastKey:       "-",
		events:        make([]engine.Event, 0, parameter.EventQueueSize),
		statFrames:    reg.Ints.Get("frames"),
		statTick:      reg.Ints.Get("tick"),
		statPaused:    reg.Bools.Get("paused"),
		statMuted:     reg.Bools.Get("muted"),
		statFPS:       reg.Floats.Get("fps"),
	}
	if proc, err := status.NewProcessSampler(reg); err == nil {
		g.proc = proc
	} else {
		log.Printf("Process stats unavailable: %v", err)
	}
	for i := range g.statEvents {
		g.statEvents[i] = reg.Ints.Get("events." + engine.EventType(i).String())
	}
	reg.Strings.Get("session").Store(world.Session.String())
	return g
}

// World exposes the simulation state
func (g *Game) World() *engine.World {
	return g.world
}

// Run loops until quit or a fatal error; the returned error is a *Error
func (g *Game) Run() error {
	g.running = true
	nextFrame := time.Now()
	g.fpsWindowAt = nextFrame

	for g.running {
		if err := g.pollInput(); err != nil {
			return err
		}
		if !g.running {
			break
		}

		if !g.clock.IsPaused() {
			g.agents.Update()
		}
		g.dispatchEvents()

		if now := time.Now(); !now.Before(nextFrame) {
			if err := g.renderFrame(now); err != nil {
				return err
			}
			nextFrame = now.Add(g.frameInterval)
		}

		time.Sleep(parameter.EventLoopInterval)
	}
	return nil
}

// pollInput drains pending events without blocking
func (g *Game) pollInput() error {
	for {
		select {
		case ev := <-g.display.Events():
			if err := g.HandleEvent(ev); err != nil {
				return err
			}
			if !g.running {
				return nil
			}
		default:
			return nil
		}
	}
}

// HandleEvent applies one input event
func (g *Game) HandleEvent(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventError:
		return &Error{Kind: ErrIO, Err: ev.Err}
	case terminal.EventClosed:
		g.running = false
		return nil
	case terminal.EventResize:
		// Size is re-read by the next frame
		return nil
	}

	g.lastKey = ev.Label()
	b := Bind(ev)
	player := g.world.Player()
	arena := &g.world.Arena

	switch b.Action {
	case ActionSteer:
		player.Steer(b.Dir)
	case ActionMoveArena:
		arena.MoveBy(b.DX, b.DY)
	case ActionResizeArena:
		arena.ResizeBy(b.DX, b.DY, g.world.Food)
	case ActionFaster:
		player.AddSpeed(parameter.PlayerDelayStep)
	case ActionSlower:
		player.ReduceSpeed(parameter.PlayerDelayStep)
	case ActionToggleFPS:
		g.showFPS = !g.showFPS
	case ActionToggleDebug:
		g.showDebug = !g.showDebug
	case ActionPause:
		paused := g.clock.Toggle()
		g.statPaused.Store(paused)
		log.Printf("Paused: %t", paused)
	case ActionMute:
		g.statMuted.Store(g.sound.ToggleMute())
	case ActionQuit:
		g.running = false
	}
	return nil
}

// dispatchEvents routes world events to audio, counters and the log
func (g *Game) dispatchEvents() {
	g.events = g.world.Events.Consume(g.events[:0])
	for _, ev := range g.events {
		g.statEvents[ev.Type].Add(1)

		involvesPlayer := ev.Snake == engine.PlayerIndex || ev.Other == engine.PlayerIndex
		switch ev.Type {
		case engine.EventEat:
			if ev.Snake == engine.PlayerIndex {
				g.sound.PlayEat()
			}
		case engine.EventCannibalFeed:
			if involvesPlayer {
				g.sound.PlayFeed()
			}
		case engine.EventKill:
			g.sound.PlayKill()
			log.Printf("Tick %d: %s killed %s (+%d)", ev.Tick, g.name(ev.Snake), g.name(ev.Other), ev.Amount)
		case engine.EventDeath:
			log.Printf("Tick %d: %s died", ev.Tick, g.name(ev.Snake))
		case engine.EventRespawn:
			if ev.Snake == engine.PlayerIndex {
				g.sound.PlaySpawn()
			}
			log.Printf("Tick %d: %s respawned", ev.Tick, g.name(ev.Snake))
		}
	}
	g.statTick.Store(int64(g.world.Tick))
}

func (g *Game) name(idx int) string {
	if idx < 0 || idx >= len(g.world.Snakes) {
		return "wall"
	}
	return g.world.Snakes[idx].Name
}

// renderFrame fits the arena to the viewport and draws one frame
func (g *Game) renderFrame(now time.Time) error {
	width, height := g.display.Size()
	g.world.Arena.Fit(core.NewPoint(clampByte(width), clampByte(height)), g.world.Food)

	g.display.Begin()
	g.scene.Draw(g.display, g.world, g.hud())
	if err := g.display.Flush(); err != nil {
		return err
	}

	g.statFrames.Add(1)
	g.fpsFrames++
	if elapsed := now.Sub(g.fpsWindowAt); elapsed >= time.Second {
		g.fps = int(float64(g.fpsFrames) / elapsed.Seconds())
		g.statFPS.Set(float64(g.fps))
		g.fpsFrames = 0
		g.fpsWindowAt = now
		if g.proc != nil && g.showDebug {
			if err := g.proc.Sample(); err != nil {
				log.Printf("Process stats sampling stopped: %v", err)
				g.proc = nil
			}
		}
	}
	return nil
}

func (g *Game) hud() render.HUD {
	hud := render.HUD{
		ShowFPS: g.showFPS,
		FPS:     g.fps,
		Key:     g.lastKey,
		Paused:  g.clock.IsPaused(),
	}
	if g.showDebug {
		hud.Debug = g.reg.Lines()
	}
	return hud
}

func clampByte(n int) uint8 {
	return uint8(min(max(n, 0), 255))
}
