package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/yardwalk/components"
	cfg "github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/systems"
	"github.com/automoto/yardwalk/systems/factory"
	"github.com/automoto/yardwalk/ui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrQuit is returned by Update once the player chose Quit.
var ErrQuit = errors.New("quit")

// WorldScene is the walkable yard: level, props, player and the pause menu.
type WorldScene struct {
	ecs     *ecs.ECS
	pauseUI *ui.PauseUI
	once    sync.Once
	err     error
	quit    bool
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(func() { ws.err = ws.configure() })
	if ws.err != nil {
		return ws.err
	}

	ws.ecs.Update()
	if systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.pauseUI.Update()
	}

	if ws.quit {
		systems.SaveCurrentSettings(ws.ecs)
		return ErrQuit
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil || ws.err != nil {
		return
	}
	ws.ecs.Draw(screen)
	if systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.pauseUI.Draw(screen)
	}
}

func (ws *WorldScene) configure() error {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Gameplay, skipped while paused
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerInput))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.SyncMeshes))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddSystem(systems.UpdateToasts)
	e.AddSystem(systems.ProcessEvents)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawScene)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawToasts)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	if err := setupWorld(e, cfg.Scene.LevelPath); err != nil {
		return err
	}

	ws.ecs = e
	ws.pauseUI = ui.NewPauseUI(e, func() { ws.quit = true })

	systems.GetOrCreateSettings(e)
	systems.SubscribeToasts(e)
	systems.SubscribeAudio(e)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	return nil
}

// setupWorld creates the physics world, level, scenery, player and camera.
func setupWorld(e *ecs.ECS, levelPath string) error {
	factory.CreatePhysics(e, cfg.Physics)

	entry, err := factory.CreateLevel(e, levelPath)
	if err != nil {
		return err
	}
	level := components.Level.Get(entry).Level
	if err := factory.CreateScenery(e, level); err != nil {
		return fmt.Errorf("build %s: %w", levelPath, err)
	}

	if len(level.PlayerSpawns) == 0 {
		log.Warn().Str("level", level.Path).Msg("no player spawn, using the origin")
	}
	spawn := level.Spawn()
	if _, err := factory.CreatePlayer(e, spawn); err != nil {
		return err
	}
	factory.CreateCamera(e, mgl64.Vec3{spawn.X, 0, spawn.Z})

	log.Info().
		Str("level", level.Name).
		Int("props", len(level.Props)).
		Str("spawn", spawn.Name).
		Msg("world ready")
	return nil
}
