package main

import (
	"errors"
	"image"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/yardwalk/config"
	"github.com/automoto/yardwalk/fonts"
	"github.com/automoto/yardwalk/scenes"
	"github.com/automoto/yardwalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config      string `help:"YAML file overriding the tuning defaults." type:"existingfile" short:"c"`
	Debug       bool   `help:"Enable debug logging and the debug overlay."`
	Width       int    `help:"Window width in pixels." default:"0"`
	Height      int    `help:"Window height in pixels." default:"0"`
	ThirdPerson bool   `help:"Start in the third-person camera." name:"third-person"`
}

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	err := g.scene.Update()
	if errors.Is(err, scenes.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// applyFlags loads the config file and overlays the command line on top.
func applyFlags() error {
	if CLI.Config != "" {
		if err := config.LoadFile(CLI.Config); err != nil {
			return err
		}
		log.Info().Str("path", CLI.Config).Msg("loaded config")
	}
	if CLI.Width > 0 {
		config.C.Width = CLI.Width
	}
	if CLI.Height > 0 {
		config.C.Height = CLI.Height
	}
	if CLI.Debug {
		config.Debug.Overlay = true
	}
	return nil
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("yardwalk"),
		kong.Description("walk around a small yard in first or third person"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if err := applyFlags(); err != nil {
		log.Fatal().Err(err).Msg("apply flags")
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("load fonts")
	}

	// Saved settings win over the config file; the command line wins over both.
	if err := systems.InitPersistence("yardwalk"); err == nil {
		if saved, err := systems.LoadSettings(); err == nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}
	if CLI.ThirdPerson {
		config.Camera.StartThirdPerson = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}
}
