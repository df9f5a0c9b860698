package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/goalrush/assets"
	"github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/core"
	"github.com/automoto/goalrush/fonts"
	"github.com/automoto/goalrush/scenes"
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts core.Options) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlayScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadLevels(dir string) []leveldata.Level {
	if dir != "" {
		levels, err := leveldata.LoadAllLevels(os.DirFS(dir), ".")
		if err == nil {
			return levels
		}
		log.Printf("Warning: Could not load levels from %s: %v", dir, err)
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Printf("Warning: Could not load embedded levels, using built-in table: %v", err)
		return config.Levels
	}
	return levels
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 uses the current time)")
	bindings := flag.String("bindings", "", "YAML file with key rebindings")
	levelsDir := flag.String("levels", "", "directory of .tmx level maps")
	flag.BoolVar(&config.Debug.ShowBoxes, "debug", false, "outline collision boxes")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *bindings != "" {
		overrides, err := config.LoadBindings(*bindings)
		if err != nil {
			log.Printf("Warning: Could not load key bindings: %v", err)
		} else {
			config.Input.ApplyKeys(overrides)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	opts := core.Options{
		Seed:   *seed,
		Levels: loadLevels(*levelsDir),
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Goal Rush")

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
