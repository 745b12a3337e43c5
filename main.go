package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/trailgunner/assets"
	"github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/fonts"
	"github.com/automoto/trailgunner/scenes"
	"github.com/automoto/trailgunner/systems"
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

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels []assets.Level, levelIndex int, watcher *config.TuningWatcher) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.SmallFontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, levels, levelIndex, watcher)
	return g, nil
}

// Close lets the current scene save what it has to.
func (g *Game) Close() {
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
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

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "start with the collision overlay visible")
	flag.StringVar(&config.Debug.LevelName, "level", "", "level to play (file name without .tmx)")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "tuning.yaml", "tuning override file, reloaded when it changes")
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run starts the game and blocks until the window closes. Deferred cleanup
// runs on every return path.
func run() error {
	if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
		log.Printf("Warning: Could not load tuning, using defaults: %v", err)
	}

	var watcher *config.TuningWatcher
	if config.Debug.TuningPath != "" {
		w, err := config.WatchTuning(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.TuningPath, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	levels, err := assets.NewLevelLoader().LoadLevels()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	levelIndex, err := selectLevel(levels, config.Debug.LevelName)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("trailgunner")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if _, err := systems.LoadStats(); err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
	}

	game, err := NewGame(levels, levelIndex, watcher)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer game.Close()
	return ebiten.RunGame(game)
}

// selectLevel returns the index of the named level, the first level when name
// is empty.
func selectLevel(levels []assets.Level, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	i := assets.FindLevel(levels, name)
	if i < 0 {
		return 0, fmt.Errorf("unknown level %q", name)
	}
	return i, nil
}
