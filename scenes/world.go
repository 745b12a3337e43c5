package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/trailgunner/assets"
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/systems"
	"github.com/automoto/trailgunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene plays one level: the player walks, shoots whatever comes in
// range and hops the gaps until every target is down.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       []assets.Level
	levelIndex   int
	watcher      *cfg.TuningWatcher
	once         sync.Once
}

// NewArenaScene creates a scene for levels[levelIndex]. watcher may be nil
// when no tuning file is being watched.
func NewArenaScene(sc SceneChanger, levels []assets.Level, levelIndex int, watcher *cfg.TuningWatcher) *ArenaScene {
	return &ArenaScene{
		sceneChanger: sc,
		levels:       levels,
		levelIndex:   levelIndex,
		watcher:      watcher,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.reloadTuning()
	as.ecs.Update()

	if systems.GetAction(systems.GetOrCreateInput(as.ecs), cfg.ActionRestart).JustPressed {
		as.restart()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// restart tears the scene down and starts a fresh one. A cleared level
// moves on to the next.
func (as *ArenaScene) restart() {
	next := as.levelIndex
	if levelEntry, ok := components.Level.First(as.ecs.World); ok && components.Level.Get(levelEntry).Cleared {
		next = (as.levelIndex + 1) % len(as.levels)
	}

	as.Close()
	as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.levels, next, as.watcher))
}

// Close disables the controller and saves stats.
func (as *ArenaScene) Close() {
	if as.ecs == nil {
		return
	}
	systems.DetachControllers(as.ecs)
	_ = systems.SaveStats(systems.GetOrCreateStats(as.ecs))
}

// reloadTuning applies a changed tuning file. Events are drained here so
// configuration only ever changes between frames.
func (as *ArenaScene) reloadTuning() {
	if as.watcher == nil {
		return
	}
	select {
	case path := <-as.watcher.Events:
		if err := cfg.LoadTuning(path); err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		systems.ApplyTuning(as.ecs)
		log.Printf("Reloaded tuning from %s", path)
	case err := <-as.watcher.Errors:
		log.Printf("Warning: Tuning watcher: %v", err)
	default:
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks. Gaps run before the player so a
	// landing is seen on the frame the hop ends.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGaps))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerAnimation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTargets))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFootprints))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawFootprints)
	ecs.AddRenderer(cfg.Default, systems.DrawGaps)
	ecs.AddRenderer(cfg.Default, systems.DrawTargets)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevelAtIndex(as.ecs, as.levels, as.levelIndex)
	levelData := components.Level.Get(level)
	as.levelIndex = levelData.LevelIndex
	factory.PopulateLevel(as.ecs, levelData.CurrentLevel)

	// The level loader guarantees at least one spawn.
	spawn := levelData.CurrentLevel.PlayerSpawns[0]
	player := factory.CreatePlayer(as.ecs, spawn.X, spawn.Y)
	systems.AttachController(as.ecs, player)

	// Snap camera to the player's start position to prevent panning from (0,0)
	factory.CreateCamera(as.ecs, components.Object.Get(player).Center())

	settings := systems.GetOrCreateSettings(as.ecs)
	if cfg.Debug.Overlay {
		// -debug only forces the overlay on the first scene
		settings.Debug = true
		cfg.Debug.Overlay = false
	}
	systems.GetOrCreateStats(as.ecs).Runs++
}
