package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Object group names read from level files.
const (
	groupWalls        = "Walls"
	groupGaps         = "Gaps"
	groupTargets      = "Targets"
	groupPlayerSpawn  = "PlayerSpawn"
	groupPatrolPaths  = "PatrolPaths"
	propHealth        = "health"
	propPathName      = "pathName"
	propPatrolSeconds = "patrolDuration"
	propDuration      = "duration"
	propLandingX      = "landingX"
	propLandingY      = "landingY"
)

var ErrNoPlayerSpawn = errors.New("no player spawn points defined in map")

type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the middle of r.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

type PlayerSpawn struct {
	X, Y float64
}

// TargetSpawn places a target centered on X, Y. Health 0 means the configured
// default. Patrol, when set, lists world points the target ping-pongs along.
type TargetSpawn struct {
	Name           string
	X, Y           float64
	Health         int
	Patrol         []math.Vec2
	PatrolDuration float64 // seconds per leg, 0 for the configured default
}

// GapSpawn is a region crossed by a scripted hop. Duration 0 means the
// configured default. Without an explicit landing the hop mirrors the entry
// point across the gap.
type GapSpawn struct {
	Name       string
	Area       Rect
	Duration   float64
	Landing    math.Vec2
	HasLanding bool
}

type PatrolPath struct {
	Name   string
	Points []math.Vec2 // Converted polyline points to world coordinates
}

type Level struct {
	Name         string
	Title        string
	Width        int
	Height       int
	Walls        []Rect
	Gaps         []GapSpawn
	Targets      []TargetSpawn
	PlayerSpawns []PlayerSpawn
	PatrolPaths  map[string]PatrolPath
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader loads levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewLevelLoaderFS loads levels from dir inside fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels loads every .tmx file in the level directory, sorted by name.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", l.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("assets: no level files found in %s", l.dir)
	}
	return levels, nil
}

func (l *LevelLoader) MustLoadLevels() []Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

// LoadLevel parses one level file. name is relative to the level directory.
func (l *LevelLoader) LoadLevel(name string) (Level, error) {
	levelPath := path.Join(l.dir, name)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("assets: load %s: %w", levelPath, err)
	}

	level := Level{
		Name:        strings.TrimSuffix(name, path.Ext(name)),
		Width:       levelMap.Width * levelMap.TileWidth,
		Height:      levelMap.Height * levelMap.TileHeight,
		PatrolPaths: make(map[string]PatrolPath),
	}
	level.Title = strings.ToUpper(level.Name[:1]) + level.Name[1:]

	// Paths first so targets can resolve them regardless of group order.
	for _, og := range levelMap.ObjectGroups {
		if og.Name != groupPatrolPaths {
			continue
		}
		for _, o := range og.Objects {
			if len(o.PolyLines) == 0 {
				continue
			}
			polyline := o.PolyLines[0]
			if polyline.Points == nil || len(*polyline.Points) < 2 {
				continue
			}
			points := make([]math.Vec2, len(*polyline.Points))
			for i, point := range *polyline.Points {
				points[i] = math.Vec2{
					X: o.X + point.X,
					Y: o.Y + point.Y,
				}
			}
			level.PatrolPaths[o.Name] = PatrolPath{
				Name:   o.Name,
				Points: points,
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case groupGaps:
			for _, o := range og.Objects {
				gap := GapSpawn{
					Name:     o.Name,
					Area:     Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Duration: o.Properties.GetFloat(propDuration),
				}
				if o.Properties.GetString(propLandingX) != "" && o.Properties.GetString(propLandingY) != "" {
					gap.Landing = math.Vec2{
						X: o.Properties.GetFloat(propLandingX),
						Y: o.Properties.GetFloat(propLandingY),
					}
					gap.HasLanding = true
				}
				level.Gaps = append(level.Gaps, gap)
			}
		case groupTargets:
			for _, o := range og.Objects {
				target := TargetSpawn{
					Name:           o.Name,
					X:              o.X,
					Y:              o.Y,
					Health:         o.Properties.GetInt(propHealth),
					PatrolDuration: o.Properties.GetFloat(propPatrolSeconds),
				}
				if pathName := o.Properties.GetString(propPathName); pathName != "" {
					p, ok := level.PatrolPaths[pathName]
					if !ok {
						return Level{}, fmt.Errorf("assets: %s: target %q uses unknown path %q", levelPath, o.Name, pathName)
					}
					target.Patrol = p.Points
				}
				level.Targets = append(level.Targets, target)
			}
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("assets: %s: %w", levelPath, ErrNoPlayerSpawn)
	}

	return level, nil
}

// FindLevel returns the index of the level called name, or -1.
func FindLevel(levels []Level, name string) int {
	name = strings.TrimSuffix(name, ".tmx")
	for i := range levels {
		if levels[i].Name == name {
			return i
		}
	}
	return -1
}
