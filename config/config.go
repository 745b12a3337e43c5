package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"` // pixels per second at full stick deflection

	// Shooting
	ShootingCooldown float64 `yaml:"shooting_cooldown"` // seconds that must be exceeded between shots
	ShotDamage       int     `yaml:"shot_damage"`
	MuzzleOffset     float64 `yaml:"muzzle_offset"` // distance in front of the avatar where shots spawn

	// ResumeShootingAfterJump returns to Shooting after a gap traversal when
	// targets are still tracked. Off by default: a jump always lands in Walking.
	ResumeShootingAfterJump bool `yaml:"resume_shooting_after_jump"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Look
	BobHeight     float64 `yaml:"bob_height"`      // walk bob in pixels at full speed
	JumpCueFrames int     `yaml:"jump_cue_frames"` // length of the take-off stretch

	// LogController routes controller fire/state messages to the std logger
	LogController bool `yaml:"log_controller"`
}

// TargetConfig contains target configuration values
type TargetConfig struct {
	Health          int     `yaml:"health"`
	Size            float64 `yaml:"size"`           // body size in pixels
	TriggerRadius   float64 `yaml:"trigger_radius"` // half the side of the acquisition box
	FlashFrames     int     `yaml:"flash_frames"`
	ExplosionFrames int     `yaml:"explosion_frames"`
	PatrolDuration  float64 `yaml:"patrol_duration"` // seconds per leg when the level does not set one
}

// GapConfig contains gap traversal configuration
type GapConfig struct {
	Duration  float64 `yaml:"duration"`   // seconds when the level does not set one
	HopHeight float64 `yaml:"hop_height"` // peak of the hop arc in pixels
}

// FootstepConfig contains footstep trail configuration
type FootstepConfig struct {
	StrideLength float64 `yaml:"stride_length"` // pixels travelled between foot contacts
	FootOffset   float64 `yaml:"foot_offset"`   // sideways offset of each foot from the center line
	FadeFrames   int     `yaml:"fade_frames"`
	MaxPrints    int     `yaml:"max_prints"` // oldest prints are dropped past this count
}

// EffectsConfig contains VFX configuration
type EffectsConfig struct {
	ShotFrames      int     `yaml:"shot_frames"`
	ShotRadius      float64 `yaml:"shot_radius"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DestroyedIntensity float64 `yaml:"destroyed_intensity"` // pixels
	DestroyedDuration  int     `yaml:"destroyed_duration"`  // frames
	ShotIntensity      float64 `yaml:"shot_intensity"`
	ShotDuration       int     `yaml:"shot_duration"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	Margin          float64
	CooldownWidth   float64
	CooldownHeight  float64
	CooldownBgColor color.RGBA
	CooldownFgColor color.RGBA
	TextColor       color.RGBA
	HUDFontSize     float64
	SmallFontSize   float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool   // Start with the collision overlay visible
	LevelName  string // Level file to load, empty for the first level
	TuningPath string // On-disk tuning override, watched for changes
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Target TargetConfig
var Gap GapConfig
var Footsteps FootstepConfig
var Effects EffectsConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var UI UIConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// World palette
var (
	Floor          = color.RGBA{R: 34, G: 38, B: 46, A: 255}
	WallColor      = colornames.Slategray
	GapColor       = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	GapEdgeColor   = colornames.Darkslateblue
	TargetColor    = colornames.Indianred
	PlayerColor    = colornames.Lightskyblue
	PlayerAimColor = colornames.Orange
	Shadow         = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	FootprintColor = colornames.Tan
	ShotColor      = colornames.Lightyellow
	ExplosionColor = colornames.Orangered
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	UI = UIConfig{
		Margin:          10,
		CooldownWidth:   130,
		CooldownHeight:  6,
		CooldownBgColor: DarkGrey,
		CooldownFgColor: Orange,
		TextColor:       White,
		HUDFontSize:     14,
		SmallFontSize:   10,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc/P: Resume   R: Restart   F3: Debug",
	}

	// Code defaults first, then the embedded tuning file on top.
	t, err := ParseTuning(defaultTuning(), embeddedTuning)
	if err != nil {
		panic(err)
	}
	t.Apply()
}

// defaultTuning returns the built-in values used when a tuning file leaves a
// field out.
func defaultTuning() Tuning {
	return Tuning{
		Player: PlayerConfig{
			Speed:            120,
			ShootingCooldown: 1.0,
			ShotDamage:       35,
			MuzzleOffset:     14,
			CollisionWidth:   14,
			CollisionHeight:  14,
			BobHeight:        2,
			JumpCueFrames:    10,
		},
		Target: TargetConfig{
			Health:          100,
			Size:            16,
			TriggerRadius:   96,
			FlashFrames:     6,
			ExplosionFrames: 20,
			PatrolDuration:  2.5,
		},
		Gap: GapConfig{
			Duration:  0.6,
			HopHeight: 18,
		},
		Footsteps: FootstepConfig{
			StrideLength: 18,
			FootOffset:   3,
			FadeFrames:   180,
			MaxPrints:    64,
		},
		Effects: EffectsConfig{
			ShotFrames:      6,
			ShotRadius:      4,
			ExplosionRadius: 16,
		},
		ScreenShake: ScreenShakeConfig{
			DestroyedIntensity: 4,
			DestroyedDuration:  12,
			ShotIntensity:      1,
			ShotDuration:       4,
		},
		Camera: CameraConfig{
			FollowSmoothing: 0.1,
		},
	}
}
