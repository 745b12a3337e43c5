package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var embeddedTuning []byte

// Tuning is the set of gameplay values that can be changed without a rebuild.
// Fields missing from a tuning file keep the value they had before parsing.
type Tuning struct {
	Player      PlayerConfig      `yaml:"player"`
	Target      TargetConfig      `yaml:"target"`
	Gap         GapConfig         `yaml:"gap"`
	Footsteps   FootstepConfig    `yaml:"footsteps"`
	Effects     EffectsConfig     `yaml:"effects"`
	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`
	Camera      CameraConfig      `yaml:"camera"`
}

// DefaultTuning returns the built-in values with the embedded tuning file applied.
func DefaultTuning() Tuning {
	t, err := ParseTuning(defaultTuning(), embeddedTuning)
	if err != nil {
		// embeddedTuning is parsed in init, so this cannot fail at runtime
		panic(err)
	}
	return t
}

// CurrentTuning snapshots the live global values.
func CurrentTuning() Tuning {
	return Tuning{
		Player:      Player,
		Target:      Target,
		Gap:         Gap,
		Footsteps:   Footsteps,
		Effects:     Effects,
		ScreenShake: ScreenShake,
		Camera:      Camera,
	}
}

// Apply copies t into the global configuration.
func (t Tuning) Apply() {
	Player = t.Player
	Target = t.Target
	Gap = t.Gap
	Footsteps = t.Footsteps
	Effects = t.Effects
	ScreenShake = t.ScreenShake
	Camera = t.Camera
}

// Validate rejects values the game cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %v", t.Player.Speed))
	}
	if t.Player.ShootingCooldown < 0 {
		errs = append(errs, fmt.Errorf("player.shooting_cooldown must not be negative, got %v", t.Player.ShootingCooldown))
	}
	if t.Player.JumpCueFrames < 0 {
		errs = append(errs, fmt.Errorf("player.jump_cue_frames must not be negative, got %d", t.Player.JumpCueFrames))
	}
	if t.Target.Health <= 0 {
		errs = append(errs, fmt.Errorf("target.health must be positive, got %d", t.Target.Health))
	}
	if t.Gap.Duration <= 0 {
		errs = append(errs, fmt.Errorf("gap.duration must be positive, got %v", t.Gap.Duration))
	}
	if t.Footsteps.StrideLength <= 0 {
		errs = append(errs, fmt.Errorf("footsteps.stride_length must be positive, got %v", t.Footsteps.StrideLength))
	}
	return errors.Join(errs...)
}

// ParseTuning decodes data on top of base.
func ParseTuning(base Tuning, data []byte) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("config: invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads the tuning override at path and applies it on top of the
// defaults. A missing file is not an error: the defaults stay in effect.
func LoadTuning(path string) error {
	t := DefaultTuning()
	if path == "" {
		t.Apply()
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Apply()
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	t, err = ParseTuning(t, data)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	t.Apply()
	return nil
}
