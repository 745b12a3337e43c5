package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Everything draws on Default; renderer order sets the stacking.
const (
	Default ecs.LayerID = iota
)
