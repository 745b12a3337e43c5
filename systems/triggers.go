package systems

import (
	"slices"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// aabb is an axis aligned box given by its min and max corners.
type aabb struct {
	minX, minY, maxX, maxY float64
}

func (a aabb) overlaps(b aabb) bool {
	return a.minX < b.maxX && b.minX < a.maxX && a.minY < b.maxY && b.minY < a.maxY
}

func objectBox(obj *components.ObjectData) aabb {
	return aabb{minX: obj.X, minY: obj.Y, maxX: obj.X + obj.W, maxY: obj.Y + obj.H}
}

// triggerBox is the acquisition area around a target.
func triggerBox(obj *components.ObjectData) aabb {
	c := obj.Center()
	r := cfg.Target.TriggerRadius
	return aabb{minX: c.X - r, minY: c.Y - r, maxX: c.X + r, maxY: c.Y + r}
}

// UpdateTriggers diffs what each player overlaps against the previous frame
// and reports the changes to its controller. Entities removed since the last
// frame produce no exit; their own destruction signal covers them.
func UpdateTriggers(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		if player.Controller == nil || !player.Controller.Enabled() {
			return
		}
		if player.Overlapping == nil {
			player.Overlapping = make(map[donburi.Entity]struct{})
		}

		box := objectBox(components.Object.Get(playerEntry))
		current := overlappingTriggers(ecs, box)

		// Exits first so a target list never holds stale entries when a new
		// one is acquired in the same frame.
		var exited []donburi.Entity
		for entity := range player.Overlapping {
			if _, ok := current[entity]; !ok {
				exited = append(exited, entity)
			}
		}
		slices.Sort(exited)
		for _, entity := range exited {
			delete(player.Overlapping, entity)
			if !ecs.World.Valid(entity) {
				continue
			}
			if other, ok := triggerHandle(ecs, ecs.World.Entry(entity)); ok {
				player.Controller.OnTriggerExit(other)
			}
		}

		var entered []donburi.Entity
		for entity := range current {
			if _, ok := player.Overlapping[entity]; !ok {
				entered = append(entered, entity)
			}
		}
		// Entities entering together are acquired in creation order.
		slices.Sort(entered)
		for _, entity := range entered {
			player.Overlapping[entity] = struct{}{}
			if other, ok := triggerHandle(ecs, ecs.World.Entry(entity)); ok {
				player.Controller.OnTriggerEnter(other)
			}
		}
	})
}

func overlappingTriggers(ecs *ecs.ECS, box aabb) map[donburi.Entity]struct{} {
	current := make(map[donburi.Entity]struct{})

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		if components.Target.Get(e).Dead {
			return
		}
		if box.overlaps(triggerBox(components.Object.Get(e))) {
			current[e.Entity()] = struct{}{}
		}
	})

	tags.Gap.Each(ecs.World, func(e *donburi.Entry) {
		if box.overlaps(objectBox(components.Object.Get(e))) {
			current[e.Entity()] = struct{}{}
		}
	})

	return current
}
