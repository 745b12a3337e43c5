package systems

import (
	"sort"

	"github.com/automoto/trailgunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFootprints ages prints and removes faded ones.
func UpdateFootprints(ecs *ecs.ECS) {
	var faded []*donburi.Entry

	components.Footprint.Each(ecs.World, func(e *donburi.Entry) {
		fp := components.Footprint.Get(e)
		fp.Age++
		if fp.Age >= fp.Lifetime {
			faded = append(faded, e)
		}
	})

	for _, e := range faded {
		e.Remove()
	}
}

// trimFootprints drops the oldest prints until at most limit remain.
// A limit of 0 or less keeps everything.
func trimFootprints(ecs *ecs.ECS, limit int) {
	if limit <= 0 {
		return
	}

	var prints []*donburi.Entry
	components.Footprint.Each(ecs.World, func(e *donburi.Entry) {
		prints = append(prints, e)
	})
	if len(prints) <= limit {
		return
	}

	sort.Slice(prints, func(i, j int) bool {
		return components.Footprint.Get(prints[i]).Serial < components.Footprint.Get(prints[j]).Serial
	})
	for _, e := range prints[:len(prints)-limit] {
		e.Remove()
	}
}
