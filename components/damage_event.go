package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on a target by a hit and applied by the target
// system on its next run. Hits landing in the same frame add up.
type DamageEventData struct {
	Amount int
	Hits   int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
