package systems

import (
	"math"

	"github.com/automoto/trailgunner/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// moveAndCollide moves object by delta one axis at a time. A move that would
// overlap a solid stops flush against it, so the object slides along walls.
func moveAndCollide(object *resolv.Object, delta dmath.Vec2) {
	if dx := delta.X; dx != 0 {
		object.X += clampToSolids(object, dx, 0)
	}
	if dy := delta.Y; dy != 0 {
		object.Y += clampToSolids(object, 0, dy)
	}
	object.Update()
}

// clampToSolids shortens a single-axis move so object stops at the nearest
// solid in its path. resolv narrows the candidates by cell; the exact overlap
// test is done here.
func clampToSolids(object *resolv.Object, dx, dy float64) float64 {
	move := dx + dy
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return move
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsMoved(object, solid, dx, dy) {
			continue
		}
		switch {
		case dx > 0:
			move = math.Min(move, solid.X-(object.X+object.W))
		case dx < 0:
			move = math.Max(move, solid.X+solid.W-object.X)
		case dy > 0:
			move = math.Min(move, solid.Y-(object.Y+object.H))
		case dy < 0:
			move = math.Max(move, solid.Y+solid.H-object.Y)
		}
	}

	// Never move backwards out of an overlap that already existed.
	if move*(dx+dy) < 0 {
		return 0
	}
	return move
}

// overlapsMoved reports whether object, shifted by dx, dy, overlaps other.
func overlapsMoved(object, other *resolv.Object, dx, dy float64) bool {
	x, y := object.X+dx, object.Y+dy
	return x < other.X+other.W && other.X < x+object.W &&
		y < other.Y+other.H && other.Y < y+object.H
}
