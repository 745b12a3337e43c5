package playercontrol

import "math"

func sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func isZero(v Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// yawOf returns the facing angle of dir, measured from +X toward +Y.
func yawOf(dir Vec2) float64 {
	return math.Atan2(dir.Y, dir.X)
}

// speedSignal is max(|x|, |y|) of the normalized motion, 0 when stationary.
func speedSignal(motion Vec2) float64 {
	length := math.Hypot(motion.X, motion.Y)
	if length == 0 {
		return 0
	}
	return math.Max(math.Abs(motion.X/length), math.Abs(motion.Y/length))
}
