package animations

// Animation steps through frame indices First..Last. Time is measured in
// ticks; callers decide what a tick is (a game frame, or a distance walked).
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping

	// OnFrame is called every time the animation enters a frame.
	OnFrame func(frame int)
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	a.Advance(1)
}

// Advance moves the animation forward by ticks, which may span several frames.
// OnFrame fires once per frame entered, in order.
func (a *Animation) Advance(ticks float32) {
	if ticks <= 0 || a.Step <= 0 {
		return
	}
	a.frameCounter -= ticks
	for a.frameCounter < 0 {
		a.frameCounter += a.SpeedInTps
		if a.SpeedInTps <= 0 {
			a.frameCounter = 0
		}

		next := a.frame + a.Step
		if next > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				a.frameCounter = 0
				return
			}
			// loop back to the beginning
			next = a.First
		}
		a.frame = next
		if a.OnFrame != nil {
			a.OnFrame(a.frame)
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress returns how far the animation is through its cycle, in [0, 1).
func (a *Animation) Progress() float64 {
	span := a.Last - a.First + 1
	if span <= 0 {
		return 0
	}
	return float64(a.frame-a.First) / float64(span)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}
