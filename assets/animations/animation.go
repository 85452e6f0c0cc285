// Package animations steps frame indices through a sprite sheet strip.
package animations

// Animation walks frames First..Last in increments of Step, holding each
// frame for SpeedInTps ticks.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	FreezeOnComplete bool    // stay on Last instead of wrapping to First

	frameCounter float32
	frame        int
	loops        int
	done         bool
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if a.done {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.step()
	if a.frame <= a.Last {
		return
	}
	a.loops++
	if a.FreezeOnComplete {
		a.frame = a.Last
		a.done = true
		return
	}
	a.frame = a.First
}

func (a *Animation) step() int {
	if a.Step <= 0 {
		return 1
	}
	return a.Step
}

func (a *Animation) Frame() int {
	return a.frame
}

// Loops is the number of times the animation ran past its last frame.
func (a *Animation) Loops() int {
	return a.loops
}

// Done reports whether a frozen animation reached its last frame.
func (a *Animation) Done() bool {
	return a.done
}

// FrameCount is the number of distinct frames the animation shows.
func (a *Animation) FrameCount() int {
	if a.Last < a.First {
		return 0
	}
	return (a.Last-a.First)/a.step() + 1
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.loops = 0
	a.done = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
