package animations

import "testing"

func tick(a *Animation, n int) {
	for i := 0; i < n; i++ {
		a.Update()
	}
}

func TestAnimationAdvances(t *testing.T) {
	a := NewAnimation(0, 3, 1, 2)
	if a.Frame() != 0 {
		t.Fatalf("start frame = %d, want 0", a.Frame())
	}

	// counter starts at 2 and goes negative on the third tick
	tests := []struct {
		ticks int
		want  int
	}{
		{2, 0},
		{1, 1},
		{3, 2},
		{3, 3},
	}
	for i, tt := range tests {
		tick(a, tt.ticks)
		if got := a.Frame(); got != tt.want {
			t.Errorf("step %d: frame = %d, want %d", i, got, tt.want)
		}
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0)

	// speed 0 moves one frame per tick
	tick(a, 4)
	if a.Frame() != 0 {
		t.Errorf("frame after wrap = %d, want 0", a.Frame())
	}
	if a.Loops() != 1 {
		t.Errorf("loops = %d, want 1", a.Loops())
	}

	tick(a, 8)
	if a.Loops() != 3 {
		t.Errorf("loops = %d, want 3", a.Loops())
	}
	if a.Done() {
		t.Error("looping animation reported done")
	}
}

func TestAnimationFreeze(t *testing.T) {
	a := NewAnimation(2, 4, 1, 0)
	a.FreezeOnComplete = true

	tick(a, 10)
	if a.Frame() != 4 {
		t.Errorf("frame = %d, want 4", a.Frame())
	}
	if !a.Done() {
		t.Error("frozen animation not done")
	}

	a.Restart()
	if a.Frame() != 2 || a.Done() || a.Loops() != 0 {
		t.Errorf("restart left frame=%d done=%v loops=%d", a.Frame(), a.Done(), a.Loops())
	}
}

func TestAnimationStep(t *testing.T) {
	tests := []struct {
		name  string
		anim  *Animation
		count int
	}{
		{"single", NewAnimation(0, 0, 1, 1), 1},
		{"four", NewAnimation(0, 3, 1, 1), 4},
		{"every other", NewAnimation(0, 6, 2, 1), 4},
		{"zero step", NewAnimation(1, 3, 0, 1), 3},
		{"reversed", NewAnimation(3, 1, 1, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.anim.FrameCount(); got != tt.count {
				t.Errorf("FrameCount() = %d, want %d", got, tt.count)
			}
		})
	}
}
