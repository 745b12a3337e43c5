package animations

import "testing"

func TestAdvanceFiresEachFrameEntered(t *testing.T) {
	a := NewAnimation(0, 3, 1, 1)
	var entered []int
	a.OnFrame = func(frame int) { entered = append(entered, frame) }

	// The counter starts full, so the first frame change needs more than one tick.
	a.Advance(1)
	if len(entered) != 0 {
		t.Fatalf("entered %v after one tick, want none", entered)
	}

	a.Advance(2.5)
	want := []int{1, 2, 3}
	if len(entered) != len(want) {
		t.Fatalf("entered %v, want %v", entered, want)
	}
	for i := range want {
		if entered[i] != want[i] {
			t.Fatalf("entered %v, want %v", entered, want)
		}
	}

	a.Advance(1)
	if a.Frame() != 0 || !a.Looped {
		t.Fatalf("frame = %d looped = %v, want wrap to 0", a.Frame(), a.Looped)
	}
}

func TestFreezeOnComplete(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0.5)
	a.FreezeOnComplete = true

	a.Advance(10)
	if a.Frame() != 2 || !a.Looped {
		t.Fatalf("frame = %d looped = %v, want frozen on 2", a.Frame(), a.Looped)
	}
}

func TestAdvanceIgnoresNonPositiveTicks(t *testing.T) {
	a := NewAnimation(0, 3, 1, 1)
	a.Advance(0)
	a.Advance(-4)
	if a.Frame() != 0 {
		t.Fatalf("frame = %d, want 0", a.Frame())
	}
}
