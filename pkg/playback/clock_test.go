package playback

import (
	"testing"
	"time"
)

func TestManualClockFiresInOrder(t *testing.T) {
	clock := NewManualClock()
	start := clock.Now()
	var got []string

	clock.Every(300*time.Millisecond, func() { got = append(got, "a") })
	clock.Every(200*time.Millisecond, func() { got = append(got, "b") })
	clock.Advance(600 * time.Millisecond)

	// b@200 a@300 b@400 then a@600 and b@600 in either order.
	if len(got) != 5 || got[0] != "b" || got[1] != "a" || got[2] != "b" {
		t.Errorf("firing order = %v", got)
	}
	if d := clock.Now().Sub(start); d != 600*time.Millisecond {
		t.Errorf("Now() advanced by %v, want 600ms", d)
	}
}

func TestManualClockStopFromCallback(t *testing.T) {
	clock := NewManualClock()
	n := 0
	var stop func()
	stop = clock.Every(time.Second, func() {
		n++
		if n == 2 {
			stop()
		}
	})
	clock.Advance(10 * time.Second)
	if n != 2 {
		t.Errorf("fired %d times, want 2", n)
	}
	if clock.Active() != 0 {
		t.Errorf("Active() = %d, want 0", clock.Active())
	}
	stop()
}
