package timer

import "testing"

func TestDoorTimerCountdown(t *testing.T) {
	var dt DoorTimer
	dt.Start(3)
	for _, want := range []int{2, 1} {
		if dt.Tick() {
			t.Fatalf("expired early with %d remaining", dt.Remaining())
		}
		if dt.Remaining() != want {
			t.Errorf("Remaining = %d, want %d", dt.Remaining(), want)
		}
	}
	if !dt.Tick() {
		t.Error("expected expiry on third tick")
	}
	if dt.Active() || dt.Tick() {
		t.Error("expired timer must stay idle")
	}
}

func TestDoorTimerCoercesShortDwell(t *testing.T) {
	for _, ticks := range []int{0, -4} {
		var dt DoorTimer
		dt.Start(ticks)
		if dt.Remaining() != 1 {
			t.Errorf("Start(%d): Remaining = %d, want 1", ticks, dt.Remaining())
		}
	}
}

func TestDoorTimerRestart(t *testing.T) {
	var dt DoorTimer
	dt.Start(2)
	dt.Tick()
	dt.Start(2)
	if dt.Remaining() != 2 {
		t.Errorf("restart: Remaining = %d, want 2", dt.Remaining())
	}
}
