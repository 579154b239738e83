package elev

import (
	"errors"
	"testing"

	"elevsim/src/requests"
	"elevsim/src/types"
)

func newController(t *testing.T, start, dwell int) *Controller {
	t.Helper()
	c, err := New(0, 10, start, dwell)
	if err != nil {
		t.Fatalf("New(0, 10, %d, %d): %v", start, dwell, err)
	}
	return c
}

func TestNewCab(t *testing.T) {
	cab, err := NewCab(0, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	if cab.Floor() != 5 || cab.Direction() != types.Idle || cab.DoorOpen() {
		t.Errorf("new cab = floor %d dir %v open %v, want floor 5 IDLE closed", cab.Floor(), cab.Direction(), cab.DoorOpen())
	}

	tests := []struct {
		name            string
		min, max, start int
		want            error
	}{
		{"inverted bounds", 10, 0, 5, requests.ErrInvalidBounds},
		{"start below", 0, 10, -1, ErrInvalidStart},
		{"start above", 0, 10, 11, ErrInvalidStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCab(tt.min, tt.max, tt.start); !errors.Is(err, tt.want) {
				t.Errorf("NewCab error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewControllerValidation(t *testing.T) {
	cab, _ := NewCab(0, 10, 0)
	store, _ := requests.New(0, 9)
	if _, err := NewController(cab, store, 1); !errors.Is(err, ErrBoundsMismatch) {
		t.Errorf("mismatched bounds error = %v, want ErrBoundsMismatch", err)
	}
	if _, err := NewController(nil, store, 1); !errors.Is(err, ErrBoundsMismatch) {
		t.Errorf("nil cab error = %v, want ErrBoundsMismatch", err)
	}
	if _, err := New(0, 10, 12, 1); !errors.Is(err, ErrInvalidStart) {
		t.Errorf("New with bad start error = %v, want ErrInvalidStart", err)
	}
}

func TestDwellCoercedToOne(t *testing.T) {
	for _, dwell := range []int{0, -2} {
		c := newController(t, 0, dwell)
		if c.DwellTicks() != 1 {
			t.Errorf("dwell %d coerced to %d, want 1", dwell, c.DwellTicks())
		}
	}
}

func TestMoveOneFloorClampsAtBounds(t *testing.T) {
	top, _ := NewCab(0, 10, 10)
	top.moveOneFloor(types.Up)
	if top.Floor() != 10 {
		t.Errorf("moving up at top: floor %d, want 10", top.Floor())
	}

	bottom, _ := NewCab(0, 10, 0)
	bottom.moveOneFloor(types.Down)
	if bottom.Floor() != 0 {
		t.Errorf("moving down at bottom: floor %d, want 0", bottom.Floor())
	}

	mid, _ := NewCab(0, 10, 4)
	mid.moveOneFloor(types.Idle)
	mid.moveOneFloor(types.Up)
	if mid.Floor() != 5 {
		t.Errorf("idle then up from 4: floor %d, want 5", mid.Floor())
	}
	mid.moveOneFloor(types.Down)
	if mid.Floor() != 4 {
		t.Errorf("down from 5: floor %d, want 4", mid.Floor())
	}
}

func TestSubmissionsForwarded(t *testing.T) {
	c := newController(t, 0, 1)
	if err := c.SubmitCarCall(-1); !errors.Is(err, requests.ErrInvalidFloor) {
		t.Errorf("SubmitCarCall(-1) error = %v, want ErrInvalidFloor", err)
	}
	if err := c.SubmitHallCall(15, types.Up); !errors.Is(err, requests.ErrInvalidFloor) {
		t.Errorf("SubmitHallCall(15, UP) error = %v, want ErrInvalidFloor", err)
	}
	if err := c.SubmitHallCall(3, types.Idle); !errors.Is(err, requests.ErrInvalidDirection) {
		t.Errorf("SubmitHallCall(3, IDLE) error = %v, want ErrInvalidDirection", err)
	}
	if c.Store().HasAnyRequests() {
		t.Errorf("rejected calls left requests behind: %+v", c.Store().Sets())
	}
}

func TestSnapshot(t *testing.T) {
	c := newController(t, 2, 2)
	_ = c.SubmitHallCall(4, types.Up)
	_ = c.SubmitCarCall(7)
	_ = c.SubmitCarCall(2)

	c.Tick()
	snap := c.Snapshot()
	if snap.Floor != 2 || !snap.DoorOpen || snap.DwellRemaining != 2 {
		t.Errorf("snapshot after stop = %+v", snap)
	}

	want := "floor=2 dir=IDLE door=OPEN | up=[4] down=[] car=[7]"
	if got := snap.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	clone := snap.Clone()
	clone.Requests.CarStops[0] = 1
	if c.Snapshot().Requests.CarStops[0] != 7 || snap.Requests.CarStops[0] != 7 {
		t.Error("mutating a cloned snapshot leaked into the controller")
	}
}
