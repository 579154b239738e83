package elev

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/requests"
	"elevsim/src/types"
)

// Snapshot is a read-only view of the cab and its pending requests, taken between ticks.
type Snapshot struct {
	Floor          int
	Dir            types.Direction
	DoorOpen       bool
	DwellRemaining int
	Requests       requests.Sets
}

// Snapshot copies the current state. It never mutates the controller.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Floor:          c.cab.floor,
		Dir:            c.cab.dir,
		DoorOpen:       c.cab.doorOpen,
		DwellRemaining: c.cab.door.Remaining(),
		Requests:       c.store.Sets(),
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	clone := Snapshot{}
	if err := deepcopy.Copy(&clone, s); err != nil {
		panic(err)
	}
	return clone
}

func (s Snapshot) String() string {
	door := "CLOSED"
	if s.DoorOpen {
		door = "OPEN"
	}
	return fmt.Sprintf("floor=%d dir=%s door=%s | up=%v down=%v car=%v",
		s.Floor, s.Dir, door, s.Requests.UpHall, s.Requests.DownHall, s.Requests.CarStops)
}
