// State types live here so the controller in fsm.go can own a cab without exposing its fields.
package elev

import (
	"errors"

	"elevsim/src/requests"
	"elevsim/src/timer"
	"elevsim/src/types"
)

var (
	ErrInvalidStart   = errors.New("start floor out of range")
	ErrBoundsMismatch = errors.New("cab and request store bounds differ")
	ErrNotServed      = errors.New("floor not served")
)

// Cab is the physical state of the car. Only a Controller mutates it.
type Cab struct {
	minFloor int
	maxFloor int
	floor    int
	dir      types.Direction
	doorOpen bool
	door     timer.DoorTimer
}

// Controller couples one cab to the request store it serves and advances both one tick at a time.
// It is not safe for concurrent use.
type Controller struct {
	cab        *Cab
	store      *requests.Store
	dwellTicks int
}
