package elev

import (
	"fmt"
	"slices"

	"elevsim/src/requests"
)

// TicksUntilServed simulates a copy of the controller and returns how many ticks pass until the doors
// open at floor with its requests cleared. The real cab and store are left untouched.
// Fails with ErrNotServed when nothing is pending at floor or it is not served within limit ticks.
func (c *Controller) TicksUntilServed(floor, limit int) (int, error) {
	minFloor, maxFloor := c.store.Bounds()
	if floor < minFloor || floor > maxFloor {
		return 0, fmt.Errorf("%w: %d outside [%d, %d]", requests.ErrInvalidFloor, floor, minFloor, maxFloor)
	}
	if !pendingAt(c.store.Sets(), floor) {
		return 0, fmt.Errorf("%w: nothing pending at floor %d", ErrNotServed, floor)
	}

	sim, err := c.clone()
	if err != nil {
		return 0, err
	}
	for ticks := 1; ticks <= limit; ticks++ {
		sim.Tick()
		if sim.cab.doorOpen && sim.cab.floor == floor && !pendingAt(sim.store.Sets(), floor) {
			return ticks, nil
		}
	}
	return 0, fmt.Errorf("%w: floor %d within %d ticks", ErrNotServed, floor, limit)
}

// clone rebuilds the controller from a deep copy of its requests.
func (c *Controller) clone() (*Controller, error) {
	minFloor, maxFloor := c.store.Bounds()
	store, err := requests.Restore(minFloor, maxFloor, c.store.Sets())
	if err != nil {
		return nil, err
	}
	cab := *c.cab
	return &Controller{cab: &cab, store: store, dwellTicks: c.dwellTicks}, nil
}

func pendingAt(sets requests.Sets, floor int) bool {
	return slices.Contains(sets.UpHall, floor) ||
		slices.Contains(sets.DownHall, floor) ||
		slices.Contains(sets.CarStops, floor)
}
