// Contains the tick transition of the single cab state machine.
package elev

import (
	"log/slog"

	"elevsim/src/types"
)

// Tick advances the simulation by one logical time unit. Exactly one of the following happens:
//  1. Doors open: count down the dwell and close the doors when it runs out.
//  2. Work at this floor for the current direction: clear the floor and open the doors.
//  3. Idle: choose a departure direction. The cab leaves on the next tick.
//  4. Travelling: continue, reverse or go idle, see travel.
func (c *Controller) Tick() {
	cab := c.cab

	if cab.doorOpen {
		if cab.door.Tick() {
			cab.doorOpen = false
			slog.Debug("Doors closed", "floor", cab.floor, "direction", cab.dir)
		}
		return
	}

	if c.store.ShouldStopHere(cab.floor, cab.dir) {
		c.store.ClearAt(cab.floor)
		cab.openDoor(c.dwellTicks)
		slog.Debug("Stopping at floor", "floor", cab.floor, "direction", cab.dir, "dwell", c.dwellTicks)
		return
	}

	if !cab.dir.Moving() {
		cab.dir = c.store.PickFromIdle(cab.floor)
		if cab.dir.Moving() {
			slog.Debug("Leaving idle", "floor", cab.floor, "direction", cab.dir)
		}
		return
	}

	c.travel()
}

// travel handles a closed-door cab with a travel direction. In order of priority:
//   - requests ahead: move on
//   - only opposite-direction hall calls ahead: move on towards the farthest turning point
//   - opposite-direction hall call here: turn around in place so the next tick stops for it
//   - requests behind: reverse and move
//   - nothing: go idle
func (c *Controller) travel() {
	cab := c.cab
	switch {
	case c.store.HasAhead(cab.floor, cab.dir):
		cab.moveOneFloor(cab.dir)
		slog.Debug("Continuing", "floor", cab.floor, "direction", cab.dir)
	case c.store.HasOppositeAhead(cab.floor, cab.dir):
		cab.moveOneFloor(cab.dir)
		slog.Debug("Sweeping to opposite call", "floor", cab.floor, "direction", cab.dir)
	case c.store.HasOppositeHere(cab.floor, cab.dir):
		cab.dir = cab.dir.Opposite()
		slog.Debug("Turning around for hall call", "floor", cab.floor, "direction", cab.dir)
	case c.store.HasBehind(cab.floor, cab.dir):
		cab.dir = cab.dir.Opposite()
		cab.moveOneFloor(cab.dir)
		slog.Debug("Reversing", "floor", cab.floor, "direction", cab.dir)
	default:
		slog.Debug("No requests, going idle", "floor", cab.floor)
		cab.dir = types.Idle
	}
}

// Done reports the natural end of a run: nothing pending, idle and doors closed.
func (c *Controller) Done() bool {
	return !c.store.HasAnyRequests() && c.cab.dir == types.Idle && !c.cab.doorOpen
}
