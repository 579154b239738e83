package elev

import (
	"fmt"
	"log/slog"

	"elevsim/src/requests"
	"elevsim/src/types"
)

// NewCab places an idle cab with closed doors at startFloor.
func NewCab(minFloor, maxFloor, startFloor int) (*Cab, error) {
	if minFloor > maxFloor {
		return nil, fmt.Errorf("%w: min %d > max %d", requests.ErrInvalidBounds, minFloor, maxFloor)
	}
	if startFloor < minFloor || startFloor > maxFloor {
		return nil, fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidStart, startFloor, minFloor, maxFloor)
	}
	return &Cab{
		minFloor: minFloor,
		maxFloor: maxFloor,
		floor:    startFloor,
		dir:      types.Idle,
	}, nil
}

// NewController wires a cab to a store covering the same floors. dwellTicks below 1 is raised to 1.
func NewController(cab *Cab, store *requests.Store, dwellTicks int) (*Controller, error) {
	if cab == nil || store == nil {
		return nil, fmt.Errorf("%w: cab and store are required", ErrBoundsMismatch)
	}
	minFloor, maxFloor := store.Bounds()
	if cab.minFloor != minFloor || cab.maxFloor != maxFloor {
		return nil, fmt.Errorf("%w: cab [%d, %d], store [%d, %d]",
			ErrBoundsMismatch, cab.minFloor, cab.maxFloor, minFloor, maxFloor)
	}
	ctrl := &Controller{cab: cab, store: store, dwellTicks: max(dwellTicks, 1)}
	slog.Debug("Controller initialized",
		"minFloor", minFloor,
		"maxFloor", maxFloor,
		"floor", cab.floor,
		"dwellTicks", ctrl.dwellTicks)
	return ctrl, nil
}

// New builds a cab, its request store and the controller owning both.
func New(minFloor, maxFloor, startFloor, dwellTicks int) (*Controller, error) {
	store, err := requests.New(minFloor, maxFloor)
	if err != nil {
		return nil, err
	}
	cab, err := NewCab(minFloor, maxFloor, startFloor)
	if err != nil {
		return nil, err
	}
	return NewController(cab, store, dwellTicks)
}

func (cab *Cab) Floor() int { return cab.floor }
func (cab *Cab) Direction() types.Direction { return cab.dir }
func (cab *Cab) DoorOpen() bool { return cab.doorOpen }
func (cab *Cab) DwellRemaining() int { return cab.door.Remaining() }

func (cab *Cab) Bounds() (minFloor, maxFloor int) {
	return cab.minFloor, cab.maxFloor
}

func (cab *Cab) atTop() bool { return cab.floor == cab.maxFloor }
func (cab *Cab) atBottom() bool { return cab.floor == cab.minFloor }

// moveOneFloor steps the cab one floor in dir. Moving past either end of the shaft is a no-op.
func (cab *Cab) moveOneFloor(dir types.Direction) {
	switch {
	case dir == types.Up && !cab.atTop():
		cab.floor++
	case dir == types.Down && !cab.atBottom():
		cab.floor--
	}
}

func (cab *Cab) openDoor(dwellTicks int) {
	cab.doorOpen = true
	cab.door.Start(dwellTicks)
}

func (c *Controller) Cab() *Cab { return c.cab }
func (c *Controller) Store() *requests.Store { return c.store }
func (c *Controller) DwellTicks() int { return c.dwellTicks }
func (c *Controller) Floor() int { return c.cab.floor }
func (c *Controller) Direction() types.Direction { return c.cab.dir }
func (c *Controller) DoorOpen() bool { return c.cab.doorOpen }

func (c *Controller) SubmitHallCall(floor int, dir types.Direction) error {
	if err := c.store.SubmitHallCall(floor, dir); err != nil {
		slog.Warn("Hall call rejected", "floor", floor, "direction", dir, "err", err)
		return err
	}
	slog.Debug("Hall call submitted", "floor", floor, "direction", dir)
	return nil
}

func (c *Controller) SubmitCarCall(floor int) error {
	if err := c.store.SubmitCarCall(floor); err != nil {
		slog.Warn("Car call rejected", "floor", floor, "err", err)
		return err
	}
	slog.Debug("Car call submitted", "floor", floor)
	return nil
}
