// Package requests holds the pending hall and car calls of a single cab and answers the SCAN queries
// the cab controller asks every tick.
package requests

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// Store keeps hall calls split by direction and car calls as three independent floor sets.
// A floor may be pending in any combination of the three. Not safe for concurrent use.
type Store struct {
	minFloor int
	maxFloor int
	upHall   floorSet
	downHall floorSet
	carStops floorSet
}

// Sets is a detached copy of the pending requests, sorted ascending.
type Sets struct {
	UpHall   []int
	DownHall []int
	CarStops []int
}

func New(minFloor, maxFloor int) (*Store, error) {
	if minFloor > maxFloor {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidBounds, minFloor, maxFloor)
	}
	return &Store{minFloor: minFloor, maxFloor: maxFloor}, nil
}

func (s *Store) Bounds() (minFloor, maxFloor int) {
	return s.minFloor, s.maxFloor
}

func (s *Store) validate(floor int) error {
	if floor < s.minFloor || floor > s.maxFloor {
		return fmt.Errorf("%w: %d outside [%d, %d]", ErrInvalidFloor, floor, s.minFloor, s.maxFloor)
	}
	return nil
}

// SubmitHallCall registers a landing call. Re-submitting a pending call is a no-op.
func (s *Store) SubmitHallCall(floor int, dir types.Direction) error {
	if err := s.validate(floor); err != nil {
		return err
	}
	switch dir {
	case types.Up:
		s.upHall.add(floor)
	case types.Down:
		s.downHall.add(floor)
	default:
		return fmt.Errorf("%w: hall call must be UP or DOWN, got %v", ErrInvalidDirection, dir)
	}
	return nil
}

// SubmitCarCall registers a destination pressed inside the cab. Re-submitting is a no-op.
func (s *Store) SubmitCarCall(floor int) error {
	if err := s.validate(floor); err != nil {
		return err
	}
	s.carStops.add(floor)
	return nil
}

// ShouldStopHere reports whether a cab at floor travelling in dir has work at this floor.
// A moving cab only stops for hall calls in its own direction; an idle cab stops for any.
func (s *Store) ShouldStopHere(floor int, dir types.Direction) bool {
	if s.carStops.contains(floor) {
		return true
	}
	switch dir {
	case types.Up:
		return s.upHall.contains(floor)
	case types.Down:
		return s.downHall.contains(floor)
	}
	return s.upHall.contains(floor) || s.downHall.contains(floor)
}

// ClearAt drops every request at floor, regardless of direction.
func (s *Store) ClearAt(floor int) {
	s.carStops.remove(floor)
	s.upHall.remove(floor)
	s.downHall.remove(floor)
}

func (s *Store) HasAnyRequests() bool {
	return !(s.upHall.empty() && s.downHall.empty() && s.carStops.empty())
}

// Len counts pending (floor, kind) entries across the three sets.
func (s *Store) Len() int {
	return len(s.upHall.floors) + len(s.downHall.floors) + len(s.carStops.floors)
}

// HasAhead reports car stops or same-direction hall calls strictly ahead of floor.
// Opposite-direction hall calls are deliberately not counted.
func (s *Store) HasAhead(floor int, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return s.upHall.hasAbove(floor) || s.carStops.hasAbove(floor)
	case types.Down:
		return s.downHall.hasBelow(floor) || s.carStops.hasBelow(floor)
	}
	return false
}

// HasBehind is the mirror of HasAhead: car stops or same-direction hall calls strictly behind floor.
func (s *Store) HasBehind(floor int, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return s.upHall.hasBelow(floor) || s.carStops.hasBelow(floor)
	case types.Down:
		return s.downHall.hasAbove(floor) || s.carStops.hasAbove(floor)
	}
	return false
}

// HasOppositeAhead reports hall calls for the reverse direction strictly ahead of floor,
// i.e. down calls above a cab going up, or up calls below a cab going down.
func (s *Store) HasOppositeAhead(floor int, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return s.downHall.hasAbove(floor)
	case types.Down:
		return s.upHall.hasBelow(floor)
	}
	return false
}

// HasOppositeHere reports a hall call at floor for the reverse of dir.
func (s *Store) HasOppositeHere(floor int, dir types.Direction) bool {
	switch dir {
	case types.Up:
		return s.downHall.contains(floor)
	case types.Down:
		return s.upHall.contains(floor)
	}
	return false
}

// PickFromIdle chooses a departure direction for an idle cab. Requests above win over requests below.
func (s *Store) PickFromIdle(floor int) types.Direction {
	if s.upHall.hasAbove(floor) || s.downHall.hasAbove(floor) || s.carStops.hasAbove(floor) {
		return types.Up
	}
	if s.upHall.hasBelow(floor) || s.downHall.hasBelow(floor) || s.carStops.hasBelow(floor) {
		return types.Down
	}
	return types.Idle
}

func (s *Store) UpHall() []int { return s.upHall.view() }
func (s *Store) DownHall() []int { return s.downHall.view() }
func (s *Store) CarStops() []int { return s.carStops.view() }

// Sets returns a deep copy of all pending requests. Mutating it does not affect the store.
func (s *Store) Sets() Sets {
	out := Sets{}
	if err := deepcopy.Copy(&out, Sets{
		UpHall:   s.upHall.floors,
		DownHall: s.downHall.floors,
		CarStops: s.carStops.floors,
	}); err != nil {
		panic(err)
	}
	return out
}

// Restore builds a store holding exactly the requests in sets.
func Restore(minFloor, maxFloor int, sets Sets) (*Store, error) {
	s, err := New(minFloor, maxFloor)
	if err != nil {
		return nil, err
	}
	for _, f := range sets.UpHall {
		if err := s.SubmitHallCall(f, types.Up); err != nil {
			return nil, err
		}
	}
	for _, f := range sets.DownHall {
		if err := s.SubmitHallCall(f, types.Down); err != nil {
			return nil, err
		}
	}
	for _, f := range sets.CarStops {
		if err := s.SubmitCarCall(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}
