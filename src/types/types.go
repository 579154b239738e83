package types

import (
	"fmt"
	"strings"
)

// Direction is the travel direction of the cab. Idle doubles as "no active travel direction".
// Up and Down carry the sign of a one floor move.
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
	Idle Direction = 0
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Idle:
		return "IDLE"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the reverse travel direction. Idle stays Idle.
func (d Direction) Opposite() Direction {
	return -d
}

// Moving reports whether d is one of the two travel directions.
func (d Direction) Moving() bool {
	return d == Up || d == Down
}

// ParseDirection accepts up, down and idle in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "idle", "":
		return Idle, nil
	}
	return Idle, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(d.String())), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
