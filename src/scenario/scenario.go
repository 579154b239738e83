// Package scenario scripts calls against a controller and drives it tick by tick.
package scenario

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"elevsim/src/elev"
	"elevsim/src/types"
)

type Kind string

const (
	Hall Kind = "hall"
	Car  Kind = "car"
)

// Call is submitted when the run reaches Tick, or, when OnOpen is set, the first time the doors
// are open at floor *OnOpen. Dir is only used by hall calls.
type Call struct {
	Tick   int             `yaml:"tick"`
	Kind   Kind            `yaml:"kind"`
	Floor  int             `yaml:"floor"`
	Dir    types.Direction `yaml:"dir"`
	OnOpen *int            `yaml:"on_open"`
}

type Scenario struct {
	Calls []Call `yaml:"calls"`
}

// Result summarizes a finished run.
type Result struct {
	Ticks int
	Done  bool
}

// Observer sees the state before every tick.
type Observer func(tick int, snap elev.Snapshot)

// Demo is the built-in run: an up call at 3 and a down call at 8, and the rider boarding at 3 asks for 9.
func Demo() Scenario {
	three := 3
	return Scenario{Calls: []Call{
		{Tick: 0, Kind: Hall, Floor: 3, Dir: types.Up},
		{Tick: 0, Kind: Hall, Floor: 8, Dir: types.Down},
		{Kind: Car, Floor: 9, OnOpen: &three},
	}}
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, err
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate checks the script itself. Floors and directions are checked by the request store on submit.
func (sc Scenario) Validate() error {
	for i, call := range sc.Calls {
		if call.Kind != Hall && call.Kind != Car {
			return fmt.Errorf("call %d: unknown kind %q", i, call.Kind)
		}
		if call.Tick < 0 {
			return fmt.Errorf("call %d: negative tick %d", i, call.Tick)
		}
	}
	return nil
}

func submit(ctrl *elev.Controller, call Call) error {
	if call.Kind == Hall {
		return ctrl.SubmitHallCall(call.Floor, call.Dir)
	}
	return ctrl.SubmitCarCall(call.Floor)
}

// Run drives ctrl for at most maxTicks ticks. It stops early once the controller is done
// and no timed call is left. A rejected call aborts the run.
func Run(ctrl *elev.Controller, sc Scenario, maxTicks int, observe Observer) (Result, error) {
	fired := make([]bool, len(sc.Calls))
	lastTick := 0
	for _, call := range sc.Calls {
		if call.OnOpen == nil {
			lastTick = max(lastTick, call.Tick)
		}
	}

	for t := 0; t < maxTicks; t++ {
		for i, call := range sc.Calls {
			if fired[i] {
				continue
			}
			due := call.OnOpen == nil && call.Tick == t
			opened := call.OnOpen != nil && ctrl.DoorOpen() && ctrl.Floor() == *call.OnOpen
			if !due && !opened {
				continue
			}
			fired[i] = true
			if err := submit(ctrl, call); err != nil {
				return Result{Ticks: t}, fmt.Errorf("tick %d: %w", t, err)
			}
		}

		if observe != nil {
			observe(t, ctrl.Snapshot())
		}
		ctrl.Tick()

		if ctrl.Done() && t >= lastTick {
			slog.Info("Run finished", "ticks", t+1, "floor", ctrl.Floor())
			return Result{Ticks: t + 1, Done: true}, nil
		}
	}
	slog.Warn("Tick limit reached", "ticks", maxTicks, "pending", ctrl.Store().Len())
	return Result{Ticks: maxTicks, Done: ctrl.Done()}, nil
}
