package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/scenario"
	"elevsim/src/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML simulation config")
	envPath := flag.String("env", "", "dotenv file with ELEVSIM_* overrides")
	scenarioPath := flag.String("scenario", "", "YAML scenario, defaults to the built-in demo")
	minFloor := flag.Int("min", config.MinFloor, "lowest floor")
	maxFloor := flag.Int("max", config.MaxFloor, "highest floor")
	startFloor := flag.Int("start", config.StartFloor, "floor the cab starts at")
	dwell := flag.Int("dwell", config.DwellTicks, "ticks the doors stay open")
	maxTicks := flag.Int("ticks", config.MaxTicks, "tick limit")
	logLevel := flag.String("log-level", config.LogLevel, "debug, info, warn or error")
	logFile := flag.String("log-file", "", "also write logs to this file")
	estimate := flag.Bool("estimate", false, "log ticks until each initially pending floor is served")
	flag.Parse()

	cfg := config.Default()
	var err error
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if err := cfg.LoadEnv(*envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min":
			cfg.MinFloor = *minFloor
		case "max":
			cfg.MaxFloor = *maxFloor
		case "start":
			cfg.StartFloor = *startFloor
		case "dwell":
			cfg.DwellTicks = *dwell
		case "ticks":
			cfg.MaxTicks = *maxTicks
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	level, _ := cfg.SlogLevel()
	closeLog, err := utils.InitLogger(os.Stderr, level, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	sc := scenario.Demo()
	if *scenarioPath != "" {
		if sc, err = scenario.Load(*scenarioPath); err != nil {
			slog.Error("Loading scenario failed", "err", err)
			return 1
		}
	}

	ctrl, err := elev.New(cfg.MinFloor, cfg.MaxFloor, cfg.StartFloor, cfg.DwellTicks)
	if err != nil {
		slog.Error("Building elevator failed", "err", err)
		return 1
	}
	slog.Info("Simulation starting",
		"minFloor", cfg.MinFloor,
		"maxFloor", cfg.MaxFloor,
		"startFloor", cfg.StartFloor,
		"dwellTicks", ctrl.DwellTicks(),
		"calls", len(sc.Calls))

	estimated := !*estimate
	res, err := scenario.Run(ctrl, sc, cfg.MaxTicks, func(tick int, snap elev.Snapshot) {
		if !estimated {
			estimated = true
			logEstimates(ctrl, snap, cfg.MaxTicks)
		}
		utils.PrintStatus(os.Stdout, tick, snap)
	})
	if err != nil {
		slog.Error("Run aborted", "err", err)
		return 1
	}
	slog.Info("Simulation stopped", "ticks", res.Ticks, "done", res.Done)
	return 0
}

func logEstimates(ctrl *elev.Controller, snap elev.Snapshot, limit int) {
	seen := map[int]bool{}
	for _, floors := range [][]int{snap.Requests.UpHall, snap.Requests.DownHall, snap.Requests.CarStops} {
		for _, floor := range floors {
			if seen[floor] {
				continue
			}
			seen[floor] = true
			ticks, err := ctrl.TicksUntilServed(floor, limit)
			if err != nil {
				slog.Warn("No estimate", "floor", floor, "err", err)
				continue
			}
			slog.Info("Estimate", "floor", floor, "ticks", ticks)
		}
	}
}
