package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"elevsim/src/elev"
	"elevsim/src/requests"
	"elevsim/src/types"
)

func TestInitLoggerFormat(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "run.log")
	closeFn, err := InitLogger(&buf, slog.LevelDebug, logPath)
	if err != nil {
		t.Fatal(err)
	}
	slog.Debug("Doors closed", "floor", 3)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	line := buf.String()
	if !regexp.MustCompile(`time=\d\d:\d\d:\d\d `).MatchString(line) {
		t.Errorf("time not compact: %q", line)
	}
	if !strings.Contains(line, "source=utils_test.go:") {
		t.Errorf("source not shortened: %q", line)
	}
	fromFile, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(fromFile) != line {
		t.Errorf("log file = %q, want %q", fromFile, line)
	}
}

func TestInitLoggerLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	if _, err := InitLogger(&buf, slog.LevelWarn, ""); err != nil {
		t.Fatal(err)
	}
	slog.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStatus(&buf, 7, elev.Snapshot{
		Floor:    4,
		Dir:      types.Down,
		DoorOpen: true,
		Requests: requests.Sets{UpHall: []int{1}, CarStops: []int{0, 2}},
	})
	want := "t=07  floor=4 dir=DOWN door=OPEN | up=[1] down=[] car=[0 2]\n"
	if buf.String() != want {
		t.Errorf("PrintStatus = %q, want %q", buf.String(), want)
	}
}
