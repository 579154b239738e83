package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"elevsim/src/elev"
)

// InitLogger installs a text slog handler with compact time and file:line source as the default logger.
// When logFile is set, output goes to both w and the file. The returned close func releases the file.
func InitLogger(w io.Writer, level slog.Level, logFile string) (func() error, error) {
	closeFn := func() error { return nil }
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return closeFn, err
		}
		w = io.MultiWriter(w, file)
		closeFn = file.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler))
	return closeFn, nil
}

// PrintStatus writes one line per tick: the tick number and the snapshot taken before it.
func PrintStatus(w io.Writer, tick int, snap elev.Snapshot) {
	fmt.Fprintf(w, "t=%02d  %s\n", tick, snap)
}
