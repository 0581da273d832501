package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide JSON logger at the configured level. The
// DB sink is attached later via MultiHandler, once a connection exists.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
}
