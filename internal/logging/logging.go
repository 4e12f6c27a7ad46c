package logging

import (
	"io"
	"log"
	"log/slog"
)

// Level is the level shared by every logger built with Setup.
// Changing it takes effect immediately, which is how config hot reload adjusts verbosity.
var Level = new(slog.LevelVar)

// Setup installs a text slog handler writing to w as the default logger.
// The standard log package is redirected to the same sink.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	Level.Set(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return logger
}
