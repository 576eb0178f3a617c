package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Console output in debug mode, plain JSON
// otherwise.
func New(ginMode string) zerolog.Logger {
	var logger zerolog.Logger
	if ginMode == "release" {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
	return logger.Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
