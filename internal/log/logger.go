package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "tourbook"

func New(environment string, level string) zerolog.Logger {
	return NewWithWriter(environment, level, os.Stdout)
}

// NewWithWriter writes JSON lines in production, where logs are shipped, and
// a readable console format everywhere else.
func NewWithWriter(environment, level string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	if environment != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Str("service", serviceName).
		Str("env", environment).
		Logger()

	zerolog.SetGlobalLevel(resolveLevel(environment, level))
	return logger
}

func resolveLevel(environment, level string) zerolog.Level {
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			return parsed
		}
	}
	if environment == "production" {
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}
