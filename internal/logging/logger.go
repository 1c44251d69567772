package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT.
// Defaults to JSON at info level.
func Init() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = parsed
	}

	var logger zerolog.Logger
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger = logger.Level(level).With().Timestamp().Str("app", "recyclemart").Logger()
	log.Logger = logger
	return logger
}
