package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func setupLogging(out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("DEBOUNCE_VERBOSE") != "" {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    os.Getenv("NO_COLOR") != "",
		TimeFormat: "15:04:05.000",
	}

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	logger.Debug().Msg("Running in verbose mode due to DEBOUNCE_VERBOSE")

	return logger
}
