// Package log builds the zerolog loggers used by castgen.
package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidFormat = errors.New("unexpected log format. opts: pretty,json,text")
)

// SetupLogger returns a stderr logger at the given level and format.
func SetupLogger(level string, format string) (zerolog.Logger, error) {
	return New(os.Stderr, level, format)
}

// New returns a logger writing to w. level is any level accepted by
// zerolog.ParseLevel; format is one of pretty, json or text.
func New(w io.Writer, level string, format string) (zerolog.Logger, error) {
	log := zerolog.New(w)
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return log, errors.Wrapf(err, "parse level %q", level)
	}
	log = log.Level(lvl)

	log = log.With().Timestamp().Logger()

	switch format {
	case "pretty":
		log = log.Output(zerolog.ConsoleWriter{
			Out: w,
		})
	case "json":
	case "text":
		log = log.Output(zerolog.ConsoleWriter{
			Out:     w,
			NoColor: true,
		})
	default:
		return log, ErrInvalidFormat
	}

	return log, nil
}
