// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds a human-readable console logger at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}

	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}
