// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHeader indicates a missing or non-positive dimension header.
	ErrBadHeader = errors.New("matrixio: invalid dimension header")

	// ErrTruncated indicates the payload ended before n·(n+1) values were read.
	ErrTruncated = errors.New("matrixio: truncated matrix data")

	// ErrInvalidRange indicates a non-positive value range for Generate.
	ErrInvalidRange = errors.New("matrixio: value range must be > 0")
)

func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
