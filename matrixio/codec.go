// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/gauss/matrix"
)

const (
	opRead      = "Read"
	opWrite     = "Write"
	opReadFile  = "ReadFile"
	opWriteFile = "WriteFile"
)

// byteOrder is fixed so files move between machines unchanged.
var byteOrder = binary.LittleEndian

// Read decodes one augmented matrix from r.
//
// Options are forwarded to matrix.NewAugmented; with the default finite-only
// policy a NaN/Inf payload value fails with matrix.ErrNaNInf.
//
// Errors:
//   - ErrBadHeader: header missing or n <= 0.
//   - ErrTruncated: fewer than n·(n+1) values.
//   - matrix.ErrNaNInf: non-finite value under the finite-only policy.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Augmented, error) {
	br := bufio.NewReader(r)

	var n int32
	if err := binary.Read(br, byteOrder, &n); err != nil {
		return nil, ioErrorf(opRead, fmt.Errorf("%w: %v", ErrBadHeader, err))
	}
	if n <= 0 {
		return nil, ioErrorf(opRead, fmt.Errorf("%w: n=%d", ErrBadHeader, n))
	}

	m, err := matrix.NewAugmented(int(n), opts...)
	if err != nil {
		return nil, ioErrorf(opRead, err)
	}
	finite := matrix.NewMatrixOptions(opts...).ValidateNaNInf()
	for i := 0; i < int(n); i++ {
		row := m.Row(i)
		if err = binary.Read(br, byteOrder, row); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ioErrorf(opRead, fmt.Errorf("%w: row %d of %d", ErrTruncated, i, n))
			}
			return nil, ioErrorf(opRead, err)
		}
		if !finite {
			continue
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ioErrorf(opRead, fmt.Errorf("(%d,%d): %w", i, j, matrix.ErrNaNInf))
			}
		}
	}

	return m, nil
}

// Write encodes m to w in the format described in the package comment.
func Write(w io.Writer, m *matrix.Augmented) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opWrite, err)
	}
	n := m.N()
	if n > math.MaxInt32 {
		return ioErrorf(opWrite, fmt.Errorf("%w: n=%d exceeds int32", ErrBadHeader, n))
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, int32(n)); err != nil {
		return ioErrorf(opWrite, err)
	}
	for i := 0; i < n; i++ {
		if err := binary.Write(bw, byteOrder, m.Row(i)); err != nil {
			return ioErrorf(opWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf(opWrite, err)
	}

	return nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string, opts ...matrix.Option) (*matrix.Augmented, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opReadFile, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, ioErrorf(opReadFile, err)
	}

	return m, nil
}

// WriteFile creates (or truncates) path and encodes m into it.
func WriteFile(path string, m *matrix.Augmented) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(opWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opWriteFile, cerr)
		}
	}()

	if err = Write(f, m); err != nil {
		return ioErrorf(opWriteFile, err)
	}

	return nil
}
