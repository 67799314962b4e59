// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/gauss/matrix"
)

// Print writes m as text, one row per line: "| v " per element, then "|".
func Print(w io.Writer, m *matrix.Augmented) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf("Print", err)
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < m.N(); i++ {
		for _, v := range m.Row(i) {
			fmt.Fprintf(bw, "| %f ", v)
		}
		bw.WriteString("|\n")
	}

	return bw.Flush()
}
