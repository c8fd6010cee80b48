// SPDX-License-Identifier: MIT

package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/borderband/matrix"
)

// formatFull renders v with the shortest text that parses back exactly.
func formatFull(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteBand writes m in the matrix file format. Output round-trips through
// ReadBand exactly.
func WriteBand(w io.Writer, m *matrix.BorderedBand) error {
	if m == nil {
		return fmt.Errorf("WriteBand: %w", matrix.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	n := m.Size()
	fmt.Fprintf(bw, "%d %d\n", n, m.K())
	d := m.ToDense()
	for i := 0; i < n; i++ {
		for j, v := range d.RawRow(i) {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(formatFull(v))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteVector writes v in the vector file format.
func WriteVector(w io.Writer, v *matrix.Vector) error {
	if v == nil {
		return fmt.Errorf("WriteVector: %w", matrix.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", v.Len())
	for i, x := range v.RawData() {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(formatFull(x))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
