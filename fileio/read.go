// SPDX-License-Identifier: MIT

package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/borderband/matrix"
)

// lineReader yields non-blank lines split into fields, tracking line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, parseErrorf(lr.line+1, "unexpected end of input")
}

func (lr *lineReader) ints(want int) ([]int, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != want {
		return nil, parseErrorf(lr.line, "want %d integers, got %d fields", want, len(fields))
	}
	out := make([]int, want)
	for i, s := range fields {
		if out[i], err = strconv.Atoi(s); err != nil {
			return nil, parseErrorf(lr.line, "field %d: %v", i+1, err)
		}
	}

	return out, nil
}

func (lr *lineReader) floats(want int) ([]float64, error) {
	fields, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != want {
		return nil, parseErrorf(lr.line, "want %d values, got %d", want, len(fields))
	}
	out := make([]float64, want)
	for i, s := range fields {
		if out[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, parseErrorf(lr.line, "field %d: %v", i+1, err)
		}
	}

	return out, nil
}

// ReadBand parses a matrix file and extracts the bordered band storage.
//
// Errors: ErrParse for malformed text; matrix.ErrBadShape, matrix.ErrBadPivot
// and matrix.ErrStructure for a well-formed file that is not a bordered band
// matrix.
func ReadBand(r io.Reader, opts ...matrix.Option) (*matrix.BorderedBand, error) {
	lr := newLineReader(r)
	hdr, err := lr.ints(2)
	if err != nil {
		return nil, fmt.Errorf("ReadBand: header: %w", err)
	}
	n, k := hdr[0], hdr[1]
	if err = matrix.ValidateBandSize(n); err != nil {
		return nil, fmt.Errorf("ReadBand: %w", err)
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ReadBand: %w", err)
	}
	for i := 0; i < n; i++ {
		row, err := lr.floats(n)
		if err != nil {
			return nil, fmt.Errorf("ReadBand: row %d: %w", i+1, err)
		}
		copy(d.RawRow(i), row)
	}

	m, err := matrix.FromDense(d, k, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadBand: %w", err)
	}

	return m, nil
}

// ReadVector parses a vector file.
func ReadVector(r io.Reader) (*matrix.Vector, error) {
	lr := newLineReader(r)
	hdr, err := lr.ints(1)
	if err != nil {
		return nil, fmt.Errorf("ReadVector: header: %w", err)
	}
	if hdr[0] <= 0 {
		return nil, fmt.Errorf("ReadVector: %w", parseErrorf(lr.line, "size %d", hdr[0]))
	}
	vals, err := lr.floats(hdr[0])
	if err != nil {
		return nil, fmt.Errorf("ReadVector: %w", err)
	}

	return matrix.VectorFrom(vals)
}
