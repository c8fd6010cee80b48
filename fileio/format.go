// SPDX-License-Identifier: MIT

package fileio

import (
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/borderband/matrix"
)

// round renders v rounded to digits fractional digits, without a trailing
// fraction when it is zero and without a negative zero.
func round(v float64, digits int) string {
	s := math.Pow(10, float64(digits))
	r := math.Round(v*s) / s
	if r == 0 { // -0 -> 0
		r = 0
	}

	return strconv.FormatFloat(r, 'f', -1, 64)
}

// columnHeader labels columns k and k+2.
func columnHeader(tw *tabwriter.Writer, m *matrix.BorderedBand) {
	tw.Write([]byte("\t"))
	for j := 1; j <= m.Size(); j++ {
		switch j {
		case m.K():
			tw.Write([]byte("k"))
		case m.K() + 2:
			tw.Write([]byte("k+2"))
		}
		tw.Write([]byte("\t"))
	}
	tw.Write([]byte("\n"))
}

func denseRow(tw *tabwriter.Writer, m *matrix.BorderedBand, i, digits int) {
	tw.Write([]byte("|\t"))
	for j := 1; j <= m.Size(); j++ {
		v, _ := m.Element(i, j)
		tw.Write([]byte(round(v, digits) + "\t"))
	}
	tw.Write([]byte("|"))
}

// FormatBand renders m as an aligned dense table with entries rounded to
// digits fractional digits. Intended for small n.
func FormatBand(m *matrix.BorderedBand, digits int) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)
	columnHeader(tw, m)
	for i := 1; i <= m.Size(); i++ {
		denseRow(tw, m, i, digits)
		tw.Write([]byte("\n"))
	}
	tw.Flush()

	return sb.String()
}

// FormatSystem renders the system M·x = f row by row:
//
//	| m_i1 ... m_in | x_i | = | f_i |
//
// The product and equality signs sit on the middle row.
func FormatSystem(m *matrix.BorderedBand, f *matrix.Vector, digits int) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', 0)
	columnHeader(tw, m)
	mid := m.Size()/2 + 1
	for i := 1; i <= m.Size(); i++ {
		denseRow(tw, m, i, digits)
		mul, eq := " ", " "
		if i == mid {
			mul, eq = "X", "="
		}
		fi := ""
		if f != nil && i <= f.Len() {
			v, _ := f.At(i)
			fi = round(v, digits)
		}
		tw.Write([]byte(" " + mul + " | x" + strconv.Itoa(i) + " | " + eq + " |\t" + fi + "\t|\n"))
	}
	tw.Flush()

	return sb.String()
}
