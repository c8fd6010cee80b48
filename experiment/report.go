// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
)

// Row summarizes one cell.
type Row struct {
	Size int
	// K is the pivot, or 0 when every trial drew its own.
	K         int
	Trials    int
	Mean, Max float64
	Resamples int
}

// Report is the outcome of one run.
type Report struct {
	RunID    uuid.UUID
	Scenario Scenario
	Seed     int64
	Started  time.Time
	Elapsed  time.Duration
	Rows     []Row
}

// TableHeader lists the column titles of Table.
var TableHeader = []string{"size", "k", "trials", "mean error", "max error", "resamples"}

// Table renders the rows as an aligned text table, header first.
func (r *Report) Table() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(TableHeader, "\t"))
	for _, row := range r.Rows {
		k := "random"
		if row.K != randomK {
			k = fmt.Sprint(row.K)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.3e\t%.3e\t%d\n", row.Size, k, row.Trials, row.Mean, row.Max, row.Resamples)
	}
	tw.Flush()

	return sb.String()
}
