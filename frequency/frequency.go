// Package frequency derives the per-sample relative frequency of each
// measured cell population and owns the long-form summary artifact consumed
// by the downstream response analysis.
package frequency

import (
	"fmt"
	"math"

	"github.com/kareef928/teiko-project/cellstore"
	"github.com/kareef928/teiko-project/celltype"
)

// Record is one row of the long-form summary: one (sample, population) pair
// with the sample's total count and the population's share of it.
type Record struct {
	Sample     string              `csv:"sample"`
	TotalCount int64               `csv:"total_count"`
	Population celltype.Population `csv:"population"`
	Count      int64               `csv:"count"`
	Percentage float64             `csv:"percentage"`
}

// DegenerateSampleError reports a sample whose counts sum to zero, for which
// a relative frequency is undefined. Such a sample indicates a broken
// measurement; the computation fails rather than emitting NaN percentages.
type DegenerateSampleError struct {
	Sample string
}

func (e DegenerateSampleError) Error() string {
	return fmt.Sprintf("frequency: sample %s has a total cell count of zero", e.Sample)
}

// Compute emits exactly one Record per (sample, population) pair: the
// sample's total across all measured populations and each population's
// percentage of that total, rounded to two decimals. Records are ordered
// sample-major in input order with populations in their canonical order, so
// identical input yields byte-identical artifacts.
func Compute(counts []cellstore.CellCount) ([]Record, error) {
	out := make([]Record, 0, len(counts)*len(celltype.All))

	for _, row := range counts {
		var total int64
		for _, pop := range celltype.All {
			total += row.Count(pop)
		}

		if total == 0 {
			return nil, DegenerateSampleError{Sample: row.SampleID}
		}

		for _, pop := range celltype.All {
			count := row.Count(pop)
			out = append(out, Record{
				Sample:     row.SampleID,
				TotalCount: total,
				Population: pop,
				Count:      count,
				Percentage: round2(float64(count) / float64(total) * 100),
			})
		}
	}

	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
