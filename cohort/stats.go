package cohort

import (
	"errors"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/kareef928/teiko-project/celltype"
	"github.com/kareef928/teiko-project/mannwhitney"
)

// TestResult is the outcome of one per-population response comparison.
type TestResult struct {
	Population celltype.Population `csv:"population"`
	PValue     float64             `csv:"p_value"`
}

// ErrNoTestablePopulation indicates that no population in the cohort had a
// testable response split. It distinguishes "nothing could be computed" from
// a computed-but-empty significant subset.
var ErrNoTestablePopulation = errors.New("cohort: no population had enough observations in both response groups")

// TestPopulations compares, for every population observed in the cohort, the
// percentage distributions of responders ("yes") and non-responders ("no")
// with a two-sided Mann-Whitney U test.
//
// Degenerate partitions are skipped and omitted from the results, uniformly:
// a population is not testable when either response group has fewer than two
// observations or when the pooled percentages are all identical. Rows
// without a response label never enter either group.
func TestPopulations(rows []Row) ([]TestResult, error) {
	responders := make(map[celltype.Population][]float64)
	nonResponders := make(map[celltype.Population][]float64)

	for _, row := range rows {
		switch row.Response {
		case "yes":
			responders[row.Population] = append(responders[row.Population], row.Percentage)
		case "no":
			nonResponders[row.Population] = append(nonResponders[row.Population], row.Percentage)
		}
	}

	results := []TestResult{}
	for _, pop := range celltype.All {
		yes := responders[pop]
		no := nonResponders[pop]

		if len(yes) < 2 || len(no) < 2 {
			continue
		}

		p, err := mannwhitney.TwoSided(yes, no)
		if errors.Is(err, mannwhitney.ErrDegenerate) {
			continue
		}
		if err != nil {
			return nil, err
		}

		results = append(results, TestResult{Population: pop, PValue: p})
	}

	if len(results) == 0 {
		return nil, ErrNoTestablePopulation
	}

	return results, nil
}

// Significant returns the results with a P-value strictly below threshold.
// An empty subset is a valid outcome.
func Significant(results []TestResult, threshold float64) []TestResult {
	out := []TestResult{}
	for _, r := range results {
		if r.PValue < threshold {
			out = append(out, r)
		}
	}

	return out
}

// WriteResults persists test results as a CSV artifact at path, replacing
// any prior version. It is used for both the full result set and the
// significant subset, which share a shape.
func WriteResults(path string, results []TestResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&results, f)
}
