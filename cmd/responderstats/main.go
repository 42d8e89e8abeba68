// responderstats filters the frequency summary to one trial cohort, tests
// each cell population for a frequency difference between responders and
// non-responders, and writes the result artifacts along with a
// distribution-by-response plot.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/carbocation/pfx"

	"github.com/kareef928/teiko-project/cellstore"
	"github.com/kareef928/teiko-project/cohort"
	"github.com/kareef928/teiko-project/frequency"
)

func main() {
	var dbPath, summaryPath, resultsPath, significantPath, plotPath string
	var condition, treatment, sampleType string
	var threshold float64

	flag.StringVar(&dbPath, "db", "data/cell_info.db", "Path to the SQLite database populated by loadcells")
	flag.StringVar(&summaryPath, "summary", "data/part2_summary_table.csv", "Path to the frequency summary artifact written by cellfreqs")
	flag.StringVar(&resultsPath, "results", "data/part3_stat_results.csv", "Path for the per-population test results")
	flag.StringVar(&significantPath, "significant", "data/part3_significant_results.csv", "Path for the significant subset")
	flag.StringVar(&plotPath, "plot", "data/part3_boxplot.png", "Path for the distribution-by-response plot")
	flag.StringVar(&condition, "condition", "melanoma", "Condition to filter the cohort to")
	flag.StringVar(&treatment, "treatment", "miraclib", "Treatment to filter the cohort to")
	flag.StringVar(&sampleType, "sampletype", "PBMC", "Sample type to filter the cohort to")
	flag.Float64Var(&threshold, "threshold", 0.05, "Significance threshold (exclusive) for the significant subset")
	flag.Parse()

	summary, err := frequency.ReadSummary(summaryPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	store, err := cellstore.Open(dbPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	meta, err := store.AllMetadata()
	if err != nil {
		store.Close()
		log.Fatalln(pfx.Err(err))
	}
	store.Close()

	predicate := cohort.Predicate{Condition: condition, Treatment: treatment, SampleType: sampleType}
	rows := cohort.Filter(summary, meta, predicate)
	log.Println("Filtered cohort:", len(rows), "rows for", condition, "/", treatment, "/", sampleType)

	if len(rows) > 0 {
		if err := cohort.RenderResponsePlot(rows, plotPath); err != nil {
			log.Fatalln(pfx.Err(err))
		}
		log.Println("Wrote", plotPath)
	}

	results, err := cohort.TestPopulations(rows)
	if errors.Is(err, cohort.ErrNoTestablePopulation) {
		log.Fatalln("No population had a testable response split; no results were computed")
	}
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := cohort.WriteResults(resultsPath, results); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Wrote", len(results), "test results to", resultsPath)

	significant := cohort.Significant(results, threshold)
	if err := cohort.WriteResults(significantPath, significant); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if len(significant) == 0 {
		log.Println("No significant differences found")
		return
	}

	log.Println("Significant results found in:")
	for _, r := range significant {
		log.Printf("  %s (p=%.4g)\n", r.Population.Label(), r.PValue)
	}
}
