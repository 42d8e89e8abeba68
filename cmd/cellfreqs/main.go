// cellfreqs computes the relative frequency of each cell population per
// sample from the cell_counts relation and writes the long-form summary
// artifact consumed by the response analysis.
package main

import (
	"flag"
	"log"

	"github.com/carbocation/pfx"

	"github.com/kareef928/teiko-project/cellstore"
	"github.com/kareef928/teiko-project/frequency"
)

func main() {
	var dbPath string
	var output string

	flag.StringVar(&dbPath, "db", "data/cell_info.db", "Path to the SQLite database populated by loadcells")
	flag.StringVar(&output, "out", "data/part2_summary_table.csv", "Path for the frequency summary artifact")
	flag.Parse()

	store, err := cellstore.Open(dbPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer store.Close()

	counts, err := store.CellCounts()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	records, err := frequency.Compute(counts)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := frequency.WriteSummary(output, records); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	log.Println("Wrote", len(records), "frequency records for", len(counts), "samples to", output)
}
