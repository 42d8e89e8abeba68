// loadcells splits the wide per-sample cell count table into the normalized
// cell_counts and metadata relations, replacing the prior contents of the
// store (full refresh), then verifies the load.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/kareef928/teiko-project/cellstore"
)

func main() {
	var input string
	var dbPath string

	flag.StringVar(&input, "input", "", "The wide input table (CSV or TSV, optionally gzipped) with one row per sample")
	flag.StringVar(&dbPath, "db", "data/cell_info.db", "Path to the SQLite database to (re)populate")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	src, err := cellstore.OpenTable(input)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer src.Close()

	store, err := cellstore.Open(dbPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer store.Close()

	n, err := store.Load(src)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Loaded", n, "samples into", dbPath)

	report, err := store.Verify()
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Verified:", report)
}
