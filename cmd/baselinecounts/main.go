// baselinecounts extracts the baseline cohort (samples taken at treatment
// start) straight from the store and writes three categorical summaries:
// samples per project, distinct subjects per response, and distinct subjects
// per sex.
package main

import (
	"flag"
	"log"

	"github.com/carbocation/pfx"

	"github.com/kareef928/teiko-project/baseline"
	"github.com/kareef928/teiko-project/cellstore"
)

func main() {
	var dbPath string
	var projectPath, responsePath, sexPath string
	var condition, treatment, sampleType string

	flag.StringVar(&dbPath, "db", "data/cell_info.db", "Path to the SQLite database populated by loadcells")
	flag.StringVar(&projectPath, "projects", "data/part4_project_counts.csv", "Path for the per-project sample counts")
	flag.StringVar(&responsePath, "responses", "data/part4_response_counts.csv", "Path for the per-response subject counts")
	flag.StringVar(&sexPath, "sexes", "data/part4_sex_counts.csv", "Path for the per-sex subject counts")
	flag.StringVar(&condition, "condition", "melanoma", "Condition to filter the baseline cohort to")
	flag.StringVar(&treatment, "treatment", "miraclib", "Treatment to filter the baseline cohort to")
	flag.StringVar(&sampleType, "sampletype", "PBMC", "Sample type to filter the baseline cohort to")
	flag.Parse()

	store, err := cellstore.Open(dbPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer store.Close()

	rows, err := store.BaselineCohort(condition, treatment, sampleType)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Baseline cohort:", len(rows), "samples")

	summary := baseline.Aggregate(rows)

	if err := baseline.WriteProjectCounts(projectPath, summary.Projects); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	if err := baseline.WriteResponseCounts(responsePath, summary.Responses); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	if err := baseline.WriteSexCounts(sexPath, summary.Sexes); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	for _, p := range summary.Projects {
		log.Printf("%s: %d samples\n", p.Project, p.SampleCount)
	}
	for _, r := range summary.Responses {
		log.Printf("response %s: %d subjects\n", r.Response, r.SubjectCount)
	}
	for _, s := range summary.Sexes {
		log.Printf("sex %s: %d subjects\n", s.Sex, s.SubjectCount)
	}
}
