// Package cohort joins the frequency summary with sample metadata, filters
// the result by categorical predicates, and tests per-population frequency
// differences between response groups.
package cohort

import (
	"github.com/kareef928/teiko-project/cellstore"
	"github.com/kareef928/teiko-project/celltype"
	"github.com/kareef928/teiko-project/frequency"
)

// Predicate is a conjunction of exact-match categorical constraints applied
// to sample metadata. The zero value of a field matches nothing (the wide
// table never carries blank values for these columns).
type Predicate struct {
	Condition  string
	Treatment  string
	SampleType string
}

func (p Predicate) matches(m cellstore.Metadata) bool {
	return m.Condition == p.Condition &&
		m.Treatment == p.Treatment &&
		m.SampleType == p.SampleType
}

// Row is one (sample, population) observation joined with the metadata
// needed for response testing. It exists only transiently between the filter
// and the tester.
type Row struct {
	Sample     string
	Subject    string
	Population celltype.Population
	Percentage float64

	// Response is "yes", "no", or empty when the sample has no response
	// label. Unlabeled rows survive the filter but are excluded from the
	// two-group tests.
	Response string
}

// Filter inner-joins the summary with metadata on sample identifier and
// keeps the rows whose metadata satisfies every predicate constraint.
// Summary rows without a metadata match are dropped silently: they belong to
// samples outside this store's trial bookkeeping, and excluding them is the
// intended join semantics, not an error. An empty result is valid.
func Filter(summary []frequency.Record, meta []cellstore.Metadata, p Predicate) []Row {
	bySample := make(map[string]cellstore.Metadata, len(meta))
	for _, m := range meta {
		bySample[m.SampleID] = m
	}

	out := []Row{}
	for _, rec := range summary {
		m, ok := bySample[rec.Sample]
		if !ok || !p.matches(m) {
			continue
		}

		out = append(out, Row{
			Sample:     rec.Sample,
			Subject:    m.Subject,
			Population: rec.Population,
			Percentage: rec.Percentage,
			Response:   m.Response.ValueOrZero(),
		})
	}

	return out
}
