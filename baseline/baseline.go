// Package baseline aggregates the baseline cohort (samples collected at
// treatment start) into three categorical summaries: samples per project,
// distinct subjects per response group, and distinct subjects per sex.
package baseline

import (
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/kareef928/teiko-project/cellstore"
)

// ProjectCount is the number of samples a project contributed. Samples, not
// subjects: a subject enrolled with several baseline samples counts once per
// sample here.
type ProjectCount struct {
	Project     string `csv:"project"`
	SampleCount int    `csv:"sample_count"`
}

// ResponseCount is the number of distinct subjects in a response group.
type ResponseCount struct {
	Response     string `csv:"response"`
	SubjectCount int    `csv:"subject_count"`
}

// SexCount is the number of distinct subjects of a sex.
type SexCount struct {
	Sex          string `csv:"sex"`
	SubjectCount int    `csv:"subject_count"`
}

// Summary holds the three independent aggregates over one baseline cohort,
// each key-sorted for deterministic artifacts.
type Summary struct {
	Projects  []ProjectCount
	Responses []ResponseCount
	Sexes     []SexCount
}

// Aggregate computes the three categorical summaries. The response and sex
// counts de-duplicate at the subject level, because a subject may contribute
// multiple samples; rows without a response label are excluded from the
// response aggregate only.
func Aggregate(rows []cellstore.BaselineRow) Summary {
	projectSamples := make(map[string]int)
	responseSubjects := make(map[string]map[string]struct{})
	sexSubjects := make(map[string]map[string]struct{})

	for _, row := range rows {
		projectSamples[row.Project]++

		if row.Response.Valid {
			addSubject(responseSubjects, row.Response.String, row.Subject)
		}
		addSubject(sexSubjects, row.Sex, row.Subject)
	}

	var out Summary
	for _, project := range sortedKeys(projectSamples) {
		out.Projects = append(out.Projects, ProjectCount{Project: project, SampleCount: projectSamples[project]})
	}
	for _, response := range sortedSetKeys(responseSubjects) {
		out.Responses = append(out.Responses, ResponseCount{Response: response, SubjectCount: len(responseSubjects[response])})
	}
	for _, sex := range sortedSetKeys(sexSubjects) {
		out.Sexes = append(out.Sexes, SexCount{Sex: sex, SubjectCount: len(sexSubjects[sex])})
	}

	return out
}

// WriteProjectCounts persists the per-project sample counts at path.
func WriteProjectCounts(path string, counts []ProjectCount) error {
	return writeArtifact(path, &counts)
}

// WriteResponseCounts persists the per-response subject counts at path.
func WriteResponseCounts(path string, counts []ResponseCount) error {
	return writeArtifact(path, &counts)
}

// WriteSexCounts persists the per-sex subject counts at path.
func WriteSexCounts(path string, counts []SexCount) error {
	return writeArtifact(path, &counts)
}

func writeArtifact(path string, counts interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(counts, f)
}

func addSubject(sets map[string]map[string]struct{}, key, subject string) {
	if sets[key] == nil {
		sets[key] = make(map[string]struct{})
	}
	sets[key][subject] = struct{}{}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func sortedSetKeys(m map[string]map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
