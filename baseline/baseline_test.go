package baseline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/kareef928/teiko-project/cellstore"
)

func row(sample, project, subject, sex, response string) cellstore.BaselineRow {
	r := cellstore.BaselineRow{
		SampleID: sample,
		Project:  project,
		Subject:  subject,
		Sex:      sex,
	}
	if response != "" {
		r.Response = null.StringFrom(response)
	}

	return r
}

func TestAggregate(t *testing.T) {
	// sbj1 contributes two baseline samples: both count toward the project
	// sample tally, but the subject counts once in response and sex.
	rows := []cellstore.BaselineRow{
		row("s1", "prj1", "sbj1", "F", "yes"),
		row("s2", "prj1", "sbj1", "F", "yes"),
		row("s3", "prj2", "sbj2", "M", "no"),
		row("s4", "prj1", "sbj3", "M", "yes"),
	}

	got := Aggregate(rows)

	if want := []ProjectCount{{"prj1", 3}, {"prj2", 1}}; !reflect.DeepEqual(got.Projects, want) {
		t.Fatalf("project counts: got %+v, want %+v", got.Projects, want)
	}
	if want := []ResponseCount{{"no", 1}, {"yes", 2}}; !reflect.DeepEqual(got.Responses, want) {
		t.Fatalf("response counts: got %+v, want %+v", got.Responses, want)
	}
	if want := []SexCount{{"F", 1}, {"M", 2}}; !reflect.DeepEqual(got.Sexes, want) {
		t.Fatalf("sex counts: got %+v, want %+v", got.Sexes, want)
	}
}

func TestAggregateSubjectTotalsMatchDistinctSubjects(t *testing.T) {
	rows := []cellstore.BaselineRow{
		row("s1", "prj1", "sbj1", "F", "yes"),
		row("s2", "prj1", "sbj1", "F", "yes"),
		row("s3", "prj1", "sbj2", "F", "no"),
		row("s4", "prj2", "sbj3", "M", "no"),
		row("s5", "prj2", "sbj3", "M", "no"),
		row("s6", "prj2", "sbj4", "M", "yes"),
	}

	distinct := make(map[string]struct{})
	for _, r := range rows {
		distinct[r.Subject] = struct{}{}
	}

	got := Aggregate(rows)

	var responseTotal, sexTotal int
	for _, rc := range got.Responses {
		responseTotal += rc.SubjectCount
	}
	for _, sc := range got.Sexes {
		sexTotal += sc.SubjectCount
	}

	if responseTotal != len(distinct) {
		t.Fatalf("response subject counts sum to %d, want %d distinct subjects", responseTotal, len(distinct))
	}
	if sexTotal != len(distinct) {
		t.Fatalf("sex subject counts sum to %d, want %d distinct subjects", sexTotal, len(distinct))
	}
}

func TestAggregateUnlabeledResponse(t *testing.T) {
	rows := []cellstore.BaselineRow{
		row("s1", "prj1", "sbj1", "F", "yes"),
		row("s2", "prj1", "sbj2", "M", ""),
	}

	got := Aggregate(rows)

	// The unlabeled subject still counts for project and sex, but cannot be
	// assigned to a response group.
	if want := []ResponseCount{{"yes", 1}}; !reflect.DeepEqual(got.Responses, want) {
		t.Fatalf("response counts: got %+v, want %+v", got.Responses, want)
	}
	if want := []SexCount{{"F", 1}, {"M", 1}}; !reflect.DeepEqual(got.Sexes, want) {
		t.Fatalf("sex counts: got %+v, want %+v", got.Sexes, want)
	}
	if want := []ProjectCount{{"prj1", 2}}; !reflect.DeepEqual(got.Projects, want) {
		t.Fatalf("project counts: got %+v, want %+v", got.Projects, want)
	}
}

func TestAggregateEmptyCohort(t *testing.T) {
	got := Aggregate(nil)
	if len(got.Projects) != 0 || len(got.Responses) != 0 || len(got.Sexes) != 0 {
		t.Fatalf("expected empty aggregates for an empty cohort, got %+v", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()

	summary := Aggregate([]cellstore.BaselineRow{
		row("s1", "prj1", "sbj1", "F", "yes"),
		row("s2", "prj2", "sbj2", "M", "no"),
	})

	projectPath := filepath.Join(dir, "project_counts.csv")
	if err := WriteProjectCounts(projectPath, summary.Projects); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(projectPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "project,sample_count\nprj1,1\nprj2,1\n" {
		t.Fatalf("unexpected artifact contents: %q", string(data))
	}

	if err := WriteResponseCounts(filepath.Join(dir, "response_counts.csv"), summary.Responses); err != nil {
		t.Fatal(err)
	}
	if err := WriteSexCounts(filepath.Join(dir, "sex_counts.csv"), summary.Sexes); err != nil {
		t.Fatal(err)
	}
}
