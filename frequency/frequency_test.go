package frequency

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/kareef928/teiko-project/cellstore"
	"github.com/kareef928/teiko-project/celltype"
)

func TestComputeKnownSample(t *testing.T) {
	records, err := Compute([]cellstore.CellCount{
		{SampleID: "s1", BCell: 100, CD8TCell: 50, CD4TCell: 50, NKCell: 0, Monocyte: 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != len(celltype.All) {
		t.Fatalf("expected %d records, got %d", len(celltype.All), len(records))
	}

	expected := map[celltype.Population]float64{
		celltype.BCell:    50.0,
		celltype.CD8TCell: 25.0,
		celltype.CD4TCell: 25.0,
		celltype.NKCell:   0.0,
		celltype.Monocyte: 0.0,
	}

	for _, rec := range records {
		if rec.Sample != "s1" || rec.TotalCount != 200 {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if rec.Percentage != expected[rec.Population] {
			t.Fatalf("population %s: expected %.2f%%, got %.2f%%", rec.Population, expected[rec.Population], rec.Percentage)
		}
	}
}

func TestComputePercentagesSumTo100(t *testing.T) {
	counts := []cellstore.CellCount{
		{SampleID: "s1", BCell: 3001, CD8TCell: 1499, CD4TCell: 1003, NKCell: 299, Monocyte: 201},
		{SampleID: "s2", BCell: 7, CD8TCell: 11, CD4TCell: 13, NKCell: 17, Monocyte: 19},
		{SampleID: "s3", BCell: 1, CD8TCell: 1, CD4TCell: 1, NKCell: 0, Monocyte: 0},
	}

	records, err := Compute(counts)
	if err != nil {
		t.Fatal(err)
	}

	sums := make(map[string]float64)
	perSample := make(map[string]int)
	for _, rec := range records {
		sums[rec.Sample] += rec.Percentage
		perSample[rec.Sample]++
	}

	for _, c := range counts {
		if perSample[c.SampleID] != len(celltype.All) {
			t.Fatalf("sample %s: expected %d records, got %d", c.SampleID, len(celltype.All), perSample[c.SampleID])
		}
		if math.Abs(sums[c.SampleID]-100) > 0.1 {
			t.Fatalf("sample %s: percentages sum to %.4f, want 100 ± 0.1", c.SampleID, sums[c.SampleID])
		}
	}
}

func TestComputeZeroTotalFails(t *testing.T) {
	_, err := Compute([]cellstore.CellCount{
		{SampleID: "ok", BCell: 10},
		{SampleID: "empty"},
	})

	degenerate, ok := err.(DegenerateSampleError)
	if !ok {
		t.Fatalf("expected DegenerateSampleError, got %T: %v", err, err)
	}
	if degenerate.Sample != "empty" {
		t.Fatalf("expected the zero-total sample to be named, got %+v", degenerate)
	}
}

func TestSummaryArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")

	records, err := Compute([]cellstore.CellCount{
		{SampleID: "s1", BCell: 100, CD8TCell: 50, CD4TCell: 50},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteSummary(path, records); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadSummary(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Fatalf("record %d changed across the artifact round trip:\n%+v\n%+v", i, records[i], loaded[i])
		}
	}
}

func TestReadSummaryMissingArtifact(t *testing.T) {
	_, err := ReadSummary(filepath.Join(t.TempDir(), "absent.csv"))
	if _, ok := err.(ArtifactNotFoundError); !ok {
		t.Fatalf("expected ArtifactNotFoundError, got %T: %v", err, err)
	}
}
