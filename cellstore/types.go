package cellstore

import (
	"gopkg.in/guregu/null.v3"

	"github.com/kareef928/teiko-project/celltype"
)

// CellCount is one row of the cell_counts relation.
type CellCount struct {
	SampleID string `db:"sample_id"`
	BCell    int64  `db:"b_cell"`
	CD8TCell int64  `db:"cd8_t_cell"`
	CD4TCell int64  `db:"cd4_t_cell"`
	NKCell   int64  `db:"nk_cell"`
	Monocyte int64  `db:"monocyte"`
}

// Count returns the count for population p, or 0 for an unknown population.
func (c CellCount) Count(p celltype.Population) int64 {
	switch p {
	case celltype.BCell:
		return c.BCell
	case celltype.CD8TCell:
		return c.CD8TCell
	case celltype.CD4TCell:
		return c.CD4TCell
	case celltype.NKCell:
		return c.NKCell
	case celltype.Monocyte:
		return c.Monocyte
	}

	return 0
}

// Metadata is one row of the metadata relation. Age, response, and
// time_from_treatment_start may be blank in the input (samples outside a
// response-assessed arm), so they are nullable rather than zero-valued.
type Metadata struct {
	SampleID               string      `db:"sample_id"`
	Project                string      `db:"project"`
	Subject                string      `db:"subject"`
	Condition              string      `db:"condition"`
	Age                    null.Int    `db:"age"`
	Sex                    string      `db:"sex"`
	Treatment              string      `db:"treatment"`
	Response               null.String `db:"response"`
	SampleType             string      `db:"sample_type"`
	TimeFromTreatmentStart null.Int    `db:"time_from_treatment_start"`
}

// BaselineRow is one row of the cell_counts ⨝ metadata join returned by
// BaselineCohort.
type BaselineRow struct {
	SampleID   string      `db:"sample_id"`
	Project    string      `db:"project"`
	Subject    string      `db:"subject"`
	Condition  string      `db:"condition"`
	Sex        string      `db:"sex"`
	Treatment  string      `db:"treatment"`
	Response   null.String `db:"response"`
	SampleType string      `db:"sample_type"`
	BCell      int64       `db:"b_cell"`
	CD8TCell   int64       `db:"cd8_t_cell"`
	CD4TCell   int64       `db:"cd4_t_cell"`
	NKCell     int64       `db:"nk_cell"`
	Monocyte   int64       `db:"monocyte"`
}
