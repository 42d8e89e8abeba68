package cellstore

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// VerifyReport summarizes the state of the two relations after a load.
type VerifyReport struct {
	CellCountRows int
	MetadataRows  int

	// JoinedRows is the number of sample identifiers present in both
	// relations. When every input row was fully populated it equals both row
	// counts above; a smaller value means identifiers have diverged.
	JoinedRows int
}

func (r VerifyReport) String() string {
	return fmt.Sprintf("cell_counts: %d rows, metadata: %d rows, joined on sample_id: %d rows",
		r.CellCountRows, r.MetadataRows, r.JoinedRows)
}

// Verify confirms that both relations are populated and that joining them on
// sample_id yields rows. It errors if either relation or the join is empty.
func (s *Store) Verify() (VerifyReport, error) {
	var report VerifyReport

	if err := s.db.Get(&report.CellCountRows, "SELECT COUNT(*) FROM cell_counts"); err != nil {
		return report, pfx.Err(err)
	}
	if err := s.db.Get(&report.MetadataRows, "SELECT COUNT(*) FROM metadata"); err != nil {
		return report, pfx.Err(err)
	}
	if err := s.db.Get(&report.JoinedRows,
		"SELECT COUNT(*) FROM cell_counts cc JOIN metadata m ON cc.sample_id = m.sample_id"); err != nil {
		return report, pfx.Err(err)
	}

	if report.CellCountRows == 0 || report.MetadataRows == 0 {
		return report, fmt.Errorf("cellstore: verify: a relation is empty (%s)", report)
	}
	if report.JoinedRows == 0 {
		return report, fmt.Errorf("cellstore: verify: no sample identifiers are shared between the relations (%s)", report)
	}

	return report, nil
}
