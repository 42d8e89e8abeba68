package cellstore

import "github.com/carbocation/pfx"

// CellCounts returns every row of the cell_counts relation in load order.
func (s *Store) CellCounts() ([]CellCount, error) {
	out := []CellCount{}
	if err := s.db.Select(&out, "SELECT * FROM cell_counts ORDER BY rowid"); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// AllMetadata returns every row of the metadata relation in load order.
func (s *Store) AllMetadata() ([]Metadata, error) {
	out := []Metadata{}
	if err := s.db.Select(&out, "SELECT * FROM metadata ORDER BY rowid"); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

const baselineQuery = `
SELECT cc.sample_id, m.project, m.subject, m.condition, m.sex, m.treatment,
       m.response, m.sample_type,
       cc.b_cell, cc.cd8_t_cell, cc.cd4_t_cell, cc.nk_cell, cc.monocyte
FROM cell_counts cc
JOIN metadata m ON cc.sample_id = m.sample_id
WHERE m.condition = ?
AND m.treatment = ?
AND m.time_from_treatment_start = 0
AND m.sample_type = ?
ORDER BY cc.rowid`

// BaselineCohort joins the two relations and returns the samples collected at
// treatment start (time_from_treatment_start = 0) that match the given
// condition, treatment, and sample type. An empty cohort is a valid result,
// not an error.
func (s *Store) BaselineCohort(condition, treatment, sampleType string) ([]BaselineRow, error) {
	out := []BaselineRow{}
	if err := s.db.Select(&out, baselineQuery, condition, treatment, sampleType); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
