package cellstore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/kareef928/teiko-project/celltype"
)

// SampleColumn is the name of the shared identifier column in the wide input
// table. Both projected relations rename it to sample_id.
const SampleColumn = "sample"

// metadataColumns are the wide-table columns that land in the metadata
// relation, in schema order.
var metadataColumns = []string{
	"project",
	"subject",
	"condition",
	"age",
	"sex",
	"treatment",
	"response",
	"sample_type",
	"time_from_treatment_start",
}

const createCellCounts = `
CREATE TABLE cell_counts (
	sample_id TEXT PRIMARY KEY,
	b_cell INTEGER NOT NULL,
	cd8_t_cell INTEGER NOT NULL,
	cd4_t_cell INTEGER NOT NULL,
	nk_cell INTEGER NOT NULL,
	monocyte INTEGER NOT NULL
)`

const createMetadata = `
CREATE TABLE metadata (
	sample_id TEXT PRIMARY KEY,
	project TEXT NOT NULL,
	subject TEXT NOT NULL,
	condition TEXT NOT NULL,
	age INTEGER,
	sex TEXT NOT NULL,
	treatment TEXT NOT NULL,
	response TEXT,
	sample_type TEXT NOT NULL,
	time_from_treatment_start INTEGER
)`

// Load reads the wide input table from src, projects it into the cell_counts
// and metadata relations, and replaces the prior contents of both. The input
// must carry the sample column, one column per measured population, and every
// metadata column; the delimiter (comma or tab) is detected automatically.
//
// Load is a full refresh with drop-and-recreate semantics, performed in a
// single transaction: on any SchemaError the previously loaded relations are
// left untouched. Returns the number of samples loaded.
func (s *Store) Load(src io.Reader) (int, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, pfx.Err(err)
	}

	counts, meta, err := parseWideTable(data)
	if err != nil {
		return 0, err
	}

	if err := s.replaceRelations(counts, meta); err != nil {
		return 0, err
	}

	return len(counts), nil
}

// parseWideTable splits the wide table into its two column projections,
// renaming the shared identifier to sample_id. It fails with SchemaError on a
// missing required column, an unparseable value, or a blank or duplicate
// sample identifier.
func parseWideTable(data []byte) ([]CellCount, []Metadata, error) {
	delim := DetermineDelimiter(bytes.NewReader(data))

	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.Comma = delim
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, schemaErrorf("malformed input table: %v", err)
	}

	if len(rows) == 0 {
		return nil, nil, schemaErrorf("input table is empty")
	}

	header := make(map[string]int)
	for i, col := range rows[0] {
		header[strings.TrimSpace(col)] = i
	}

	required := []string{SampleColumn}
	for _, pop := range celltype.All {
		required = append(required, pop.String())
	}
	required = append(required, metadataColumns...)

	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, nil, schemaErrorf("input table is missing required column %q", col)
		}
	}

	counts := make([]CellCount, 0, len(rows)-1)
	meta := make([]Metadata, 0, len(rows)-1)
	seen := make(map[string]struct{})

	for lineNum, row := range rows {
		if lineNum == 0 {
			continue
		}

		sampleID := strings.TrimSpace(row[header[SampleColumn]])
		if sampleID == "" {
			return nil, nil, schemaErrorf("line %d has a blank sample identifier", lineNum+1)
		}
		if _, dup := seen[sampleID]; dup {
			return nil, nil, schemaErrorf("duplicate sample identifier %q violates the primary key", sampleID)
		}
		seen[sampleID] = struct{}{}

		count := CellCount{SampleID: sampleID}
		for _, pop := range celltype.All {
			raw := strings.TrimSpace(row[header[pop.String()]])
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, nil, schemaErrorf("sample %s: column %s: %q is not an integer count", sampleID, pop, raw)
			}
			if v < 0 {
				return nil, nil, schemaErrorf("sample %s: column %s: negative count %d", sampleID, pop, v)
			}
			setCount(&count, pop, v)
		}

		m := Metadata{
			SampleID:   sampleID,
			Project:    strings.TrimSpace(row[header["project"]]),
			Subject:    strings.TrimSpace(row[header["subject"]]),
			Condition:  strings.TrimSpace(row[header["condition"]]),
			Sex:        strings.TrimSpace(row[header["sex"]]),
			Treatment:  strings.TrimSpace(row[header["treatment"]]),
			SampleType: strings.TrimSpace(row[header["sample_type"]]),
			Response:   nullString(row[header["response"]]),
		}

		m.Age, err = nullInt(row[header["age"]])
		if err != nil {
			return nil, nil, schemaErrorf("sample %s: column age: %v", sampleID, err)
		}

		m.TimeFromTreatmentStart, err = nullInt(row[header["time_from_treatment_start"]])
		if err != nil {
			return nil, nil, schemaErrorf("sample %s: column time_from_treatment_start: %v", sampleID, err)
		}

		counts = append(counts, count)
		meta = append(meta, m)
	}

	return counts, meta, nil
}

func (s *Store) replaceRelations(counts []CellCount, meta []Metadata) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DROP TABLE IF EXISTS cell_counts",
		"DROP TABLE IF EXISTS metadata",
		createCellCounts,
		createMetadata,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return pfx.Err(err)
		}
	}

	insertCounts, err := tx.Preparex(
		"INSERT INTO cell_counts (sample_id, b_cell, cd8_t_cell, cd4_t_cell, nk_cell, monocyte) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return pfx.Err(err)
	}
	defer insertCounts.Close()

	insertMeta, err := tx.Preparex(
		`INSERT INTO metadata (sample_id, project, subject, condition, age, sex, treatment, response, sample_type, time_from_treatment_start)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return pfx.Err(err)
	}
	defer insertMeta.Close()

	for _, c := range counts {
		if _, err := insertCounts.Exec(c.SampleID, c.BCell, c.CD8TCell, c.CD4TCell, c.NKCell, c.Monocyte); err != nil {
			return pfx.Err(err)
		}
	}

	for _, m := range meta {
		if _, err := insertMeta.Exec(m.SampleID, m.Project, m.Subject, m.Condition, m.Age, m.Sex, m.Treatment, m.Response, m.SampleType, m.TimeFromTreatmentStart); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

func setCount(c *CellCount, p celltype.Population, v int64) {
	switch p {
	case celltype.BCell:
		c.BCell = v
	case celltype.CD8TCell:
		c.CD8TCell = v
	case celltype.CD4TCell:
		c.CD4TCell = v
	case celltype.NKCell:
		c.NKCell = v
	case celltype.Monocyte:
		c.Monocyte = v
	}
}

func nullString(raw string) null.String {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return null.String{}
	}

	return null.StringFrom(raw)
}

func nullInt(raw string) (null.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return null.Int{}, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return null.Int{}, fmt.Errorf("%q is not an integer", raw)
	}

	return null.IntFrom(v), nil
}
