// Package cellstore owns the two normalized relations derived from the wide
// per-sample input table: cell_counts (one integer count per measured
// population) and metadata (trial attributes), both keyed by sample_id.
// Loading is always a full refresh; there is no row-level mutation API.
package cellstore

import (
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a handle to the SQLite database holding the cell_counts and
// metadata relations. It is single-writer: Load assumes exclusive access for
// the duration of the reload.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path, creating the file if it does
// not yet exist.
func Open(path string) (*Store, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	uri := path
	if !strings.HasPrefix(uri, "file:") {
		uri = "file:" + uri
	}

	db, err := sqlx.Connect("sqlite3", uri)
	if err != nil {
		return nil, StoreUnavailableError{Path: path, Err: err}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
