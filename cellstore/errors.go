package cellstore

import "fmt"

// SchemaError reports a malformed input table or key violation: a missing
// required column, an unparseable value, or a blank or duplicate sample
// identifier. Nothing is committed to the store when a SchemaError is
// returned.
type SchemaError struct {
	Msg string
}

func (e SchemaError) Error() string {
	return "cellstore: schema: " + e.Msg
}

func schemaErrorf(format string, args ...interface{}) SchemaError {
	return SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// StoreUnavailableError indicates that the backing SQLite database could not
// be reached or opened.
type StoreUnavailableError struct {
	Path string
	Err  error
}

func (e StoreUnavailableError) Error() string {
	return fmt.Sprintf("cellstore: store at %s unavailable: %v", e.Path, e.Err)
}

func (e StoreUnavailableError) Unwrap() error {
	return e.Err
}
