package frequency

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gocarina/gocsv"
)

// ArtifactNotFoundError indicates that a required upstream artifact is
// missing, which usually means the pipeline stages were run out of order.
type ArtifactNotFoundError struct {
	Path string
	Err  error
}

func (e ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("frequency: summary artifact %s not found; run the frequency stage first", e.Path)
}

func (e ArtifactNotFoundError) Unwrap() error {
	return e.Err
}

// WriteSummary persists the long-form summary as a CSV artifact at path,
// replacing any prior version.
func WriteSummary(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&records, f)
}

// ReadSummary loads a summary artifact previously written by WriteSummary.
func ReadSummary(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ArtifactNotFoundError{Path: path, Err: err}
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records := []Record{}
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, err
	}

	return records, nil
}
