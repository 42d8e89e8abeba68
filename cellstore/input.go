package cellstore

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

var gzipSignature = []byte{0x1f, 0x8b, 0x08}

// OpenTable opens the wide input table at path, transparently decompressing
// gzip. The caller must Close the result.
func OpenTable(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	buff := make([]byte, len(gzipSignature))
	n, err := f.Read(buff)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, err
	}

	// Reset the original reader
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, err
	}

	gzipped := n == len(gzipSignature)
	for i := 0; gzipped && i < len(gzipSignature); i++ {
		if buff[i] != gzipSignature[i] {
			gzipped = false
		}
	}

	if !gzipped {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &tableReader{Reader: gz, file: f}, nil
}

// tableReader closes the underlying file along with the decompressor.
type tableReader struct {
	io.Reader
	file *os.File
}

func (t *tableReader) Close() error {
	if c, ok := t.Reader.(io.Closer); ok {
		c.Close()
	}

	return t.file.Close()
}
