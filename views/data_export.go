package views

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"kitti-paths/models"
)

// CSVWriter is a buffered CSV file writer. Rows are encoded into a
// bufio.Writer and only reach the file on Flush or Close.
type CSVWriter struct {
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter creates path (and its parent directory) and writes the
// CSV header row.
func NewCSVWriter(path string, bufSizeBytes int, writeHeader bool, header []string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "csv mkdir %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "csv create %s", path)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 64 * 1024
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if writeHeader && len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "csv write header")
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row. Errors surface on Flush.
func (w *CSVWriter) WriteRow(row []string) {
	_ = w.csv.Write(row)
	w.rows++
}

// Flush pushes the buffered data to the OS.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrap(err, "csv flush")
	}
	return errors.Wrap(w.buf.Flush(), "csv flush")
}

// Close flushes remaining data and closes the file.
func (w *CSVWriter) Close() error {
	ferr := w.Flush()
	cerr := w.file.Close()
	if ferr != nil {
		return ferr
	}
	return errors.Wrap(cerr, "csv close")
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	return w.rows
}

// WriteCSV writes header and records to path in one go and returns the
// number of data rows.
func WriteCSV[T models.CSVRowWriter](path string, bufSizeBytes int, writeHeader bool, header []string, records []T) (uint64, error) {
	w, err := NewCSVWriter(path, bufSizeBytes, writeHeader, header)
	if err != nil {
		return 0, err
	}
	for _, r := range records {
		w.WriteRow(r.CSVRow())
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return w.Rows(), nil
}
