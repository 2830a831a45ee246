package connectivity

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/hydrokit/streamnet/pkg/errors"
)

// WriteCSV writes the table to w as headerless comma-separated integers,
// one line per reach with "\n" line endings on every platform.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	record := make([]string, 3+t.Width)
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write connectivity row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "flush connectivity table")
	}
	return nil
}

// ExportCSV writes the table to a file at path, overwriting if it exists.
// Callers should not assume the file is complete if an error is returned;
// no partial-file cleanup is attempted.
func (t *Table) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}
