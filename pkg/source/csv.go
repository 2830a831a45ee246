package source

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hydrokit/streamnet/pkg/errors"
	"github.com/hydrokit/streamnet/pkg/network"
)

// ReadCSV reads a network from a CSV attribute table.
//
// The first record is a header; the reach-ID and downstream-ID columns are
// located by case-insensitive match against fields (empty names fall back to
// the defaults). Missing columns or non-integer values are reported as
// ErrCodeInvalidSchema with the offending column and line.
func ReadCSV(r io.Reader, fields Fields) (*network.Network, error) {
	fields = fields.withDefaults()

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input contains no reaches")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSchema, err, "read header")
	}

	idCol, err := findColumn(header, fields.ID)
	if err != nil {
		return nil, err
	}
	downCol, err := findColumn(header, fields.Downstream)
	if err != nil {
		return nil, err
	}

	var reaches []network.Reach
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSchema, err, "read line %d", line)
		}

		id, err := parseIntField(record, idCol, fields.ID, line)
		if err != nil {
			return nil, err
		}
		down, err := parseIntField(record, downCol, fields.Downstream, line)
		if err != nil {
			return nil, err
		}
		reaches = append(reaches, network.Reach{ID: id, DownstreamID: down})
	}

	return build(reaches)
}

// ReadCSVFile reads a network from a CSV file at path.
func ReadCSVFile(path string, fields Fields) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f, fields)
}

// findColumn locates name in the header, case-insensitively.
func findColumn(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidSchema,
		"input table must contain a %q column (case-insensitive), have: %s",
		name, strings.Join(header, ", "))
}

func parseIntField(record []string, col int, name string, line int) (int, error) {
	if col >= len(record) {
		return 0, errors.New(errors.ErrCodeInvalidSchema, "line %d: missing %q value", line, name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(record[col]))
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidSchema,
			"line %d: %q must be an integer, got %q", line, name, record[col])
	}
	return v, nil
}
