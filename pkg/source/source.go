// Package source reads stream networks from tabular inputs.
//
// Two formats are supported: CSV attribute tables exported from drainage
// line feature classes (the common case), and a JSON reach list used by the
// HTTP API. CSV columns are located by case-insensitive name match so that
// "HYDROID", "HydroID" and "hydroid" all resolve to the same field, matching
// the behavior of the GIS tooling that produces these tables.
package source

import (
	"path/filepath"
	"strings"

	"github.com/hydrokit/streamnet/pkg/errors"
	"github.com/hydrokit/streamnet/pkg/network"
)

// Default column names on drainage line attribute tables.
const (
	DefaultIDField         = "HydroID"
	DefaultDownstreamField = "NextDownID"
)

// Fields names the two integer columns a CSV source must provide.
// Matching is case-insensitive.
type Fields struct {
	ID         string // reach identifier column
	Downstream string // downstream reach identifier column
}

// DefaultFields returns the conventional column names.
func DefaultFields() Fields {
	return Fields{ID: DefaultIDField, Downstream: DefaultDownstreamField}
}

// withDefaults fills empty field names with the conventional ones.
func (f Fields) withDefaults() Fields {
	if f.ID == "" {
		f.ID = DefaultIDField
	}
	if f.Downstream == "" {
		f.Downstream = DefaultDownstreamField
	}
	return f
}

// ReadFile reads a network from path, picking the format by extension:
// ".json" is parsed as a JSON reach list, everything else as CSV.
func ReadFile(path string, fields Fields) (*network.Network, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSONFile(path)
	}
	return ReadCSVFile(path, fields)
}

// build assembles a network from parsed reaches, preserving typed errors.
func build(reaches []network.Reach) (*network.Network, error) {
	net, err := network.FromReaches(reaches)
	if err != nil {
		return nil, err
	}
	if net.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input contains no reaches")
	}
	return net, nil
}
