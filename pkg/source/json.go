package source

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hydrokit/streamnet/pkg/errors"
	"github.com/hydrokit/streamnet/pkg/network"
)

// JSONReach is the wire form of a reach.
// An absent downstream_id means the reach is a terminal outlet, matching
// the convention that a missing downstream pointer marks an outlet.
type JSONReach struct {
	ID           int  `json:"id"`
	DownstreamID *int `json:"downstream_id,omitempty"`
}

// Reach converts the wire form to a network reach.
func (j JSONReach) Reach() network.Reach {
	down := network.Outlet
	if j.DownstreamID != nil {
		down = *j.DownstreamID
	}
	return network.Reach{ID: j.ID, DownstreamID: down}
}

type jsonDocument struct {
	Reaches []JSONReach `json:"reaches"`
}

// ReadJSON reads a network from a JSON reach list:
//
//	{"reaches": [{"id": 2, "downstream_id": 1}, {"id": 1}]}
func ReadJSON(r io.Reader) (*network.Network, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON network")
	}
	return FromJSONReaches(doc.Reaches)
}

// ReadJSONFile reads a network from a JSON file at path.
func ReadJSONFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// FromJSONReaches assembles a network from already-decoded wire reaches.
// The HTTP API uses this after decoding its request envelope.
func FromJSONReaches(reaches []JSONReach) (*network.Network, error) {
	rs := make([]network.Reach, len(reaches))
	for i, j := range reaches {
		rs[i] = j.Reach()
	}
	return build(rs)
}
