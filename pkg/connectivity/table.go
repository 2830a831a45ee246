package connectivity

import (
	"github.com/hydrokit/streamnet/pkg/errors"
	"github.com/hydrokit/streamnet/pkg/network"
)

// Width bounds for an explicit upstream bound, per the routing model's
// input contract. Build itself only enforces the overflow rule; callers
// validate the range with ValidateMaxUpstreams before invoking it.
const (
	MinMaxUpstreams = 1
	MaxMaxUpstreams = 12
)

// Options configures table construction.
type Options struct {
	// MaxUpstreams bounds the number of upstream columns. Zero means
	// "use the maximum observed fan-in". A reach whose fan-in exceeds a
	// non-zero bound fails the build - upstream IDs are never truncated.
	MaxUpstreams int
}

// Row is one connectivity record: reach ID, normalized downstream ID,
// upstream count, then upstream IDs padded with zeros to the table width.
// Every row in a table has length 3 + width.
type Row []int

// ID returns the reach ID (first column).
func (r Row) ID() int { return r[0] }

// DownstreamID returns the normalized downstream ID (0 = outlet).
func (r Row) DownstreamID() int { return r[1] }

// UpstreamCount returns the number of non-padding upstream IDs.
func (r Row) UpstreamCount() int { return r[2] }

// UpstreamIDs returns the upstream IDs without padding.
func (r Row) UpstreamIDs() []int { return r[3 : 3+r[2]] }

// Table is a complete connectivity table with one row per reach,
// ascending by reach ID.
type Table struct {
	Rows  []Row
	Width int // upstream columns per row
}

// ValidateMaxUpstreams checks an explicit upstream bound against the
// routing model's accepted range. Zero is valid and means "no bound".
func ValidateMaxUpstreams(n int) error {
	if n == 0 {
		return nil
	}
	if n < MinMaxUpstreams || n > MaxMaxUpstreams {
		return errors.New(errors.ErrCodeInvalidWidth,
			"maximum number of upstream reaches must be within [%d, %d], got %d",
			MinMaxUpstreams, MaxMaxUpstreams, n)
	}
	return nil
}

// Build derives the connectivity table for a network.
//
// The width is opts.MaxUpstreams when non-zero, otherwise the maximum
// fan-in observed across the network. Build fails with ErrCodeFanInOverflow
// if any reach's fan-in exceeds an explicit bound: truncating upstream IDs
// would silently corrupt the topology.
func Build(net *network.Network, opts Options) (*Table, error) {
	ids := net.IDs()
	topo := net.Topology()

	width := topo.MaxFanIn(ids)
	if opts.MaxUpstreams != 0 {
		width = opts.MaxUpstreams
	}

	t := &Table{Rows: make([]Row, 0, len(ids)), Width: width}
	for _, id := range ids {
		upstream := topo.UpstreamOf(id)
		if len(upstream) > width {
			return nil, errors.New(errors.ErrCodeFanInOverflow,
				"reach %d has %d upstream reaches, exceeding the maximum of %d",
				id, len(upstream), width)
		}

		downstream := topo.Downstream[id]
		if downstream == network.Outlet {
			downstream = 0
		}

		row := make(Row, 0, 3+width)
		row = append(row, id, downstream, len(upstream))
		row = append(row, upstream...)
		for len(row) < 3+width {
			row = append(row, 0)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
