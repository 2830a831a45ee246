package network

import (
	"slices"

	"github.com/hydrokit/streamnet/pkg/errors"
)

// Outlet is the downstream sentinel marking a terminal reach.
// Connectivity output remaps it to 0; see the connectivity package.
const Outlet = -1

// Reach is a single stream segment.
//
// ID must be positive. Zero and negative values are reserved as
// non-identifiers so that 0 stays unambiguous as the padding value in
// connectivity rows. DownstreamID must be positive or [Outlet]; it need not
// reference a reach present in the same network.
type Reach struct {
	ID           int
	DownstreamID int
}

// IsOutlet reports whether the reach has no downstream target.
func (r Reach) IsOutlet() bool { return r.DownstreamID == Outlet }

// Network is a set of reaches with unique IDs.
//
// Insertion order is preserved so that derived upstream lists are
// deterministic for a given input order. Network is not safe for concurrent
// use without external synchronization.
type Network struct {
	reaches map[int]Reach
	order   []int // IDs in insertion order
}

// New creates an empty network.
func New() *Network {
	return &Network{reaches: make(map[int]Reach)}
}

// AddReach adds a reach to the network.
//
// Returns ErrCodeInvalidReachID if the ID is not positive or the downstream
// ID is neither positive nor [Outlet], and ErrCodeDuplicateReach if a reach
// with the same ID was already added. Duplicates fail fast: silently keeping
// either record would corrupt the derived adjacency with no signal.
func (n *Network) AddReach(r Reach) error {
	if r.ID <= 0 {
		return errors.New(errors.ErrCodeInvalidReachID, "reach ID must be positive, got %d", r.ID)
	}
	if r.DownstreamID <= 0 && r.DownstreamID != Outlet {
		return errors.New(errors.ErrCodeInvalidReachID,
			"reach %d: downstream ID must be positive or %d (outlet), got %d", r.ID, Outlet, r.DownstreamID)
	}
	if _, ok := n.reaches[r.ID]; ok {
		return errors.New(errors.ErrCodeDuplicateReach, "reach %d defined more than once", r.ID)
	}
	n.reaches[r.ID] = r
	n.order = append(n.order, r.ID)
	return nil
}

// FromReaches builds a network from a slice of reaches.
// It returns the first validation error encountered, in input order.
func FromReaches(reaches []Reach) (*Network, error) {
	n := New()
	for _, r := range reaches {
		if err := n.AddReach(r); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Len returns the number of reaches in the network.
func (n *Network) Len() int { return len(n.order) }

// Reach returns the reach with the given ID, if present.
func (n *Network) Reach(id int) (Reach, bool) {
	r, ok := n.reaches[id]
	return r, ok
}

// Reaches returns all reaches in insertion order.
// The returned slice is a copy and can be modified safely.
func (n *Network) Reaches() []Reach {
	out := make([]Reach, len(n.order))
	for i, id := range n.order {
		out[i] = n.reaches[id]
	}
	return out
}

// IDs returns all reach IDs in ascending order.
func (n *Network) IDs() []int {
	ids := slices.Clone(n.order)
	slices.Sort(ids)
	return ids
}

// Outlets returns the IDs of terminal reaches in ascending order.
func (n *Network) Outlets() []int {
	var out []int
	for _, id := range n.IDs() {
		if n.reaches[id].IsOutlet() {
			out = append(out, id)
		}
	}
	return out
}
