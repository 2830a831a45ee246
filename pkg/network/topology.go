package network

// Topology is the upstream adjacency index derived from a network.
//
// Downstream maps each reach ID to its downstream target (possibly
// [Outlet]). Upstream groups reach IDs by the ID they feed into: for a key
// k, Upstream[k] holds the IDs of all reaches whose downstream ID equals k,
// in network insertion order. A reach with no upstream neighbors simply has
// no entry.
//
// Upstream keys are downstream targets, so a key may reference a reach
// outside the network (or the outlet sentinel); such groups are ignored by
// consumers that iterate over reach IDs.
type Topology struct {
	Downstream map[int]int
	Upstream   map[int][]int
}

// Topology builds the adjacency index in a single pass over the reaches.
// The result is independent of the network and pure with respect to it.
func (n *Network) Topology() *Topology {
	t := &Topology{
		Downstream: make(map[int]int, len(n.order)),
		Upstream:   make(map[int][]int),
	}
	for _, id := range n.order {
		r := n.reaches[id]
		t.Downstream[r.ID] = r.DownstreamID
		t.Upstream[r.DownstreamID] = append(t.Upstream[r.DownstreamID], r.ID)
	}
	return t
}

// UpstreamOf returns the IDs of reaches flowing directly into id.
// The returned slice is shared with the index and must not be modified.
func (t *Topology) UpstreamOf(id int) []int {
	return t.Upstream[id]
}

// FanIn returns the number of reaches flowing directly into id.
func (t *Topology) FanIn(id int) int {
	return len(t.Upstream[id])
}

// MaxFanIn returns the largest fan-in across the given IDs, 0 if none of
// them has upstream neighbors.
func (t *Topology) MaxFanIn(ids []int) int {
	max := 0
	for _, id := range ids {
		if n := len(t.Upstream[id]); n > max {
			max = n
		}
	}
	return max
}
