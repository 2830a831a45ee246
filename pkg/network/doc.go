// Package network models a stream network as a set of reaches.
//
// A reach is a discrete stream segment identified by a positive integer ID
// and carrying the ID of the reach immediately downstream of it. The
// sentinel [Outlet] (-1) marks a terminal reach with no downstream target.
//
// [Network] enforces the structural contract the rest of the application
// relies on: IDs are positive and unique, and downstream references are
// either positive or the outlet sentinel. It deliberately does not validate
// topology (cycles, unreachable reaches) - routing models tolerate forests,
// and a downstream ID that matches no reach in the set is a harmless
// grouping key.
//
// [Network.Topology] derives the upstream adjacency index used to build
// connectivity tables:
//
//	net := network.New()
//	net.AddReach(network.Reach{ID: 2, DownstreamID: 1})
//	net.AddReach(network.Reach{ID: 1, DownstreamID: network.Outlet})
//	topo := net.Topology()
//	topo.Upstream[1] // [2]
package network
