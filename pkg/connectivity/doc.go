// Package connectivity builds fixed-width upstream-connectivity tables from
// stream networks.
//
// The table format is the row-per-reach layout consumed by hydrological
// routing models: each row holds
//
//	reachID, downstreamID, upstreamCount, upstream1, ..., upstreamN
//
// padded with zeros to a fixed number of upstream columns (the width).
// Rows ascend by reach ID. The outlet sentinel -1 is remapped to 0 in the
// downstream column, and the width is the maximum observed fan-in unless the
// caller supplies an explicit bound.
//
// The transform is a pure, single-pass batch operation: for a fixed reach
// set and input order the output is byte-for-byte reproducible.
//
//	table, err := connectivity.Build(net, connectivity.Options{})
//	if err != nil {
//	    return err
//	}
//	err = table.WriteCSV(os.Stdout)
package connectivity
