package render

import (
	"strings"
	"testing"

	"github.com/hydrokit/streamnet/pkg/network"
)

func TestToDOT(t *testing.T) {
	net, err := network.FromReaches([]network.Reach{
		{ID: 1, DownstreamID: network.Outlet},
		{ID: 2, DownstreamID: 1},
		{ID: 3, DownstreamID: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(net)

	for _, want := range []string{
		"digraph streams {",
		"rankdir=TB",
		"1 [peripheries=2];", // outlet gets a double border
		"2 -> 1;",
		"3 -> 1;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	// Outlets have no outgoing edge.
	if strings.Contains(dot, "1 -> ") {
		t.Errorf("outlet should have no downstream edge:\n%s", dot)
	}
}

func TestToDOTPhantomDownstream(t *testing.T) {
	net, err := network.FromReaches([]network.Reach{
		{ID: 1, DownstreamID: 99},
		{ID: 2, DownstreamID: 99},
	})
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(net)

	if !strings.Contains(dot, `label="99 (external)"`) {
		t.Errorf("phantom downstream node missing:\n%s", dot)
	}
	// The phantom node is declared once even with two referencing reaches.
	if strings.Count(dot, "(external)") != 1 {
		t.Errorf("phantom node should be declared once:\n%s", dot)
	}
	if !strings.Contains(dot, "1 -> 99;") || !strings.Contains(dot, "2 -> 99;") {
		t.Errorf("edges to phantom node missing:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	net, err := network.FromReaches([]network.Reach{
		{ID: 4, DownstreamID: 2},
		{ID: 2, DownstreamID: 1},
		{ID: 1, DownstreamID: network.Outlet},
	})
	if err != nil {
		t.Fatal(err)
	}

	if ToDOT(net) != ToDOT(net) {
		t.Error("ToDOT should be deterministic for the same network")
	}
}
