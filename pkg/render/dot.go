// Package render draws stream networks as node-link diagrams.
//
// ToDOT emits Graphviz DOT with flow direction top-to-bottom; RenderSVG and
// RenderPNG rasterize it via the embedded Graphviz engine. The diagrams are
// an inspection aid for the network a connectivity build consumes.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/hydrokit/streamnet/pkg/network"
)

// ToDOT converts a network to Graphviz DOT format.
//
// Reaches are boxes; edges point downstream. Outlet reaches get a double
// border. A downstream ID that matches no reach in the set is drawn as a
// dashed phantom node so dangling references are visible rather than
// silently dropped.
func ToDOT(net *network.Network) string {
	var buf bytes.Buffer
	buf.WriteString("digraph streams {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=lightblue, fontsize=14];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("\n")

	ids := net.IDs()
	for _, id := range ids {
		r, _ := net.Reach(id)
		if r.IsOutlet() {
			fmt.Fprintf(&buf, "  %d [peripheries=2];\n", id)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", id)
		}
	}

	// Phantom targets: downstream IDs outside the reach set.
	seen := map[int]bool{}
	for _, id := range ids {
		r, _ := net.Reach(id)
		if r.IsOutlet() {
			continue
		}
		if _, ok := net.Reach(r.DownstreamID); !ok && !seen[r.DownstreamID] {
			seen[r.DownstreamID] = true
			fmt.Fprintf(&buf, "  %d [style=\"rounded,dashed\", fillcolor=white, label=\"%d (external)\"];\n",
				r.DownstreamID, r.DownstreamID)
		}
	}

	buf.WriteString("\n")
	for _, id := range ids {
		r, _ := net.Reach(id)
		if !r.IsOutlet() {
			fmt.Fprintf(&buf, "  %d -> %d;\n", r.ID, r.DownstreamID)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
