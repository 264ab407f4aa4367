package graphio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mengfei0517/robocasa/pkg/depgraph"
)

// ToDOT returns a Graphviz DOT representation of the dependency graph.
//
// Entities are rendered as boxes in declaration order; an edge A -> B
// means A cannot resolve before B. The output can be rendered with
// Graphviz tools (dot, neato) or programmatically with RenderSVG.
func ToDOT(g *depgraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n\n")

	for _, name := range g.Names() {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}
	buf.WriteString("\n")
	for _, from := range g.Names() {
		for _, to := range g.Deps(from) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the dependency graph as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz
// to render it. The returned bytes are a complete SVG document suitable
// for embedding in HTML or saving to a file.
//
// RenderSVG requires the Graphviz library (github.com/goccy/go-graphviz).
// Errors are returned if Graphviz cannot initialize, the DOT is malformed,
// or rendering fails.
func RenderSVG(ctx context.Context, g *depgraph.Graph) ([]byte, error) {
	dot := ToDOT(g)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render SVG: %w", err)
	}
	return buf.Bytes(), nil
}
