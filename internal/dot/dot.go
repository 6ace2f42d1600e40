// Package dot renders a graph.Graph as Graphviz DOT text. It is the one
// concrete renderer this module ships; graph.Graph itself stays free of
// any rendering concern so a different renderer could replace this one
// without touching the compiler pipeline.
package dot

import (
	"fmt"
	"strings"

	"github.com/coregx/rexfsm/graph"
)

// Render writes g as a DOT "digraph" description: one node statement per
// graph.Node (shape attribute taken from Node.Shape) and one edge
// statement per graph.Edge (labeled when Edge.Label is non-empty).
func Render(name string, g *graph.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quoteIfNeeded(name))
	fmt.Fprintf(&b, "\trankdir=LR;\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "\t%s [shape=%s", quoteIfNeeded(n.ID), n.Shape)
		if n.Label != "" {
			fmt.Fprintf(&b, ", label=%q", n.Label)
		}
		b.WriteString("];\n")
	}

	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\t%s -> %s", quoteIfNeeded(e.From), quoteIfNeeded(e.To))
		if e.Label != "" {
			fmt.Fprintf(&b, " [label=%q]", e.Label)
		}
		b.WriteString(";\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// quoteIfNeeded wraps id in double quotes if it contains characters DOT
// would not accept in a bare identifier.
func quoteIfNeeded(id string) string {
	for _, r := range id {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return fmt.Sprintf("%q", id)
		}
	}
	return id
}
