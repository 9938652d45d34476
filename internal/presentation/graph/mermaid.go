package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/tendril/pkg/introspect"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a
// dependency graph. It applies semantic styling:
// - Dependency function: [[Subroutine]]
// - Ref alias: [/Parallelogram/]
// - Plain value: [Rectangle]
// - Unbound name: ((Circle)), styled as a warning
// Edges point from a binding to the names it depends on; edges that are
// part of a cycle are drawn dashed.
func GenerateMermaid(g *introspect.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	cyclic := cyclicEdges(g)

	for _, name := range g.Names() {
		node, _ := g.Node(name)
		safeID := sanitizeMermaidID(name)

		// Node Shape based on Kind
		opener, closer := "[", "]"
		switch node.Kind {
		case introspect.KindFunc:
			opener, closer = "[[", "]]" // Subroutine
		case introspect.KindRef:
			opener, closer = "[/", "/]" // Parallelogram (alias)
		case introspect.KindUnbound:
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, name, closer))

		for _, dep := range node.Deps {
			arrow := "-->"
			if cyclic[edge{from: name, to: dep}] {
				arrow = "-.->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(dep)))
		}
	}

	unbound := false
	for _, name := range g.Names() {
		if node, _ := g.Node(name); node.Kind == introspect.KindUnbound {
			if !unbound {
				unbound = true
				sb.WriteString("\n    %% Unbound names resolve to themselves\n")
				// Force black text (color:#000) for high-contrast on light backgrounds
				sb.WriteString("    classDef unbound fill:#ffebee,stroke:#b71c1c,stroke-width:2px,color:#000;\n")
			}
			sb.WriteString(fmt.Sprintf("    class %s unbound;\n", sanitizeMermaidID(name)))
		}
	}

	return sb.String()
}

type edge struct {
	from, to string
}

func cyclicEdges(g *introspect.Graph) map[edge]bool {
	out := make(map[edge]bool)
	for _, cycle := range g.Cycles() {
		for i, name := range cycle {
			out[edge{from: name, to: cycle[(i+1)%len(cycle)]}] = true
		}
	}
	return out
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
