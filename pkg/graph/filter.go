package graph

import (
	"sort"
	"strings"
)

// Toggles maps a category key (see Category) to its visibility. Categories
// without an entry are visible.
type Toggles map[string]bool

// Visible reports whether the given node type passes the toggles.
func (t Toggles) Visible(nodeType string) bool {
	on, ok := t[Category(nodeType)]
	if !ok {
		return true
	}
	return on
}

// Category maps a node type label to the toggle key the UI exposes for it,
// e.g. "Document" -> "documents", "Person" -> "people".
func Category(nodeType string) string {
	c := strings.ToLower(strings.TrimSpace(nodeType))
	switch c {
	case "", "entity":
		return "entities"
	case "person":
		return "people"
	case "process":
		return "processes"
	}
	if strings.HasSuffix(c, "s") {
		return c
	}
	return c + "s"
}

// Categories returns the sorted set of toggle keys present in the graph.
func Categories(g *Graph) []string {
	set := make(map[string]struct{})
	for _, n := range g.Nodes {
		set[Category(n.Type)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// VisibleSubgraph derives the currently drawn subgraph from the full graph,
// the category toggles, and the set of expanded center ids.
//
// Toggles are evaluated before expansion: a hidden category never reappears
// through a neighborhood. Centers passing the toggles are always shown; each
// expanded center additionally contributes its one-hop neighborhood, so
// expanding a second center extends the satellite set rather than replacing
// it. Edges are kept only when both endpoints survive. The input graph is
// never mutated; node and edge values are shared with the result.
func VisibleSubgraph(g *Graph, toggles Toggles, expanded map[string]struct{}) *Graph {
	allowed := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if toggles.Visible(n.Type) {
			allowed[n.ID] = struct{}{}
		}
	}

	visible := make(map[string]struct{}, len(allowed))
	for _, n := range g.Nodes {
		if !n.Center {
			continue
		}
		if _, ok := allowed[n.ID]; ok {
			visible[n.ID] = struct{}{}
		}
	}

	for id := range expanded {
		for neighbor := range g.Neighborhood(id) {
			if _, ok := allowed[neighbor]; ok {
				visible[neighbor] = struct{}{}
			}
		}
	}

	sub := &Graph{
		Nodes: make([]Node, 0, len(visible)),
		Edges: make([]Edge, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		if _, ok := visible[n.ID]; ok {
			sub.Nodes = append(sub.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if _, ok := visible[e.Source]; !ok {
			continue
		}
		if _, ok := visible[e.Target]; !ok {
			continue
		}
		sub.Edges = append(sub.Edges, e)
	}

	return sub
}
