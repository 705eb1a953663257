package graph

// SourceType enumerates the provenance kinds an evidence record can point at.
type SourceType string

const (
	SourceTypeFile      SourceType = "file"
	SourceTypeInterview SourceType = "interview"
	SourceTypeTicket    SourceType = "ticket"
	SourceTypeEmail     SourceType = "email"
	SourceTypeOther     SourceType = "other"
)

// Evidence is a provenance record linking a node or edge back to the
// artifact and excerpt that justified its extraction.
//
// Path locates the excerpt within the source (line range, sheet name) and
// may be empty. SnippetHash is a content fingerprint of the quote, kept
// opaque and used for dedup/audit downstream.
type Evidence struct {
	SourceType  SourceType `json:"source_type"`
	SourceID    string     `json:"source_id"`
	Path        string     `json:"path"`
	Quote       string     `json:"quote"`
	SnippetHash string     `json:"snippet_hash,omitempty"`
}

// Node is an extracted entity: a process, risk, person, document, decision
// rule or similar. Center nodes form the permanent skeleton of the diagram;
// satellites only appear when a connected center is expanded.
type Node struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	Center   bool       `json:"center"`
	Evidence []Evidence `json:"evidence"`
}

// Edge is a directed relation between two entities. Key is assigned during
// normalization so edges are addressable; the wire payload carries no edge id.
type Edge struct {
	Key        string     `json:"key"`
	Source     string     `json:"source"`
	Target     string     `json:"target"`
	Type       string     `json:"type"`
	Confidence float64    `json:"confidence"`
	Evidence   []Evidence `json:"evidence"`
}

// Graph is the normalized, immutable entity graph for one session.
//
// Invariants (established by Normalize, relied on everywhere else):
//   - node ids are unique
//   - every edge's Source and Target resolve to a node in Nodes
//
// Exploration state (toggles, expansion, selection) is layered on top of a
// Graph without mutating it; a new payload replaces the Graph wholesale.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// EdgeByKey returns the edge with the given key, or nil.
func (g *Graph) EdgeByKey(key string) *Edge {
	for i := range g.Edges {
		if g.Edges[i].Key == key {
			return &g.Edges[i]
		}
	}
	return nil
}

// Neighborhood returns the ids of all nodes directly connected to id by a
// single edge, in either direction.
func (g *Graph) Neighborhood(id string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, e := range g.Edges {
		if e.Source == id {
			out[e.Target] = struct{}{}
		}
		if e.Target == id {
			out[e.Source] = struct{}{}
		}
	}
	return out
}
