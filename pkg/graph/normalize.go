package graph

import (
	"fmt"
	"strings"
)

const (
	// DefaultNodeType is assigned to nodes whose category is missing.
	DefaultNodeType = "Entity"
	// DefaultEdgeType is assigned to edges whose relation label is missing.
	DefaultEdgeType = "related_to"
)

// Normalize converts a loosely-typed wire payload into a strict Graph. It is
// total: any RawGraph (including the zero value) yields a well-formed Graph
// and missing fields are repaired with defaults instead of raising errors.
//
// Repair rules:
//   - missing nodes array: empty graph
//   - node id coerced to string, empty-string id accepted
//   - node type defaults to DefaultNodeType, name falls back to label then id
//   - center defaults to true unless explicitly false
//   - duplicate node ids keep the first occurrence
//   - edge type falls back to label then DefaultEdgeType
//   - edge confidence defaults to 1 and is clamped to [0, 1]
//   - edges referencing unknown node ids are dropped
//
// Every other package assumes a fully-populated Graph; no defaulting happens
// outside this function.
func Normalize(raw RawGraph) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(raw.Nodes)),
		Edges: make([]Edge, 0, len(raw.Edges)),
	}

	seen := make(map[string]struct{}, len(raw.Nodes))
	for _, rn := range raw.Nodes {
		id := coerceID(rn.ID)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		nodeType := rn.Type
		if nodeType == "" {
			nodeType = DefaultNodeType
		}

		name := rn.Name
		if name == "" {
			name = rn.Label
		}
		if name == "" {
			name = id
		}

		center := true
		if rn.Center != nil {
			center = *rn.Center
		}

		g.Nodes = append(g.Nodes, Node{
			ID:       id,
			Type:     nodeType,
			Name:     name,
			Center:   center,
			Evidence: normalizeEvidence(rn.Evidence),
		})
	}

	keys := make(map[string]int, len(raw.Edges))
	for _, re := range raw.Edges {
		source := coerceID(re.Source)
		target := coerceID(re.Target)

		// The extraction backend occasionally references entities that were
		// filtered upstream; such edges are dropped, not reported.
		if _, ok := seen[source]; !ok {
			continue
		}
		if _, ok := seen[target]; !ok {
			continue
		}

		edgeType := re.Type
		if edgeType == "" {
			edgeType = re.Label
		}
		if edgeType == "" {
			edgeType = DefaultEdgeType
		}

		confidence := 1.0
		if re.Confidence != nil {
			confidence = *re.Confidence
		}
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}

		key := fmt.Sprintf("%s:%s:%s", source, edgeType, target)
		keys[key]++
		if n := keys[key]; n > 1 {
			key = fmt.Sprintf("%s#%d", key, n)
		}

		g.Edges = append(g.Edges, Edge{
			Key:        key,
			Source:     source,
			Target:     target,
			Type:       edgeType,
			Confidence: confidence,
			Evidence:   normalizeEvidence(re.Evidence),
		})
	}

	return g
}

func normalizeEvidence(raw []RawEvidence) []Evidence {
	out := make([]Evidence, 0, len(raw))
	for _, re := range raw {
		out = append(out, Evidence{
			SourceType:  normalizeSourceType(re.SourceType),
			SourceID:    re.SourceID,
			Path:        re.Path,
			Quote:       re.Quote,
			SnippetHash: re.SnippetHash,
		})
	}
	return out
}

func normalizeSourceType(s string) SourceType {
	switch SourceType(strings.ToLower(strings.TrimSpace(s))) {
	case SourceTypeFile:
		return SourceTypeFile
	case SourceTypeInterview:
		return SourceTypeInterview
	case SourceTypeTicket:
		return SourceTypeTicket
	case SourceTypeEmail:
		return SourceTypeEmail
	default:
		return SourceTypeOther
	}
}
