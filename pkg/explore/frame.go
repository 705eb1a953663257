package explore

import (
	"github.com/handover-hq/atlas/pkg/graph"
	"github.com/handover-hq/atlas/pkg/layout"
)

// DisplayNode is one positioned node of a render pass. X and Y are the
// top-left corner of the node's bounding box.
type DisplayNode struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Type   string  `json:"type"`
	Center bool    `json:"center"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// DisplayEdge is one drawn edge; its routing is implied by the endpoint
// positions.
type DisplayEdge struct {
	Key    string `json:"key"`
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Frame is everything the rendering surface needs for one render pass.
// Focus, when non-empty, asks the surface to pan/zoom the listed nodes into
// view; it is reported once and then cleared.
type Frame struct {
	Nodes     []DisplayNode    `json:"nodes"`
	Edges     []DisplayEdge    `json:"edges"`
	Focus     []string         `json:"focus,omitempty"`
	Toggles   graph.Toggles    `json:"toggles"`
	Direction layout.Direction `json:"direction"`
	Expanded  []string         `json:"expanded"`
	Selection *Selection       `json:"selection,omitempty"`
}

// Frame recomputes the visible subgraph, lays it out, and assigns colors.
// DisplayNodes and DisplayEdges are rebuilt from scratch on every call; the
// full relayout is the accepted cost of any state change since the drawn
// subgraph stays small.
func (s *Session) Frame() Frame {
	sub := graph.VisibleSubgraph(s.graph, s.toggles, s.expanded)

	ids := make([]string, len(sub.Nodes))
	for i, n := range sub.Nodes {
		ids[i] = n.ID
	}
	edges := make([]layout.Edge, len(sub.Edges))
	for i, e := range sub.Edges {
		edges[i] = layout.Edge{Source: e.Source, Target: e.Target}
	}
	positions := layout.Compute(s.layoutCfg, ids, edges, s.direction)

	frame := Frame{
		Nodes:     make([]DisplayNode, len(sub.Nodes)),
		Edges:     make([]DisplayEdge, len(sub.Edges)),
		Focus:     s.focus,
		Toggles:   s.Toggles(),
		Direction: s.direction,
		Expanded:  s.Expanded(),
		Selection: s.selection,
	}
	for i, n := range sub.Nodes {
		pos := positions[n.ID]
		frame.Nodes[i] = DisplayNode{
			ID:     n.ID,
			Label:  n.Name,
			Type:   n.Type,
			Center: n.Center,
			Color:  graph.ColorForType(n.Type),
			Width:  s.layoutCfg.NodeWidth,
			Height: s.layoutCfg.NodeHeight,
			X:      pos.X,
			Y:      pos.Y,
		}
	}
	for i, e := range sub.Edges {
		frame.Edges[i] = DisplayEdge{
			Key:    e.Key,
			Source: e.Source,
			Target: e.Target,
			Label:  e.Type,
		}
	}

	s.focus = nil

	return frame
}
