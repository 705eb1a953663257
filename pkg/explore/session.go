// Package explore owns the interaction state of one graph exploration: what
// is selected, which centers are expanded, which categories are toggled off,
// and which way the diagram flows. All derived data (visible subgraph,
// layout, colors) is recomputed per frame; nothing here mutates the
// underlying graph.
package explore

import (
	"sort"

	"github.com/handover-hq/atlas/pkg/graph"
	"github.com/handover-hq/atlas/pkg/layout"
)

// SelectionKind tags the two selectable entity kinds.
type SelectionKind string

const (
	SelectionNode SelectionKind = "node"
	SelectionEdge SelectionKind = "edge"
)

// Selection references the currently selected entity. Exactly one of NodeID
// or EdgeKey is set, according to Kind.
type Selection struct {
	Kind    SelectionKind `json:"kind"`
	NodeID  string        `json:"node_id,omitempty"`
	EdgeKey string        `json:"edge_key,omitempty"`
}

// ClickEvent is a click reported by the rendering surface.
type ClickEvent struct {
	Kind    SelectionKind
	NodeID  string
	EdgeKey string
}

// Session is the interaction controller for one loaded graph. It is not safe
// for concurrent use; the registry serializes access to it. The graph itself
// is immutable and shared.
type Session struct {
	graph     *graph.Graph
	toggles   graph.Toggles
	expanded  map[string]struct{}
	direction layout.Direction
	selection *Selection
	layoutCfg layout.Config

	// focus is the pending viewport request recorded on expansion and
	// consumed by the next Frame. Cosmetic, never blocks a transition.
	focus []string
}

// NewSession wraps a normalized graph with fresh exploration state: nothing
// selected, nothing expanded, every category visible, left-to-right flow.
func NewSession(g *graph.Graph) *Session {
	return &Session{
		graph:     g,
		toggles:   graph.Toggles{},
		expanded:  make(map[string]struct{}),
		direction: layout.DirectionLeftRight,
		layoutCfg: layout.DefaultConfig(),
	}
}

// Graph returns the underlying immutable graph.
func (s *Session) Graph() *graph.Graph {
	return s.graph
}

// Click handles a click on a node or edge. Any click selects the entity and
// shows its evidence; a click on a center node additionally toggles that
// center's expansion. Clicking an already-expanded center collapses it,
// clicking a different center extends the visible satellite set. Clicks on
// unknown entities clear the selection and change nothing else.
func (s *Session) Click(ev ClickEvent) {
	switch ev.Kind {
	case SelectionNode:
		n := s.graph.NodeByID(ev.NodeID)
		if n == nil {
			s.selection = nil
			return
		}
		s.selection = &Selection{Kind: SelectionNode, NodeID: n.ID}
		if n.Center {
			s.toggleExpansion(n.ID)
		}
	case SelectionEdge:
		e := s.graph.EdgeByKey(ev.EdgeKey)
		if e == nil {
			s.selection = nil
			return
		}
		s.selection = &Selection{Kind: SelectionEdge, EdgeKey: e.Key}
	default:
		s.selection = nil
	}
	s.ensureSelectionVisible()
}

func (s *Session) toggleExpansion(id string) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return
	}

	before := graph.VisibleSubgraph(s.graph, s.toggles, s.expanded)
	s.expanded[id] = struct{}{}
	after := graph.VisibleSubgraph(s.graph, s.toggles, s.expanded)

	// Refocus on the center plus whatever the expansion revealed.
	shown := map[string]struct{}{id: {}}
	prev := make(map[string]struct{}, len(before.Nodes))
	for _, n := range before.Nodes {
		prev[n.ID] = struct{}{}
	}
	focus := []string{id}
	for _, n := range after.Nodes {
		if _, ok := prev[n.ID]; ok {
			continue
		}
		if _, ok := shown[n.ID]; ok {
			continue
		}
		focus = append(focus, n.ID)
	}
	s.focus = focus
}

// SetToggle sets the visibility of one category and re-derives dependent
// state. Category keys are the ones reported by graph.Categories.
func (s *Session) SetToggle(category string, visible bool) {
	s.toggles[category] = visible
	s.ensureSelectionVisible()
}

// Toggles returns a copy of the current toggle state.
func (s *Session) Toggles() graph.Toggles {
	out := make(graph.Toggles, len(s.toggles))
	for k, v := range s.toggles {
		out[k] = v
	}
	return out
}

// SetDirection switches the layout flow axis.
func (s *Session) SetDirection(d layout.Direction) {
	if d != layout.DirectionLeftRight && d != layout.DirectionTopBottom {
		return
	}
	s.direction = d
}

// Direction returns the current layout flow axis.
func (s *Session) Direction() layout.Direction {
	return s.direction
}

// Selection returns the current selection, or nil when idle.
func (s *Session) Selection() *Selection {
	return s.selection
}

// Expanded returns the ids of the currently expanded centers, sorted.
func (s *Session) Expanded() []string {
	out := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Reset collapses every expanded center, returning the diagram to its base
// skeleton. The selection is cleared if it pointed at something no longer
// drawn.
func (s *Session) Reset() {
	s.expanded = make(map[string]struct{})
	s.focus = nil
	s.ensureSelectionVisible()
}

// ensureSelectionVisible clears the selection when the selected entity is no
// longer part of the drawn subgraph. The detail panel must never reference
// an undrawn entity.
func (s *Session) ensureSelectionVisible() {
	if s.selection == nil {
		return
	}
	sub := graph.VisibleSubgraph(s.graph, s.toggles, s.expanded)
	switch s.selection.Kind {
	case SelectionNode:
		if sub.NodeByID(s.selection.NodeID) == nil {
			s.selection = nil
		}
	case SelectionEdge:
		if sub.EdgeByKey(s.selection.EdgeKey) == nil {
			s.selection = nil
		}
	}
}
