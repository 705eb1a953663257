package explore

import "github.com/handover-hq/atlas/pkg/graph"

// NoEvidenceMessage is shown when the selected entity carries no provenance.
const NoEvidenceMessage = "No evidence recorded for this entity."

// evidencePathPlaceholder stands in for an empty locator.
const evidencePathPlaceholder = "—"

// EvidenceRow is one provenance record prepared for display.
type EvidenceRow struct {
	SourceType  string `json:"source_type"`
	SourceID    string `json:"source_id"`
	Path        string `json:"path"`
	Quote       string `json:"quote"`
	SnippetHash string `json:"snippet_hash,omitempty"`
}

// DetailView is the evidence panel content for the current selection.
// Message is set instead of Evidence when the entity has none.
type DetailView struct {
	Kind     SelectionKind `json:"kind"`
	Type     string        `json:"type"`
	Name     string        `json:"name"`
	Evidence []EvidenceRow `json:"evidence,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// Detail renders the selected entity's provenance. It is a pure function of
// the selection: no computation beyond formatting happens here. Returns nil
// when nothing is selected.
func (s *Session) Detail() *DetailView {
	if s.selection == nil {
		return nil
	}

	switch s.selection.Kind {
	case SelectionNode:
		n := s.graph.NodeByID(s.selection.NodeID)
		if n == nil {
			return nil
		}
		return detailView(SelectionNode, n.Type, n.Name, n.Evidence)
	case SelectionEdge:
		e := s.graph.EdgeByKey(s.selection.EdgeKey)
		if e == nil {
			return nil
		}
		return detailView(SelectionEdge, e.Type, e.Source+" → "+e.Target, e.Evidence)
	}
	return nil
}

func detailView(kind SelectionKind, entityType, name string, evidence []graph.Evidence) *DetailView {
	view := &DetailView{
		Kind: kind,
		Type: entityType,
		Name: name,
	}
	if len(evidence) == 0 {
		view.Message = NoEvidenceMessage
		return view
	}
	view.Evidence = make([]EvidenceRow, len(evidence))
	for i, ev := range evidence {
		path := ev.Path
		if path == "" {
			path = evidencePathPlaceholder
		}
		view.Evidence[i] = EvidenceRow{
			SourceType:  string(ev.SourceType),
			SourceID:    ev.SourceID,
			Path:        path,
			Quote:       ev.Quote,
			SnippetHash: ev.SnippetHash,
		}
	}
	return view
}
