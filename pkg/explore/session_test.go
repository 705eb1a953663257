package explore

import (
	"reflect"
	"sort"
	"testing"

	"github.com/handover-hq/atlas/pkg/graph"
	"github.com/handover-hq/atlas/pkg/layout"
)

func sessionFixture(t *testing.T, payload string) *Session {
	t.Helper()
	raw, err := graph.Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode fixture payload: %v", err)
	}
	return NewSession(graph.Normalize(raw))
}

const forecastPayload = `{
	"nodes": [
		{"id": "p1", "type": "Process", "name": "Loss Forecasting", "center": true},
		{"id": "d1", "type": "Document", "name": "Q3_Loss_Forecast.xlsx", "center": false}
	],
	"edges": [
		{"source": "p1", "target": "d1", "type": "references"}
	]
}`

func frameNodeIDs(f Frame) []string {
	ids := make([]string, len(f.Nodes))
	for i, n := range f.Nodes {
		ids[i] = n.ID
	}
	sort.Strings(ids)
	return ids
}

func TestExpandCollapseScenario(t *testing.T) {
	s := sessionFixture(t, forecastPayload)

	base := s.Frame()
	if got := frameNodeIDs(base); !reflect.DeepEqual(got, []string{"p1"}) {
		t.Fatalf("base view shows %v, want only p1", got)
	}
	if len(base.Edges) != 0 {
		t.Fatalf("base view has %d edges, want 0", len(base.Edges))
	}

	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})
	expanded := s.Frame()
	if got := frameNodeIDs(expanded); !reflect.DeepEqual(got, []string{"d1", "p1"}) {
		t.Fatalf("expanded view shows %v, want p1 and d1", got)
	}
	if len(expanded.Edges) != 1 || expanded.Edges[0].Label != "references" {
		t.Fatalf("expanded view edges = %+v, want one references edge", expanded.Edges)
	}
	if expanded.Selection == nil || expanded.Selection.NodeID != "p1" {
		t.Errorf("selection = %+v, want p1", expanded.Selection)
	}
	focus := append([]string(nil), expanded.Focus...)
	sort.Strings(focus)
	if !reflect.DeepEqual(focus, []string{"d1", "p1"}) {
		t.Errorf("focus request = %v, want p1 and d1", expanded.Focus)
	}

	// The focus request is cosmetic and reported exactly once.
	if next := s.Frame(); len(next.Focus) != 0 {
		t.Errorf("focus request repeated: %v", next.Focus)
	}

	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})
	collapsed := s.Frame()
	if got := frameNodeIDs(collapsed); !reflect.DeepEqual(got, []string{"p1"}) {
		t.Fatalf("collapsed view shows %v, want only p1", got)
	}
}

func TestClickSatelliteDoesNotExpand(t *testing.T) {
	s := sessionFixture(t, forecastPayload)
	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})

	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "d1"})
	if got := s.Expanded(); !reflect.DeepEqual(got, []string{"p1"}) {
		t.Errorf("expanded = %v, want unchanged [p1]", got)
	}
	if sel := s.Selection(); sel == nil || sel.NodeID != "d1" {
		t.Errorf("selection = %+v, want d1", sel)
	}
}

func TestSelectionInvalidatedByToggle(t *testing.T) {
	s := sessionFixture(t, forecastPayload)
	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})
	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "d1"})

	s.SetToggle("documents", false)
	if sel := s.Selection(); sel != nil {
		t.Errorf("selection = %+v, want idle after hiding its category", sel)
	}
	if got := frameNodeIDs(s.Frame()); !reflect.DeepEqual(got, []string{"p1"}) {
		t.Errorf("visible after toggle = %v, want only p1", got)
	}
}

func TestEdgeSelectionInvalidatedByCollapse(t *testing.T) {
	s := sessionFixture(t, forecastPayload)
	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})

	key := s.Frame().Edges[0].Key
	s.Click(ClickEvent{Kind: SelectionEdge, EdgeKey: key})
	if sel := s.Selection(); sel == nil || sel.EdgeKey != key {
		t.Fatalf("selection = %+v, want edge %q", sel, key)
	}

	s.Reset()
	if sel := s.Selection(); sel != nil {
		t.Errorf("selection = %+v, want idle after reset hid the edge", sel)
	}
}

func TestClickUnknownEntityClearsSelection(t *testing.T) {
	s := sessionFixture(t, forecastPayload)
	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "p1"})

	s.Click(ClickEvent{Kind: SelectionNode, NodeID: "nope"})
	if sel := s.Selection(); sel != nil {
		t.Errorf("selection = %+v, want idle", sel)
	}
	if got := s.Expanded(); !reflect.DeepEqual(got, []string{"p1"}) {
		t.Errorf("expanded = %v, unknown click must not change expansion", got)
	}
}

func TestSetDirection(t *testing.T) {
	s := sessionFixture(t, forecastPayload)

	s.SetDirection(layout.DirectionTopBottom)
	if got := s.Frame().Direction; got != layout.DirectionTopBottom {
		t.Errorf("direction = %v, want TB", got)
	}

	s.SetDirection("diagonal")
	if got := s.Direction(); got != layout.DirectionTopBottom {
		t.Errorf("invalid direction accepted: %v", got)
	}
}

func TestFrameNodeAppearance(t *testing.T) {
	s := sessionFixture(t, forecastPayload)
	f := s.Frame()

	n := f.Nodes[0]
	if n.Label != "Loss Forecasting" {
		t.Errorf("label = %q", n.Label)
	}
	if n.Color != graph.ColorForType("Process") {
		t.Errorf("color = %q, want stable type color", n.Color)
	}
	cfg := layout.DefaultConfig()
	if n.Width != cfg.NodeWidth || n.Height != cfg.NodeHeight {
		t.Errorf("dimensions = %vx%v, want uniform config dimensions", n.Width, n.Height)
	}
}
