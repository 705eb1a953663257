package layout

import (
	"reflect"
	"testing"
)

func TestComputeDeterminism(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	edges := []Edge{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "c"},
		{Source: "b", Target: "d"},
		{Source: "c", Target: "d"},
		{Source: "d", Target: "e"},
	}

	first := Compute(DefaultConfig(), ids, edges, DirectionLeftRight)
	for i := 0; i < 10; i++ {
		if got := Compute(DefaultConfig(), ids, edges, DirectionLeftRight); !reflect.DeepEqual(got, first) {
			t.Fatalf("layout not deterministic: %v vs %v", got, first)
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(DefaultConfig(), nil, nil, DirectionLeftRight)
	if len(got) != 0 {
		t.Errorf("expected no positions, got %v", got)
	}
}

func TestComputeSingleNodeAtOrigin(t *testing.T) {
	got := Compute(DefaultConfig(), []string{"only"}, nil, DirectionLeftRight)
	if pos := got["only"]; pos.X != 0 || pos.Y != 0 {
		t.Errorf("single node at %v, want origin", pos)
	}
}

func TestComputeRanksFollowEdges(t *testing.T) {
	ids := []string{"a", "b", "c"}
	edges := []Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
	}

	lr := Compute(DefaultConfig(), ids, edges, DirectionLeftRight)
	if !(lr["a"].X < lr["b"].X && lr["b"].X < lr["c"].X) {
		t.Errorf("LR chain not ordered on X: %v", lr)
	}

	tb := Compute(DefaultConfig(), ids, edges, DirectionTopBottom)
	if !(tb["a"].Y < tb["b"].Y && tb["b"].Y < tb["c"].Y) {
		t.Errorf("TB chain not ordered on Y: %v", tb)
	}
}

func TestComputeCycleStillPlacesAll(t *testing.T) {
	ids := []string{"a", "b", "c"}
	edges := []Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
		{Source: "c", Target: "a"},
	}
	got := Compute(DefaultConfig(), ids, edges, DirectionLeftRight)
	if len(got) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(got))
	}
}

func TestComputeNoOverlapWithinRank(t *testing.T) {
	ids := []string{"root", "s1", "s2", "s3", "s4"}
	edges := []Edge{
		{Source: "root", Target: "s1"},
		{Source: "root", Target: "s2"},
		{Source: "root", Target: "s3"},
		{Source: "root", Target: "s4"},
	}
	got := Compute(DefaultConfig(), ids, edges, DirectionLeftRight)

	seen := make(map[Position]string)
	for id, pos := range got {
		if other, dup := seen[pos]; dup {
			t.Errorf("nodes %q and %q share position %v", id, other, pos)
		}
		seen[pos] = id
	}
}

func TestComputeDisconnectedComponents(t *testing.T) {
	ids := []string{"a", "b", "x", "y", "lone"}
	edges := []Edge{
		{Source: "a", Target: "b"},
		{Source: "x", Target: "y"},
	}
	got := Compute(DefaultConfig(), ids, edges, DirectionLeftRight)
	if len(got) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(got))
	}
	// Both chain heads and the isolated node sit in rank zero.
	if got["a"].X != got["x"].X || got["a"].X != got["lone"].X {
		t.Errorf("rank-zero nodes not aligned: %v", got)
	}
}

func TestComputeIgnoresUnknownEndpointsAndSelfLoops(t *testing.T) {
	ids := []string{"a", "b"}
	edges := []Edge{
		{Source: "a", Target: "a"},
		{Source: "a", Target: "missing"},
		{Source: "a", Target: "b"},
	}
	got := Compute(DefaultConfig(), ids, edges, DirectionLeftRight)
	if len(got) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(got))
	}
	if !(got["a"].X < got["b"].X) {
		t.Errorf("edge a->b not ranked: %v", got)
	}
}
