// Package layout implements a deterministic layered (rank-based) graph
// drawing strategy in the Sugiyama style: nodes are assigned to discrete
// ranks, orderings within each rank are refined by barycenter sweeps to
// reduce crossings, and final coordinates come from rank index and in-rank
// order with configurable separation constants.
package layout

import "sort"

// Direction selects the flow axis of the drawing.
type Direction string

const (
	DirectionLeftRight Direction = "LR"
	DirectionTopBottom Direction = "TB"
)

// Position is the top-left corner of a node's bounding box. Nodes have
// uniform dimensions; centering math is the caller's responsibility.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is a directed connection between two node ids.
type Edge struct {
	Source string
	Target string
}

// Config holds node dimensions and separation constants.
type Config struct {
	NodeWidth  float64
	NodeHeight float64
	RankSep    float64
	NodeSep    float64
}

// DefaultConfig returns the dimensions used by the exploration diagram.
func DefaultConfig() Config {
	return Config{
		NodeWidth:  180,
		NodeHeight: 48,
		RankSep:    90,
		NodeSep:    28,
	}
}

const orderingSweeps = 4

// Compute lays out the given nodes and returns a position per id. The result
// depends only on the inputs: ties are broken by input order and there is no
// randomness, so identical calls yield identical positions. Unknown edge
// endpoints and self-loops are ignored. A single node with no edges lands at
// the origin.
func Compute(cfg Config, ids []string, edges []Edge, dir Direction) map[string]Position {
	if len(ids) == 0 {
		return map[string]Position{}
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; !dup {
			index[id] = i
		}
	}

	adj := make([][]int, len(ids))
	for _, e := range edges {
		s, ok := index[e.Source]
		if !ok {
			continue
		}
		t, ok := index[e.Target]
		if !ok || s == t {
			continue
		}
		adj[s] = append(adj[s], t)
	}

	ranks := assignRanks(len(ids), adj)

	maxRank := 0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}
	layers := make([][]int, maxRank+1)
	for i, r := range ranks {
		layers[r] = append(layers[r], i)
	}

	orderLayers(layers, adj, ranks)

	return coordinates(cfg, ids, layers, dir)
}

// assignRanks orients the graph acyclically via DFS in input order (edges
// closing a cycle are skipped for ranking) and assigns each node the longest
// path length from a root.
func assignRanks(n int, adj [][]int) []int {
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	state := make([]int, n)
	forward := make([][]int, n)
	indegree := make([]int, n)

	var dfs func(u int)
	dfs = func(u int) {
		state[u] = onStack
		for _, v := range adj[u] {
			if state[v] == onStack {
				continue
			}
			forward[u] = append(forward[u], v)
			indegree[v]++
			if state[v] == unvisited {
				dfs(v)
			}
		}
		state[u] = done
	}
	for u := 0; u < n; u++ {
		if state[u] == unvisited {
			dfs(u)
		}
	}

	ranks := make([]int, n)
	queue := make([]int, 0, n)
	remaining := make([]int, n)
	copy(remaining, indegree)
	for u := 0; u < n; u++ {
		if remaining[u] == 0 {
			queue = append(queue, u)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range forward[u] {
			if ranks[u]+1 > ranks[v] {
				ranks[v] = ranks[u] + 1
			}
			remaining[v]--
			if remaining[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return ranks
}

// orderLayers refines the in-rank ordering with alternating downward and
// upward barycenter sweeps. Nodes without neighbors in the adjacent rank keep
// their current position; sorting is stable so input order breaks ties.
func orderLayers(layers [][]int, adj [][]int, ranks []int) {
	n := len(ranks)
	neighbors := make([][]int, n)
	for u := 0; u < n; u++ {
		for _, v := range adj[u] {
			neighbors[u] = append(neighbors[u], v)
			neighbors[v] = append(neighbors[v], u)
		}
	}

	pos := make([]int, n)
	syncPos := func() {
		for _, layer := range layers {
			for i, u := range layer {
				pos[u] = i
			}
		}
	}
	syncPos()

	sweep := func(layer []int, adjacentRank int) {
		bary := make([]float64, len(layer))
		for i, u := range layer {
			sum, count := 0.0, 0
			for _, v := range neighbors[u] {
				if ranks[v] == adjacentRank {
					sum += float64(pos[v])
					count++
				}
			}
			if count == 0 {
				bary[i] = float64(pos[u])
			} else {
				bary[i] = sum / float64(count)
			}
		}
		order := make([]int, len(layer))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return bary[order[a]] < bary[order[b]]
		})
		reordered := make([]int, len(layer))
		for i, o := range order {
			reordered[i] = layer[o]
		}
		copy(layer, reordered)
	}

	for s := 0; s < orderingSweeps; s++ {
		for r := 1; r < len(layers); r++ {
			sweep(layers[r], r-1)
			syncPos()
		}
		for r := len(layers) - 2; r >= 0; r-- {
			sweep(layers[r], r+1)
			syncPos()
		}
	}
}

// coordinates converts ranks and in-rank orders to top-left positions. Each
// layer is centered against the widest layer on the cross axis.
func coordinates(cfg Config, ids []string, layers [][]int, dir Direction) map[string]Position {
	mainStep := cfg.NodeWidth + cfg.RankSep
	crossStep := cfg.NodeHeight + cfg.NodeSep
	if dir == DirectionTopBottom {
		mainStep = cfg.NodeHeight + cfg.RankSep
		crossStep = cfg.NodeWidth + cfg.NodeSep
	}

	widest := 0
	for _, layer := range layers {
		if len(layer) > widest {
			widest = len(layer)
		}
	}

	out := make(map[string]Position, len(ids))
	for r, layer := range layers {
		offset := float64(widest-len(layer)) * crossStep / 2
		for i, u := range layer {
			main := float64(r) * mainStep
			cross := offset + float64(i)*crossStep
			if dir == DirectionTopBottom {
				out[ids[u]] = Position{X: cross, Y: main}
			} else {
				out[ids[u]] = Position{X: main, Y: cross}
			}
		}
	}
	return out
}
