package dag

import (
	"github.com/kbukum/dagkit/errors"
)

// Graph is a mutable directed acyclic graph over string node identities.
//
// Successor and predecessor adjacency are both maintained so dependents
// can resolve their inputs without scanning the edge set. The graph is
// not safe for concurrent mutation; build it fully before sharing.
type Graph struct {
	nodes []string            // insertion order
	index map[string]struct{} // membership
	succ  map[string][]string // edge insertion order
	pred  map[string][]string // edge insertion order
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]struct{}),
		succ:  make(map[string][]string),
		pred:  make(map[string][]string),
	}
}

// AddNode ensures n is present with an empty successor list. Idempotent.
func (g *Graph) AddNode(n string) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = struct{}{}
	g.nodes = append(g.nodes, n)
}

// AddEdge appends a directed edge from -> to, inserting either endpoint
// if missing, then re-validates the whole graph with a full topological
// sort. If the edge would close a cycle it is removed again and a
// CYCLE_DETECTED error is returned; the graph is left exactly as it was
// before the call.
func (g *Graph) AddEdge(from, to string) error {
	g.AddNode(from)
	g.AddNode(to)

	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)

	if len(g.TopologicalSort()) != len(g.nodes) {
		// roll back: the rejected edge is always the most recent append
		g.succ[from] = g.succ[from][:len(g.succ[from])-1]
		g.pred[to] = g.pred[to][:len(g.pred[to])-1]
		return errors.CycleDetected(from, to)
	}
	return nil
}

// Clone returns a deep copy of the graph. Mutations on either side are
// invisible to the other.
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.nodes = make([]string, len(g.nodes))
	copy(c.nodes, g.nodes)
	for n := range g.index {
		c.index[n] = struct{}{}
	}
	for n, succ := range g.succ {
		c.succ[n] = append([]string(nil), succ...)
	}
	for n, pred := range g.pred {
		c.pred[n] = append([]string(nil), pred...)
	}
	return c
}

// Contains reports whether n is a node of the graph.
func (g *Graph) Contains(n string) bool {
	_, ok := g.index[n]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Successors returns the direct successors of n in edge insertion order.
func (g *Graph) Successors(n string) []string {
	out := make([]string, len(g.succ[n]))
	copy(out, g.succ[n])
	return out
}

// Predecessors returns the direct predecessors of n in edge insertion order.
func (g *Graph) Predecessors(n string) []string {
	out := make([]string, len(g.pred[n]))
	copy(out, g.pred[n])
	return out
}

// InDegrees returns, for every node, the number of direct predecessors.
// The table is derived fresh on each call.
func (g *Graph) InDegrees() map[string]int {
	in := make(map[string]int, len(g.nodes))
	for _, n := range g.nodes {
		in[n] = 0
	}
	for _, n := range g.nodes {
		for _, s := range g.succ[n] {
			in[s]++
		}
	}
	return in
}

// TopologicalSort returns a topological ordering using Kahn's algorithm.
//
// The FIFO queue is seeded with zero in-degree nodes in node insertion
// order, and successors are visited in edge insertion order, so the
// result is deterministic. If the graph contains a cycle the returned
// sequence is shorter than NodeCount: nodes on or downstream of the
// cycle never reach in-degree zero.
func (g *Graph) TopologicalSort() []string {
	in := g.InDegrees()

	queue := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		if in[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, s := range g.succ[n] {
			in[s]--
			if in[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	return order
}

// Levels groups nodes by dependency depth: every node in a level depends
// only on nodes in earlier levels, so nodes within one level may execute
// concurrently. Returns an error if the graph contains a cycle.
func (g *Graph) Levels() ([][]string, error) {
	in := g.InDegrees()

	var level []string
	for _, n := range g.nodes {
		if in[n] == 0 {
			level = append(level, n)
		}
	}

	var levels [][]string
	visited := 0
	for len(level) > 0 {
		levels = append(levels, level)
		visited += len(level)

		var next []string
		for _, n := range level {
			for _, s := range g.succ[n] {
				in[s]--
				if in[s] == 0 {
					next = append(next, s)
				}
			}
		}
		level = next
	}

	if visited != len(g.nodes) {
		return nil, errors.New(errors.ErrCodeCycleDetected, "graph contains a cycle").
			WithDetail("visited", visited).
			WithDetail("nodes", len(g.nodes))
	}
	return levels, nil
}
