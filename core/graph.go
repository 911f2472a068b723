package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new undirected edge between from and to, adding missing
// endpoints on the fly, and returns the generated edge ID.
//
// Constraints by graph mode:
//   - weight != 0 on an unweighted graph → ErrBadWeight
//   - from == to without WithLoops → ErrLoopNotAllowed
//   - second edge between the same endpoints without WithMultiEdges →
//     ErrMultiEdgeNotAllowed
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// Ensure endpoints exist.
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			g.vertices[id] = &Vertex{ID: id}
		}
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if from != to {
		// Mirror so both endpoints see the edge.
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge joins u and v (in any order).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// Edges returns all edges sorted by Edge.ID ascending.
// Returned pointers reference live catalog edges; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Simple reports whether the stored graph is simple: no self-loops and no
// parallel edges. Graphs built without WithLoops and WithMultiEdges are
// simple by construction; this predicate checks the stored state either way.
// Complexity: O(V + B) where B is the number of adjacency buckets.
func (g *Graph) Simple() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, toMap := range g.adjacency {
		for v, bucket := range toMap {
			if u == v && len(bucket) > 0 {
				return false // self-loop
			}
			if len(bucket) > 1 {
				return false // parallel edges
			}
		}
	}

	return true
}

// ensureAdjacency guarantees that adjacency[from] and adjacency[from][to]
// are initialized. Must be called under the write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
