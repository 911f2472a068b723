package core

import "sort"

// IncidentEdges returns all edges incident to the given vertex, each edge
// exactly once (self-loops included once), sorted by Edge.ID ascending.
// Returned pointers reference live catalog edges; treat them as read-only.
//
// Errors: ErrEmptyVertexID for an empty ID, ErrVertexNotFound for a missing
// vertex. Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted
// lexicographically ascending. A self-loop makes a vertex its own neighbor.
//
// Errors: propagated from IncidentEdges.
// Complexity: O(d + k log k) for d incident edges and k unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		opp, oerr := e.Opposite(id)
		if oerr != nil {
			return nil, oerr
		}
		seen[opp] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the degree of the vertex: the number of incident edge
// endpoints, so a self-loop contributes two.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return 0, err
	}

	deg := 0
	for _, e := range edges {
		deg++
		if e.From == e.To {
			deg++
		}
	}

	return deg, nil
}
