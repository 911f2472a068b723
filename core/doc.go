// Package core defines the undirected Graph, Vertex, and Edge types the
// rest of cliquer is built on, with thread-safe primitives for building
// and querying graphs.
//
// What:
//
//   - Graph: in-memory undirected graph with optional self-loops,
//     parallel edges, and integer edge weights (all off by default).
//   - Vertex lifecycle: AddVertex, HasVertex, Vertices, VertexCount.
//   - Edge lifecycle: AddEdge, HasEdge, Edges, EdgeCount.
//   - Neighborhood queries: IncidentEdges, NeighborIDs, Degree, and
//     Edge.Opposite for endpoint-to-endpoint hops.
//   - Simple(): reports whether the stored graph is simple, i.e. free of
//     self-loops and parallel edges. Clique enumeration requires this.
//
// Determinism:
//
//   - Vertices() and NeighborIDs() are sorted lexicographically ascending.
//   - Edges() and IncidentEdges() are sorted by Edge.ID ascending.
//
// Concurrency:
//
//   - A single sync.RWMutex guards vertex and edge catalogs; mutations take
//     the write lock, queries the read lock. Algorithms in sibling packages
//     treat a finished Graph as read-only.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrNotEndpoint         - Opposite called with a non-endpoint vertex.
//	ErrBadWeight           - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
