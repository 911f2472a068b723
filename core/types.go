package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNotEndpoint indicates Opposite was called with a vertex that is not
	// an endpoint of the edge.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of edge")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph, identified by its unique ID.
type Vertex struct {
	// ID is the unique identifier for this Vertex within its Graph.
	ID string
}

// Edge represents an undirected connection between two vertices.
//
// From and To record the order the endpoints were supplied to AddEdge; the
// edge itself carries no direction.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint vertex ID.
	From string

	// To is the second endpoint vertex ID.
	To string

	// Weight is the cost of the edge; zero on unweighted graphs.
	Weight int64
}

// Opposite returns the endpoint of e opposite to id.
// For a self-loop both endpoints coincide and id is returned.
// Returns ErrNotEndpoint when id is neither endpoint.
func (e *Edge) Opposite(id string) (string, error) {
	switch id {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return "", ErrNotEndpoint
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
// A graph containing a self-loop is not simple.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
// A graph containing parallel edges is not simple.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory undirected graph data structure.
//
// It optionally supports weighted edges, parallel edges, and self-loops.
// A single RWMutex guards both catalogs: mutations lock for writing,
// queries for reading.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, immutable after construction.
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	nextEdgeID uint64             // edge ID counter, guarded by mu
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = set of IDs of edges joining u and v.
	// Mirrored for both endpoints; self-loops appear only under [v][v].
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
