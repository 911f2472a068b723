package clique

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cliquer/core"
)

// Finder lazily enumerates the maximal cliques of one graph.
//
// The first call to Cliques, MaximumCliques, or MaxSize triggers exactly one
// search run; the result collection is memoized for the Finder's lifetime
// and later calls reuse it without re-searching. A Finder performs at most
// one search, so re-run with a fresh Finder if the graph changes.
type Finder struct {
	graph    *core.Graph
	timeout  time.Duration
	strategy Strategy

	// Memoized run state. cliques == nil means the search has not run yet.
	cliques  [][]string
	maxSize  int
	timedOut bool
}

// New constructs a Finder for g.
// Returns ErrNilGraph for a nil graph and ErrInvalidTimeout for a negative
// WithTimeout value. The graph itself is validated lazily on first
// enumeration, not here.
func New(g *core.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{graph: g, timeout: o.Timeout, strategy: o.Strategy}, nil
}

// Cliques returns every maximal clique found by the (lazily triggered)
// search run, in deterministic discovery order. Each clique is a sorted
// vertex-ID slice. The returned outer slice is freshly allocated per call;
// the inner slices are shared views and must be treated as read-only.
//
// Returns ErrNotSimple if the graph has self-loops or parallel edges.
func (f *Finder) Cliques() ([][]string, error) {
	if err := f.lazyRun(); err != nil {
		return nil, err
	}

	out := make([][]string, len(f.cliques))
	copy(out, f.cliques)

	return out, nil
}

// MaximumCliques returns only the cliques whose size equals MaxSize, i.e.
// the maximum cliques of the graph (with respect to what the run explored
// before any time cutoff). Same sharing semantics as Cliques.
func (f *Finder) MaximumCliques() ([][]string, error) {
	if err := f.lazyRun(); err != nil {
		return nil, err
	}

	var out [][]string
	for _, c := range f.cliques {
		if len(c) == f.maxSize {
			out = append(out, c)
		}
	}

	return out, nil
}

// MaxSize returns the size of the largest clique found; zero for an empty
// graph.
func (f *Finder) MaxSize() (int, error) {
	if err := f.lazyRun(); err != nil {
		return 0, err
	}

	return f.maxSize, nil
}

// TimeLimitReached reports whether the search run abandoned branches because
// its time budget ran out. Cliques recorded before the cutoff are still
// valid maximal cliques and remain available through the accessors.
func (f *Finder) TimeLimitReached() bool {
	return f.timedOut
}

// lazyRun performs the single search run if it has not happened yet.
// Preconditions are checked before any search state is built.
func (f *Finder) lazyRun() error {
	if f.cliques != nil {
		return nil
	}

	if !f.graph.Simple() {
		return ErrNotSimple
	}

	adj, err := neighborSets(f.graph)
	if err != nil {
		return err
	}

	var deadline time.Time
	if f.timeout > 0 {
		deadline = time.Now().Add(f.timeout)
		if deadline.Before(time.Now()) {
			// Budget large enough to wrap the clock means no effective limit.
			deadline = time.Time{}
		}
	}

	f.cliques = make([][]string, 0)
	if len(adj) == 0 {
		// An empty graph has no maximal cliques; without this guard the
		// base case would report the empty vertex set as one.
		return nil
	}

	complete := f.strategy.Run(adj, deadline, func(c []string) {
		f.cliques = append(f.cliques, c)
		if len(c) > f.maxSize {
			f.maxSize = len(c)
		}
	})
	f.timedOut = !complete

	return nil
}

// neighborSets snapshots g into an Adjacency via the incident-edge surface,
// so the recursion never touches graph locks.
func neighborSets(g *core.Graph) (Adjacency, error) {
	vertices := g.Vertices()
	adj := make(Adjacency, len(vertices))
	for _, v := range vertices {
		adj[v] = make(VertexSet)
	}

	for _, v := range vertices {
		edges, err := g.IncidentEdges(v)
		if err != nil {
			return nil, fmt.Errorf("clique: IncidentEdges(%q): %w", v, err)
		}
		for _, e := range edges {
			opp, oerr := e.Opposite(v)
			if oerr != nil {
				return nil, fmt.Errorf("clique: Opposite(%q, %q): %w", e.ID, v, oerr)
			}
			adj[v][opp] = struct{}{}
		}
	}

	return adj, nil
}
