package clique

import (
	"sort"
	"time"
)

// Pivot is the reference Strategy: Bron–Kerbosch backtracking with the
// Tomita pivoting rule. At each recursion node the pivot u maximizes
// |N(u) ∩ P| over P ∪ X, and branching is restricted to P \ N(u), which is
// provably sufficient to reach every maximal clique while bounding the
// worst-case branching factor at O(3^(n/3)).
type Pivot struct{}

// Run enumerates all maximal cliques of adj, honoring the deadline.
// Implements Strategy.
func (Pivot) Run(adj Adjacency, deadline time.Time, emit func(clique []string)) bool {
	s := &search{adj: adj, deadline: deadline, emit: emit, complete: true}

	// The top-level frame owns exclusive fresh copies of P, R, X: expand
	// mutates P and X in place across sibling branches.
	p := make(VertexSet, len(adj))
	for v := range adj {
		p[v] = struct{}{}
	}
	s.expand(p, make(VertexSet), make(VertexSet))

	return s.complete
}

// search holds the per-run state shared by all recursion frames.
type search struct {
	adj      Adjacency
	deadline time.Time // zero = unbounded
	emit     func([]string)
	complete bool // sticky false once the deadline fires
}

// expand reports every maximal clique reachable by extending R with vertices
// of P, subject to exclusion set X. Invariant on entry: R ∩ P = R ∩ X = ∅,
// every vertex of P and X is adjacent to all of R.
//
// P and X are mutated in place as siblings complete (v moves from P to X so
// later branches cannot re-emit cliques a prior sibling already covered);
// R grows and shrinks with the recursion stack.
func (s *search) expand(p, r, x VertexSet) {
	// Base case: no candidates left and nothing excluded, so R is maximal.
	if len(p) == 0 && len(x) == 0 {
		s.emit(sorted(r))
		return
	}

	// Deadline check at every recursion entry. Unwind without exploring
	// further; cliques already emitted remain valid.
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.complete = false
		return
	}

	u := s.choosePivot(p, x)

	// Branch only on candidates outside the pivot's neighborhood, in sorted
	// order for reproducible output.
	cands := make([]string, 0, len(p))
	for v := range p {
		if _, ok := s.adj[u][v]; !ok {
			cands = append(cands, v)
		}
	}
	sort.Strings(cands)

	for _, v := range cands {
		nv := s.adj[v]

		r[v] = struct{}{}
		s.expand(intersect(p, nv), r, intersect(x, nv))
		delete(r, v)

		// Later siblings treat v as excluded.
		delete(p, v)
		x[v] = struct{}{}
	}
}

// choosePivot scans P ∪ X once and returns the vertex with the most
// neighbors inside P. First maximum wins; scanning sorted P before sorted X
// makes the choice deterministic.
func (s *search) choosePivot(p, x VertexSet) string {
	max := -1
	var pivot string

	for _, u := range append(sorted(p), sorted(x)...) {
		count := 0
		for w := range s.adj[u] {
			if _, ok := p[w]; ok {
				count++
			}
		}
		if count > max {
			max = count
			pivot = u
		}
	}

	return pivot
}

// intersect returns a fresh set holding s ∩ t.
func intersect(s, t VertexSet) VertexSet {
	small, large := s, t
	if len(t) < len(s) {
		small, large = t, s
	}

	out := make(VertexSet, len(small))
	for v := range small {
		if _, ok := large[v]; ok {
			out[v] = struct{}{}
		}
	}

	return out
}

// sorted returns the members of s as a fresh lexicographically sorted slice.
func sorted(s VertexSet) []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
