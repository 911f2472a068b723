package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquer/core"
)

// ParseEdgeList reads a whitespace-separated edge list into a core.Graph.
//
// Format, one record per line:
//
//	u v [weight]   — an undirected edge, optional integer weight
//	u              — an isolated vertex
//
// Blank lines and lines starting with '#' are skipped. The graph is built
// with loops and multi-edges permitted so that non-simple inputs parse and
// are rejected later by the clique finder's precondition, with a precise
// error, rather than silently at read time.
func ParseEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: vertex %q: %w", lineNo, fields[0], err)
			}
		case 2, 3:
			var weight int64
			if len(fields) == 3 {
				w, err := strconv.ParseInt(fields[2], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad weight %q: %w", lineNo, fields[2], err)
				}
				weight = w
			}
			if _, err := g.AddEdge(fields[0], fields[1], weight); err != nil {
				return nil, fmt.Errorf("line %d: edge %s–%s: %w", lineNo, fields[0], fields[1], err)
			}
		default:
			return nil, fmt.Errorf("line %d: expected \"u v [weight]\" or \"u\", got %d fields", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	return g, nil
}

// WriteEdgeList writes g in the format ParseEdgeList reads: one "u v" line
// per edge in Edge.ID order (weights included when non-zero), then one line
// per isolated vertex.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	covered := make(map[string]struct{}, g.VertexCount())
	for _, e := range g.Edges() {
		covered[e.From] = struct{}{}
		covered[e.To] = struct{}{}
		var err error
		if e.Weight != 0 {
			_, err = fmt.Fprintf(w, "%s %s %d\n", e.From, e.To, e.Weight)
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", e.From, e.To)
		}
		if err != nil {
			return err
		}
	}
	for _, v := range g.Vertices() {
		if _, ok := covered[v]; ok {
			continue
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}
