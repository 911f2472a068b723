package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

// findResult is the JSON shape emitted by `find --json`.
type findResult struct {
	Cliques          [][]string `json:"cliques"`
	MaxSize          int        `json:"maxSize"`
	TimeLimitReached bool       `json:"timeLimitReached"`
}

// newFindCmd creates the find command for enumerating maximal cliques.
func newFindCmd() *cobra.Command {
	var (
		timeout time.Duration
		maxOnly bool
		asJSON  bool
		dotPath string
	)

	cmd := &cobra.Command{
		Use:   "find [edges.txt]",
		Short: "Enumerate maximal cliques of an edge-list graph",
		Long: `Enumerate maximal cliques of an edge-list graph.

The find command reads a whitespace edge list ("u v" per line, "#"
comments, bare "u" for isolated vertices) from the given file or from
stdin, runs pivoted Bron–Kerbosch search, and prints one clique per line.

With --timeout the search abandons unexplored branches once the budget
runs out; cliques found before the cutoff are still printed and a warning
is logged. The input must be simple: self-loops or parallel edges are
rejected before the search starts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			return runFind(cmd, in, timeout, maxOnly, asJSON, dotPath)
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "wall-clock budget for the search (0 = unbounded)")
	cmd.Flags().BoolVarP(&maxOnly, "max", "m", false, "print only maximum-size cliques")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON")
	cmd.Flags().StringVar(&dotPath, "dot", "", "also write a DOT file with maximum cliques highlighted")

	return cmd
}

// runFind parses the graph, runs the finder, and writes results to stdout.
func runFind(cmd *cobra.Command, in io.Reader, timeout time.Duration, maxOnly, asJSON bool, dotPath string) error {
	logger := loggerFromContext(cmd.Context())

	g, err := ParseEdgeList(in)
	if err != nil {
		return fmt.Errorf("parse graph: %w", err)
	}
	logger.Debugf("parsed graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	finder, err := clique.New(g, clique.WithTimeout(timeout))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	cliques, err := finder.Cliques()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d maximal cliques", len(cliques)))

	if finder.TimeLimitReached() {
		logger.Warn("time limit reached, output covers only the explored portion of the search space")
	}

	maxSize, _ := finder.MaxSize()
	maxCliques, _ := finder.MaximumCliques()

	shown := cliques
	if maxOnly {
		shown = maxCliques
	}

	out := cmd.OutOrStdout()
	if asJSON {
		res := findResult{Cliques: shown, MaxSize: maxSize, TimeLimitReached: finder.TimeLimitReached()}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(res); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		for _, c := range shown {
			fmt.Fprintln(out, strings.Join(c, " "))
		}
	}

	if dotPath != "" {
		if err = os.WriteFile(dotPath, toDOT(g, maxCliques), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dotPath, err)
		}
		logger.Infof("wrote %s", dotPath)
	}

	return nil
}

// toDOT renders g as Graphviz DOT text with the vertices of the maximum
// cliques filled, ready for `dot -Tsvg`.
func toDOT(g *core.Graph, maxCliques [][]string) []byte {
	highlight := make(map[string]struct{})
	for _, c := range maxCliques {
		for _, v := range c {
			highlight[v] = struct{}{}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n\n")

	for _, v := range g.Vertices() {
		if _, ok := highlight[v]; ok {
			fmt.Fprintf(&buf, "  %q [fillcolor=gold];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")

	return buf.Bytes()
}
