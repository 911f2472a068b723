package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquer/builder"
)

// newGenCmd creates the gen command for emitting builder fixtures.
func newGenCmd() *cobra.Command {
	var (
		prob float64
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "gen <topology> <n>",
		Short: "Generate a graph fixture as an edge list",
		Long: `Generate a deterministic graph fixture and print it as an edge list
suitable for 'cliquer find'.

Topologies:
  complete <n>   complete graph K_n
  cycle <n>      simple cycle C_n (n ≥ 3)
  path <n>       simple path P_n (n ≥ 2)
  star <n>       star on n vertices, vertex 0 the hub (n ≥ 2)
  wheel <n>      wheel on n vertices, vertex 0 the hub (n ≥ 4)
  moonmoser <k>  Moon–Moser graph M_k: 3k vertices, 3^k maximal cliques
  random <n>     G(n,p) with --prob and --seed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad size %q: %w", args[1], err)
			}

			con, err := constructorFor(args[0], n, prob)
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debugf("generated %s: %d vertices, %d edges", args[0], g.VertexCount(), g.EdgeCount())

			return WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().Float64VarP(&prob, "prob", "p", 0.5, "edge probability for the random topology")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "RNG seed for the random topology")

	return cmd
}

// constructorFor maps a topology name to its builder constructor.
func constructorFor(topology string, n int, prob float64) (builder.Constructor, error) {
	switch topology {
	case "complete":
		return builder.Complete(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "moonmoser":
		return builder.MoonMoser(n), nil
	case "random":
		return builder.RandomSparse(n, prob), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}
