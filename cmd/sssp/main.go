// Command sssp solves single-source shortest-path problems stored as YAML or
// JSON graph files, and generates such files from the builder topologies.
//
//	sssp generate --kind grid --rows 3 --cols 3 --seed 1 --min -1 --max 9 > g.yaml
//	sssp solve -f g.yaml --method auto --dot g.dot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sssp",
		Short:         "Single-source shortest paths with Dijkstra and Bellman–Ford",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newGenerateCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sssp:", err)
		os.Exit(1)
	}
}
