package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp"
	"github.com/katalvlaran/sssp/internal/graphfile"
	"github.com/katalvlaran/sssp/render"
)

type solveFlags struct {
	file   string
	method string
	source int
	target int
	dot    string
}

func newSolveCmd() *cobra.Command {
	var fl solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute distances from the source of a graph file",
		Long: `Reads a YAML or JSON graph file and prints one "node<TAB>distance" line per
node. Unreachable nodes print +Inf; nodes on or after a negative cycle
print -Inf. Flags override the method, source and target stored in the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, fl)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.file, "file", "f", "", "graph file (YAML or JSON)")
	f.StringVar(&fl.method, "method", "", "auto, dijkstra or bellman-ford (default: file value, then auto)")
	f.IntVar(&fl.source, "source", 0, "source node (default: file value)")
	f.IntVar(&fl.target, "target", -1, "stop Dijkstra once this node is settled")
	f.StringVar(&fl.dot, "dot", "", "also write a Graphviz DOT rendering to this path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSolve(cmd *cobra.Command, fl solveFlags) error {
	doc, err := graphfile.Load(fl.file)
	if err != nil {
		return err
	}

	opts := sssp.DefaultOptions()
	if doc.Method != "" {
		opts.Method = doc.Method
	}
	if cmd.Flags().Changed("method") {
		opts.Method = fl.method
	}
	if doc.Target != nil {
		opts.Target, opts.HasTarget = *doc.Target, true
	}
	if cmd.Flags().Changed("target") {
		// A negative flag value clears a target set in the file.
		opts.Target, opts.HasTarget = fl.target, fl.target >= 0
	}
	source := doc.Source
	if cmd.Flags().Changed("source") {
		source = fl.source
	}

	edges := doc.CoreEdges()
	method, err := sssp.Resolve(edges, opts.Method)
	if err != nil {
		return err
	}
	opts.Method = method

	dist, err := sssp.Compute(edges, doc.Vertices, source, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "method: %s\n", method)
	out := cmd.OutOrStdout()
	for v, d := range dist {
		fmt.Fprintf(out, "%d\t%s\n", v, strconv.FormatFloat(d, 'g', -1, 64))
	}

	if fl.dot == "" {
		return nil
	}
	dot, err := render.DOT(edges, doc.Vertices, dist, render.WithSource(source))
	if err != nil {
		return err
	}

	return os.WriteFile(fl.dot, []byte(dot), 0o644)
}
