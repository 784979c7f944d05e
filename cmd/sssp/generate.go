package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/internal/graphfile"
)

type generateFlags struct {
	kind          string
	n             int
	rows, cols    int
	p             float64
	seed          int64
	min, max      int
	bidirectional bool
	source        int
	json          bool
}

func newGenerateCmd() *cobra.Command {
	var fl generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph file to stdout",
		Long: `Builds one of the builder topologies and writes it as a graph file.
Edge costs are integers drawn uniformly from [--min, --max]; with
--min == --max every edge gets that cost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, fl)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.kind, "kind", "path", "path, cycle, star, wheel, complete, grid or random")
	f.IntVarP(&fl.n, "nodes", "n", 5, "node count (all kinds except grid)")
	f.IntVar(&fl.rows, "rows", 3, "grid rows")
	f.IntVar(&fl.cols, "cols", 3, "grid columns")
	f.Float64Var(&fl.p, "p", 0.2, "arc probability for --kind random")
	f.Int64Var(&fl.seed, "seed", 1, "random seed for topology and costs")
	f.IntVar(&fl.min, "min", 1, "smallest edge cost")
	f.IntVar(&fl.max, "max", 1, "largest edge cost")
	f.BoolVar(&fl.bidirectional, "bidirectional", false, "add the reverse of every edge")
	f.IntVar(&fl.source, "source", 0, "source node recorded in the file")
	f.BoolVar(&fl.json, "json", false, "write JSON instead of YAML")

	return cmd
}

func constructorFor(fl generateFlags) (builder.Constructor, error) {
	switch fl.kind {
	case "path":
		return builder.Path(fl.n), nil
	case "cycle":
		return builder.Cycle(fl.n), nil
	case "star":
		return builder.Star(fl.n), nil
	case "wheel":
		return builder.Wheel(fl.n), nil
	case "complete":
		return builder.Complete(fl.n), nil
	case "grid":
		return builder.Grid(fl.rows, fl.cols), nil
	case "random":
		return builder.RandomSparse(fl.n, fl.p), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", fl.kind)
	}
}

func runGenerate(cmd *cobra.Command, fl generateFlags) error {
	if fl.max < fl.min {
		return fmt.Errorf("--max %d is below --min %d", fl.max, fl.min)
	}
	ctor, err := constructorFor(fl)
	if err != nil {
		return err
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(fl.seed),
		builder.WithUniformIntWeight(fl.min, fl.max),
	}
	if fl.bidirectional {
		bopts = append(bopts, builder.WithBidirectional())
	}

	edges, n, err := builder.BuildEdges(bopts, ctor)
	if err != nil {
		return err
	}

	doc := graphfile.New(edges, n, fl.source)
	if err = doc.Validate(); err != nil {
		return err
	}

	var out []byte
	if fl.json {
		out, err = graphfile.EncodeJSON(doc)
	} else {
		out, err = graphfile.Encode(doc)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)

	return err
}
