// Package render defines options and sentinel errors for Graphviz output.
package render

import (
	"errors"
	"fmt"
)

// ErrDistanceLength indicates that the distance array does not have one slot
// per node.
var ErrDistanceLength = errors.New("render: distances length does not match vertex count")

// Node and edge colors (X11 color names understood by Graphviz).
const (
	colorSource      = "steelblue2"
	colorReachable   = "seagreen2"
	colorUnreachable = "seashell2"
	colorUnbounded   = "tomato2"
	colorEdge        = "black"
	colorNegEdge     = "tomato3"
)

// DefaultGraphName is the DOT graph identifier used unless WithGraphName is set.
const DefaultGraphName = "sssp"

// Options configures DOT output.
//
// GraphName – DOT identifier of the digraph.
// RankDir   – Graphviz layout direction: "TB", "LR", "BT" or "RL".
// Source    – node to highlight as the origin, or -1.
type Options struct {
	GraphName string
	RankDir   string
	Source    int
}

// Option represents a functional option for configuring DOT.
type Option func(*Options)

// WithGraphName sets the DOT graph identifier. Panics on an empty name.
func WithGraphName(name string) Option {
	if name == "" {
		panic("render: WithGraphName(\"\")")
	}
	return func(o *Options) {
		o.GraphName = name
	}
}

// WithRankDir sets the Graphviz rankdir attribute.
// Panics unless dir is one of TB, LR, BT, RL.
func WithRankDir(dir string) Option {
	switch dir {
	case "TB", "LR", "BT", "RL":
	default:
		panic(fmt.Sprintf("render: WithRankDir(%q)", dir))
	}
	return func(o *Options) {
		o.RankDir = dir
	}
}

// WithSource highlights id as the origin of the shortest-path search.
// Panics on a negative id.
func WithSource(id int) Option {
	if id < 0 {
		panic("render: WithSource(id<0)")
	}
	return func(o *Options) {
		o.Source = id
	}
}

// DefaultOptions returns Options with:
//   - GraphName: DefaultGraphName.
//   - RankDir:   "LR".
//   - Source:    -1 (no highlight).
func DefaultOptions() Options {
	return Options{
		GraphName: DefaultGraphName,
		RankDir:   "LR",
		Source:    -1,
	}
}
