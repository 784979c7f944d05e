// Package graphfile reads and writes the YAML/JSON graph documents used by
// the sssp command:
//
//	vertices: 5
//	source: 0
//	method: auto        # optional
//	target: 4           # optional
//	edges:
//	  - {from: 0, to: 1, cost: 4}
//	  - {from: 1, to: 2, cost: -1}
//
// JSON is a subset of YAML, so Decode accepts both. Documents go through
// JSON on both paths, so edge costs must be finite: a graph holding a ±Inf
// cost (a closed road, say) is rejected with ErrNonFiniteCost.
package graphfile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/sssp/core"
)

var (
	// ErrEmptyDocument indicates that the input held no graph at all.
	ErrEmptyDocument = errors.New("graphfile: empty document")

	// ErrNonFiniteCost indicates an edge cost of ±Inf, which JSON cannot carry.
	ErrNonFiniteCost = errors.New("graphfile: edge cost must be finite")
)

// EdgeSpec is one edge as written in a graph document.
type EdgeSpec struct {
	From int     `json:"from"`
	To   int     `json:"to"`
	Cost float64 `json:"cost"`
}

// File is a complete graph document.
type File struct {
	Vertices int        `json:"vertices"`
	Source   int        `json:"source"`
	Method   string     `json:"method,omitempty"`
	Target   *int       `json:"target,omitempty"`
	Edges    []EdgeSpec `json:"edges"`
}

// New captures an edge list as a document rooted at source.
func New(edges []core.Edge, n, source int) *File {
	f := &File{
		Vertices: n,
		Source:   source,
		Edges:    make([]EdgeSpec, len(edges)),
	}
	for i, e := range edges {
		f.Edges[i] = EdgeSpec{From: e.From, To: e.To, Cost: e.Cost}
	}

	return f
}

// Decode parses a YAML or JSON document and validates it.
func Decode(data []byte) (*File, error) {
	var f *File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if f == nil {
		return nil, ErrEmptyDocument
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return Decode(data)
}

// Encode renders f as YAML.
func Encode(f *File) ([]byte, error) {
	if err := f.checkFinite(); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: encode: %w", err)
	}

	return out, nil
}

// EncodeJSON renders f as JSON, going through the same field tags as Encode.
func EncodeJSON(f *File) ([]byte, error) {
	y, err := Encode(f)
	if err != nil {
		return nil, err
	}
	out, err := yaml.YAMLToJSON(y)
	if err != nil {
		return nil, fmt.Errorf("graphfile: encode: %w", err)
	}

	return out, nil
}

// Validate checks the vertex count, the source, the optional target and
// every edge with the same rules the solvers apply, plus finite costs.
func (f *File) Validate() error {
	if err := core.Validate(f.CoreEdges(), f.Vertices, f.Source); err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}
	if err := f.checkFinite(); err != nil {
		return err
	}
	if f.Target != nil {
		if err := core.ValidateNode(*f.Target, f.Vertices); err != nil {
			return fmt.Errorf("graphfile: target: %w", err)
		}
	}

	return nil
}

func (f *File) checkFinite() error {
	for i, e := range f.Edges {
		if math.IsInf(e.Cost, 0) {
			return fmt.Errorf("%w: edge[%d] %d->%d", ErrNonFiniteCost, i, e.From, e.To)
		}
	}

	return nil
}

// CoreEdges converts the document edges in order.
func (f *File) CoreEdges() []core.Edge {
	edges := make([]core.Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = core.NewEdge(e.From, e.To, e.Cost)
	}

	return edges
}
