package config

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphtrace/builder"
)

// GraphFile is the YAML layout of a user-supplied graph:
//
//	nodes:
//	  - {name: A, lon: 116.4, lat: 39.9}
//	edges:
//	  - {from: A, to: B, weight: 750}
type GraphFile struct {
	Nodes []GraphNode `yaml:"nodes"`
	Edges []GraphEdge `yaml:"edges"`
}

type GraphNode struct {
	Name string  `yaml:"name"`
	Lon  float64 `yaml:"lon"`
	Lat  float64 `yaml:"lat"`
}

type GraphEdge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight uint32 `yaml:"weight"`
}

// LoadGraph parses a graph file and builds the named graph it describes.
func LoadGraph(path string) (*builder.NamedGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the graph file %s: %w", path, err)
	}

	var gf GraphFile
	if err = yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("failed to parse the graph file %s: %w", path, err)
	}
	ng, err := gf.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ng, nil
}

// Build converts the file contents into a NamedGraph.
func (gf GraphFile) Build() (*builder.NamedGraph, error) {
	if len(gf.Nodes) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrInvalidConfig)
	}

	nodes := make([]builder.Node, len(gf.Nodes))
	for i, n := range gf.Nodes {
		nodes[i] = builder.Node{Name: n.Name, Location: orb.Point{n.Lon, n.Lat}}
	}
	edges := make([]builder.NamedEdge, len(gf.Edges))
	for i, e := range gf.Edges {
		edges[i] = builder.NamedEdge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return builder.BuildNamed(nodes, edges)
}

// Graph returns the graph selected by c: the file named by GraphFile, or
// the built-in city network.
func (c Config) Graph() (*builder.NamedGraph, error) {
	if c.GraphFile == "" {
		return builder.Cities(), nil
	}

	return LoadGraph(c.GraphFile)
}
