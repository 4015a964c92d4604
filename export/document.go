package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/trace"
)

var (
	// ErrUnknownFormat indicates an output format other than json or yaml.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrEmptyTrace indicates a nil trace or one without steps.
	ErrEmptyTrace = errors.New("export: empty trace")
)

// Format selects the file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string { return string(f) }

// NodeInfo describes one node of the exported graph.
type NodeInfo struct {
	Index int     `json:"index" yaml:"index"`
	Name  string  `json:"name" yaml:"name"`
	Lon   float64 `json:"lon" yaml:"lon"`
	Lat   float64 `json:"lat" yaml:"lat"`
}

// Document is the exported form of one engine run.
type Document struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	Algorithm string       `json:"algorithm" yaml:"algorithm"`
	Start     int          `json:"start" yaml:"start"`
	Nodes     []NodeInfo   `json:"nodes" yaml:"nodes"`
	Steps     []trace.Step `json:"steps" yaml:"steps"`
}

// NewDocument assembles a Document for vis, tagging it with a fresh run ID.
// ng may be nil, in which case the node table is omitted.
func NewDocument(algorithm string, start int, ng *builder.NamedGraph, vis *trace.Visualization) (*Document, error) {
	if vis.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", algorithm, ErrEmptyTrace)
	}

	doc := &Document{
		RunID:     uuid.NewString(),
		Algorithm: algorithm,
		Start:     start,
		Steps:     vis.Steps,
	}
	if ng != nil {
		doc.Nodes = nodeTable(ng)
	}

	return doc, nil
}

// Name returns the display name of node i, falling back to its index.
func (d *Document) Name(i int) string {
	if i >= 0 && i < len(d.Nodes) {
		return d.Nodes[i].Name
	}

	return trace.IndexNamer(i)
}

func nodeTable(ng *builder.NamedGraph) []NodeInfo {
	out := make([]NodeInfo, ng.Names.Len())
	for i := range out {
		out[i] = NodeInfo{Index: i, Name: ng.Names.Name(i)}
		if i < len(ng.Layout) {
			out[i].Lon = ng.Layout[i].Lon()
			out[i].Lat = ng.Layout[i].Lat()
		}
	}

	return out
}
