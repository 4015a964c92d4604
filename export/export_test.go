package export_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/export"
	"github.com/katalvlaran/graphtrace/trace"
)

func cityDocument(t *testing.T) *export.Document {
	t.Helper()
	ng := builder.Cities()
	res, err := dfs.DFS(ng.Graph, 0)
	require.NoError(t, err)
	doc, err := export.NewDocument("dfs", 0, ng, res.Trace)
	require.NoError(t, err)

	return doc
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{
		"json": export.FormatJSON, "JSON": export.FormatJSON,
		"yaml": export.FormatYAML, " yml ": export.FormatYAML,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := export.ParseFormat("xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestNewDocument(t *testing.T) {
	doc := cityDocument(t)

	_, err := uuid.Parse(doc.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "dfs", doc.Algorithm)
	require.Len(t, doc.Nodes, 10)
	assert.Equal(t, export.NodeInfo{Index: 0, Name: "Beijing", Lon: doc.Nodes[0].Lon, Lat: doc.Nodes[0].Lat}, doc.Nodes[0])
	assert.NotZero(t, doc.Nodes[0].Lon)
	assert.Equal(t, "Zhusanjiao", doc.Name(9))
	assert.Equal(t, "42", doc.Name(42))

	other := cityDocument(t)
	assert.NotEqual(t, doc.RunID, other.RunID)
}

func TestNewDocument_EmptyTrace(t *testing.T) {
	_, err := export.NewDocument("dfs", 0, nil, nil)
	assert.ErrorIs(t, err, export.ErrEmptyTrace)
	_, err = export.NewDocument("dfs", 0, nil, &trace.Visualization{})
	assert.ErrorIs(t, err, export.ErrEmptyTrace)
}

func TestEncode_JSONShape(t *testing.T) {
	doc := cityDocument(t)

	var buf bytes.Buffer
	require.NoError(t, export.Encode(&buf, export.FormatJSON, doc))

	// the web visualizer reads steps[].{visited_nodes,current_node,edges_in_path,candidate_edges,explanation}
	var raw struct {
		Steps []map[string]json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw.Steps, len(doc.Steps))

	first := raw.Steps[0]
	assert.JSONEq(t, `[]`, string(first["visited_nodes"]))
	assert.JSONEq(t, `0`, string(first["current_node"]))
	assert.JSONEq(t, `[[0,1],[0,2],[0,3],[0,4]]`, string(first["candidate_edges"]))

	last := raw.Steps[len(raw.Steps)-1]
	assert.JSONEq(t, `null`, string(last["current_node"]))
	assert.JSONEq(t, `[]`, string(last["candidate_edges"]))
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := export.Encode(&bytes.Buffer{}, export.Format("xml"), cityDocument(t))
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = export.NewFileSink(t.TempDir(), "csv")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestFileSink_RoundTrip(t *testing.T) {
	doc := cityDocument(t)

	for _, format := range []export.Format{export.FormatJSON, export.FormatYAML} {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		sink, err := export.NewFileSink(dir, format)
		require.NoError(t, err)
		require.NoError(t, sink.Write(doc))

		path := sink.Path("dfs")
		assert.Equal(t, filepath.Join(dir, "dfs_trace."+string(format)), path)
		_, err = os.Stat(path)
		require.NoError(t, err)

		got, err := export.ReadFile(path)
		require.NoError(t, err, format)
		assert.Equal(t, doc.RunID, got.RunID)
		assert.Equal(t, doc.Nodes, got.Nodes)
		require.Len(t, got.Steps, len(doc.Steps))
		assert.Equal(t, doc.Steps[5], got.Steps[5])
		assert.Nil(t, got.Steps[len(got.Steps)-1].CurrentNode)
	}
}

func TestFileSink_EmptyDocument(t *testing.T) {
	sink, err := export.NewFileSink(t.TempDir(), export.FormatJSON)
	require.NoError(t, err)
	assert.ErrorIs(t, sink.Write(&export.Document{Algorithm: "dfs"}), export.ErrEmptyTrace)
}

func TestConsole(t *testing.T) {
	doc := cityDocument(t)

	var buf bytes.Buffer
	c := export.NewConsole(&buf)
	require.NoError(t, c.Write(doc))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(doc.Steps))
	assert.Equal(t, "[dfs] 21 steps from Beijing", lines[0])
	assert.Contains(t, lines[1], "Starting DFS from")
	assert.Contains(t, lines[len(lines)-1], "DFS traversal complete")

	buf.Reset()
	c.Verbose = true
	require.NoError(t, c.Write(doc))
	assert.Contains(t, buf.String(), "candidates: Beijing→Shenyang, Beijing→Qingdao")

	buf.Reset()
	c.Info("writing %s", "x")
	c.Error("failed %d", 1)
	assert.Equal(t, "[Info] writing x\n[Error] failed 1\n", buf.String())

	assert.ErrorIs(t, c.Write(nil), export.ErrEmptyTrace)
}
