package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const graphDoc = `directed: false
nodes:
  name: [a, b, c]
edges:
  from: [a, b]
  to: [b, c]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestReadGraph(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "graph.yaml", graphDoc)

	g, err := readGraph(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.Core().VertexCount())
	require.Equal(t, 2, g.Core().EdgeCount())

	_, err = readGraph(writeFile(t, dir, "bad.yaml", "- just\n- a list\n"))
	require.ErrorIs(t, err, ErrBadGraphDoc)

	_, err = readGraph(writeFile(t, dir, "extra.yaml", graphDoc+"color: [1]\n"))
	require.ErrorIs(t, err, ErrBadGraphDoc)
}

func TestDescribeCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "graph.yaml", graphDoc)

	out, err := execute(t, "describe", "-g", path)
	require.NoError(t, err)
	require.Equal(t, "unrooted tree\n", out)
}

func TestJoinCommand(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "graph.yaml", graphDoc)
	update := writeFile(t, dir, "update.csv", "name,score\na,10\nb,20\n")

	out, err := execute(t, "join", "-g", graph, "-t", update, "--how", "left")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"vertex ID,name,score",
		"0,a,10",
		"1,b,20",
		"2,c,",
	}, lines)
}

func TestJoinCommandEdges(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "graph.yaml", graphDoc)
	update := writeFile(t, dir, "update.csv", "from,to,weight\na,c,9\n")

	out, err := execute(t, "join", "-g", graph, "-t", update, "--into", "edges", "--how", "outer")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"edge ID,source,target,weight",
		"0,0,1,",
		"1,1,2,",
		"2,0,2,9",
	}, lines)
}

func TestJoinCommandRejectsBadTarget(t *testing.T) {
	dir := t.TempDir()
	graph := writeFile(t, dir, "graph.yaml", graphDoc)
	update := writeFile(t, dir, "update.csv", "name\na\n")

	_, err := execute(t, "join", "-g", graph, "-t", update, "--into", "everything")
	require.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", "name,score\na,1\nb,\n")
	out := filepath.Join(dir, "out.yaml")

	_, err := execute(t, "convert", in, out)
	require.NoError(t, err)

	back, err := readTable(out)
	require.NoError(t, err)
	orig, err := readTable(in)
	require.NoError(t, err)
	require.True(t, orig.Equal(back))

	_, err = execute(t, "convert", in, filepath.Join(dir, "out.xlsx"))
	require.ErrorIs(t, err, ErrBadExtension)
}
