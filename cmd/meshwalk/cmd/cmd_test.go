package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshwalk/queue"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestMeshCmd_YAML(t *testing.T) {
	out := run(t, "mesh", "--shape", "grid", "--rows", "2", "--cols", "3", "-o", "yaml")

	var rep meshReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, meshSpec{Shape: "grid", Rows: 2, Cols: 3}, rep.Mesh)
	assert.Equal(t, 12, rep.Vertices)
	assert.Equal(t, 34, rep.HalfEdges)
	assert.Equal(t, 6, rep.InternalFaces)
	assert.Equal(t, 1, rep.ExternalFaces)
	assert.Equal(t, 1, rep.Components)
}

func TestMeshCmd_Table(t *testing.T) {
	out := run(t, "mesh", "--shape", "polygon", "--sides", "5")
	assert.Contains(t, out, "vertices")
	assert.Contains(t, out, "ELEMENT")
	assert.Contains(t, out, "5")
}

func TestMeshCmd_EnvOverridesDefault(t *testing.T) {
	t.Setenv("MESHWALK_ROWS", "3")
	out := run(t, "mesh", "--cols", "3", "-o", "yaml")

	var rep meshReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 16, rep.Vertices)
}

func TestMeshCmd_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "meshwalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("shape: hexgrid\nrows: 2\ncols: 2\n"), 0o600))
	out := run(t, "mesh", "--config", cfg, "-o", "yaml")

	var rep meshReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "hexgrid", rep.Mesh.Shape)
	assert.Equal(t, 16, rep.Vertices)
	assert.Equal(t, 4, rep.InternalFaces)
}

func TestWalkCmd_BreadthFirstSquare(t *testing.T) {
	out := run(t, "walk", "--shape", "polygon", "--sides", "4", "--kind", "vertex", "--order", "breadth", "-o", "yaml")

	var rep walkReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	var idx, depth []int
	for _, s := range rep.Steps {
		idx = append(idx, s.Index)
		depth = append(depth, s.Depth)
	}
	assert.Equal(t, []int{0, 1, 3, 2}, idx)
	assert.Equal(t, []int{0, 1, 1, 2}, depth)
}

func TestWalkCmd_FacesInternalMaxDepth(t *testing.T) {
	out := run(t, "walk", "--shape", "grid", "--rows", "3", "--cols", "3",
		"--kind", "face", "--root", "4", "--internal", "--max-depth", "1", "-o", "yaml")

	var rep walkReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Steps, 5)
}

func TestRegionsCmd_ConcurrentRuns(t *testing.T) {
	out := run(t, "regions", "--shape", "grid", "--rows", "4", "--cols", "4",
		"--seeds", "0,15", "--runs", "3", "--seed", "10", "-o", "yaml")

	var rep regionsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []int{0, 15}, rep.Seeds)
	require.Len(t, rep.Runs, 3)
	for i, r := range rep.Runs {
		assert.Equal(t, i, r.Run)
		assert.Equal(t, queue.DeriveSeed(10, uint64(i)), r.Seed)
		require.Len(t, r.Sizes, 2)
		assert.Equal(t, 16, r.Sizes[0]+r.Sizes[1])
	}
}

func TestPathCmd(t *testing.T) {
	out := run(t, "path", "--shape", "grid", "--rows", "1", "--cols", "4", "--from", "0", "--to", "3", "-o", "yaml")

	var rep pathReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 3.0, rep.Cost)
	assert.Equal(t, []int{0, 1, 2, 3}, rep.Faces)
}

func TestCmd_Errors(t *testing.T) {
	cases := map[string][]string{
		"shape":  {"mesh", "--shape", "cube"},
		"format": {"mesh", "-o", "xml"},
		"kind":   {"walk", "--kind", "edge"},
		"order":  {"walk", "--order", "sideways"},
		"root":   {"walk", "--root", "999"},
		"seeds":  {"regions", "--seeds", "x"},
		"runs":   {"regions", "--runs", "0"},
		"face":   {"path", "--to", "999"},
		"build":  {"mesh", "--shape", "polygon", "--sides", "2"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			root := NewRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetArgs(args)
			assert.Error(t, root.Execute())
		})
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"1, 2", "7"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 7}, got)
}
