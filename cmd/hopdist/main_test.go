package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cycleEdges  = "0 1\n1 2\n2 3\n3 4\n4 0\n"
	cycleLabels = "0 1\n2 2\n3 2\n"
)

// fixture writes the five-cycle edge and label files and clears env
// overrides so that flags alone drive the run.
func fixture(t *testing.T) (edges, labels string) {
	t.Helper()
	for _, k := range []string{
		"HOPDIST_EDGES", "HOPDIST_LABELS", "HOPDIST_WORKERS", "HOPDIST_MAX_DEPTH",
		"HOPDIST_OUTPUT", "HOPDIST_COLOR", "HOPDIST_METRICS_TEXTFILE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	edges = filepath.Join(dir, "edges.txt")
	labels = filepath.Join(dir, "labels.txt")
	require.NoError(t, os.WriteFile(edges, []byte(cycleEdges), 0o644))
	require.NoError(t, os.WriteFile(labels, []byte(cycleLabels), 0o644))
	return edges, labels
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestRunCommandText(t *testing.T) {
	edges, labels := fixture(t)

	code, out, logs := execute("run", edges, labels, "--color", "never", "--workers", "2")
	require.Equal(t, 0, code, logs)
	assert.Equal(t, strings.Join([]string{
		"Average distance between all pairs of vertices: 1.5",
		"Average distance between vertices in group 1: 1.5",
		"Average distance between vertices in group 2: 1.5",
		"Lowest average distance between vertices: 1.5 (group 1)",
		"Highest average distance between vertices: 1.5 (group 1)",
		"",
	}, "\n"), out)
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "global average computed")
}

func TestGlobalCommandJSON(t *testing.T) {
	edges, _ := fixture(t)

	code, out, logs := execute("global", "-e", edges, "-o", "json", "--log-format", "json")
	require.Equal(t, 0, code, logs)

	var got struct {
		RunID  string `json:"run_id"`
		Global struct {
			Sum     int64   `json:"sum"`
			Count   int64   `json:"count"`
			Average float64 `json:"average"`
		} `json:"global"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, int64(30), got.Global.Sum)
	assert.Equal(t, int64(20), got.Global.Count)
	assert.Equal(t, 1.5, got.Global.Average)
}

func TestGroupsCommandViaEnvAndMetrics(t *testing.T) {
	edges, labels := fixture(t)
	t.Setenv("HOPDIST_EDGES", edges)
	t.Setenv("HOPDIST_LABELS", labels)
	prom := filepath.Join(t.TempDir(), "hopdist.prom")

	code, out, logs := execute("groups", "--color", "never", "--metrics-textfile", prom)
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, "Lowest average distance between vertices: 1.5 (group 1)\n")
	assert.NotContains(t, out, "all pairs")

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `hopdist_group_average{group="2"} 1.5`)
	assert.Contains(t, string(raw), "hopdist_bfs_runs_total 3")
}

func TestBFSCommand(t *testing.T) {
	edges, _ := fixture(t)

	code, out, logs := execute("bfs", "-e", edges, "--from", "0", "--color", "never")
	require.Equal(t, 0, code, logs)
	assert.True(t, strings.HasPrefix(out, "Distances from vertex 0\n"), out)
	assert.Contains(t, out, "reached 4 vertices\n")

	code, _, logs = execute("bfs", "-e", edges, "--from", "99")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "start vertex not found")
}

func TestInfoCommand(t *testing.T) {
	edges, _ := fixture(t)

	code, out, logs := execute("info", "-e", edges, "--color", "never")
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, "Vertices: 5\n")
	assert.Contains(t, out, "Edges: 5\n")
	assert.Contains(t, out, "Connected components: 1\n")
}

func TestConfigFileAndErrors(t *testing.T) {
	edges, labels := fixture(t)
	cfgPath := filepath.Join(t.TempDir(), "hopdist.yaml")
	body := "input:\n  edges: " + edges + "\n  labels: " + labels + "\noutput:\n  color: never\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	code, out, logs := execute("run", "--config", cfgPath)
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, "group 2: 1.5\n")

	code, _, logs = execute("global")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "no edge list given")

	code, _, logs = execute("groups", "-e", edges)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "no label list given")

	code, _, _ = execute("global", "-e", edges, "--workers", "-3")
	assert.Equal(t, 1, code)

	code, _, _ = execute("global", "-e", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
}
