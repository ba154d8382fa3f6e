package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopdist/builder"
	"github.com/katalvlaran/hopdist/groups"
	"github.com/katalvlaran/hopdist/metrics"
	"github.com/katalvlaran/hopdist/stats"
)

func TestRecorderObservesAggregation(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	idx := groups.NewIndex()
	idx.Set(0, 1)
	idx.Set(2, 2)
	idx.Set(3, 2)

	rec := metrics.NewRecorder()
	ctx := context.Background()
	_, err = stats.Global(ctx, g, stats.WithObserver(rec), stats.WithWorkers(2))
	require.NoError(t, err)
	_, err = stats.PerGroup(ctx, g, idx, stats.WithObserver(rec))
	require.NoError(t, err)

	assert.Equal(t, 8.0, testutil.ToFloat64(rec.BFSRuns))
	// 5 global runs + 3 group runs, each reaching 4 vertices.
	assert.Equal(t, 32.0, testutil.ToFloat64(rec.BFSReached))
	assert.Equal(t, 1.5, testutil.ToFloat64(rec.GlobalAverage))
	assert.Equal(t, 1.5, testutil.ToFloat64(rec.GroupAverage.WithLabelValues("1")))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.GroupAverage))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.AggregationDuration))
}

func TestWriteTextfile(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.GlobalAverage.Set(2.25)

	path := filepath.Join(t.TempDir(), "hopdist.prom")
	require.NoError(t, rec.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "hopdist_global_average 2.25"), string(raw))

	err = rec.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.Error(t, err)
}
