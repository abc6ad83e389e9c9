package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/profiledash/internal/client/stats"
	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteProjectsChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProjectsChart(&buf, sampleSummary().TopProjects))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "ascii")
	assert.Contains(t, out, "reloaded")
}

func TestWriteProjectsChart_SingleProject(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProjectsChart(&buf, []stats.ProjectXP{{Project: "solo", XP: 1000}}))
	assert.Contains(t, buf.String(), "solo")
}

func TestWriteProjectsChart_NoData(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, WriteProjectsChart(&buf, nil), common.ErrNoChartData)
	assert.Zero(t, buf.Len())
}

func TestWriteAuditChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAuditChart(&buf, sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Done 1.50 MB")
	assert.Contains(t, out, "Received 1.20 MB")
}

func TestWriteAuditChart_NoData(t *testing.T) {
	s := sampleSummary()
	s.TotalUp, s.TotalDown = 0, 0
	require.ErrorIs(t, WriteAuditChart(&bytes.Buffer{}, s), common.ErrNoChartData)
}

func TestExportCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := ExportCharts(dir, sampleSummary())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, ProjectsChartFile),
		filepath.Join(dir, AuditChartFile),
	}, paths)

	for _, p := range paths {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Contains(t, string(b), "<svg")
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files are left behind")
}

func TestExportCharts_SkipsEmptyCharts(t *testing.T) {
	dir := t.TempDir()
	s := sampleSummary()
	s.TopProjects = nil

	paths, err := ExportCharts(dir, s)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, AuditChartFile)}, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportCharts_NothingToDraw(t *testing.T) {
	dir := t.TempDir()

	_, err := ExportCharts(dir, stats.Summary{})
	require.ErrorIs(t, err, common.ErrNoChartData)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
