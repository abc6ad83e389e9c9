package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/profiledash/internal/client/stats"
	"github.com/dmitrijs2005/profiledash/internal/common"
	"github.com/dmitrijs2005/profiledash/internal/filex"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// File names written by ExportCharts.
const (
	ProjectsChartFile = "top-projects.svg"
	AuditChartFile    = "audit-ratio.svg"
)

var (
	barColor      = drawing.ColorFromHex("6366f1")
	doneColor     = drawing.ColorFromHex("6366f1")
	receivedColor = drawing.ColorFromHex("10b981")
)

// WriteProjectsChart renders the top projects as an SVG bar chart.
func WriteProjectsChart(w io.Writer, projects []stats.ProjectXP) error {
	if len(projects) == 0 {
		return common.ErrNoChartData
	}

	lo, hi := 0.0, 1.0
	bars := make([]chart.Value, 0, len(projects))
	for _, p := range projects {
		v := float64(p.XP)
		lo, hi = min(lo, v), max(hi, v)
		bars = append(bars, chart.Value{
			Label: p.Project,
			Value: v,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 1},
		})
	}

	c := chart.BarChart{
		Title:      "XP by project (" + stats.FormatXP(stats.SumXP(projects)) + ")",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      1024,
		Height:     512,
		BarWidth:   60,
		BarSpacing: 20,
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: xpTick,
		},
		Bars: bars,
	}

	if err := c.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render projects chart: %w", err)
	}
	return nil
}

// WriteAuditChart renders done against received audit amounts as an SVG
// pie titled with the audit ratio.
func WriteAuditChart(w io.Writer, s stats.Summary) error {
	values := make([]chart.Value, 0, 2)
	if s.TotalUp > 0 {
		values = append(values, chart.Value{
			Label: "Done " + s.DoneMB + " MB",
			Value: s.TotalUp,
			Style: chart.Style{FillColor: doneColor},
		})
	}
	if s.TotalDown > 0 {
		values = append(values, chart.Value{
			Label: "Received " + s.ReceivedMB + " MB",
			Value: s.TotalDown,
			Style: chart.Style{FillColor: receivedColor},
		})
	}
	if len(values) == 0 {
		return common.ErrNoChartData
	}

	c := chart.PieChart{
		Title:  "Audit ratio " + s.AuditRatio,
		Width:  512,
		Height: 512,
		Values: values,
	}

	if err := c.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("render audit chart: %w", err)
	}
	return nil
}

// ExportCharts writes both charts into dir and returns the absolute paths
// written. A chart without data is skipped; if neither has data the result
// is common.ErrNoChartData.
func ExportCharts(dir string, s stats.Summary) ([]string, error) {
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}

	jobs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ProjectsChartFile, func(w io.Writer) error { return WriteProjectsChart(w, s.TopProjects) }},
		{AuditChartFile, func(w io.Writer) error { return WriteAuditChart(w, s) }},
	}

	var written []string
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		err := filex.WriteAtomic(path, j.write)
		if errors.Is(err, common.ErrNoChartData) {
			continue
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if len(written) == 0 {
		return nil, common.ErrNoChartData
	}
	return written, nil
}

func xpTick(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return stats.FormatXP(int64(f))
}
