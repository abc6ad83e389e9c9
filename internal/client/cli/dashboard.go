package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/client/render"
	"github.com/dmitrijs2005/profiledash/internal/common"
)

// Show loads the profile and prints the summary.
func (a *App) Show(ctx context.Context) error {
	d, err := a.service.Load(ctx)
	if err != nil {
		a.report(err)
		return err
	}
	return render.WriteSummary(a.out, d.Summary)
}

// Chart loads the profile and writes the SVG charts to the chart directory.
func (a *App) Chart(ctx context.Context) error {
	d, err := a.service.Load(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	paths, err := render.ExportCharts(a.config.ChartDir, d.Summary)
	if errors.Is(err, common.ErrNoChartData) {
		fmt.Fprintln(a.out, "No chart data available.")
		return nil
	}
	if err != nil {
		a.report(err)
		return err
	}

	for _, p := range paths {
		fmt.Fprintln(a.out, "Wrote", p)
	}
	return nil
}

// Status prints the stored session without contacting the backend.
func (a *App) Status(ctx context.Context) error {
	st, err := a.service.Status(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	switch {
	case !st.Exists:
		fmt.Fprintln(a.out, "Not logged in")
	case !st.Valid:
		fmt.Fprintf(a.out, "Session expired (was valid until %s)\n", st.ExpiresAt.Format(time.RFC1123))
	default:
		fmt.Fprintf(a.out, "Logged in as user %s, session valid until %s\n", st.Subject, st.ExpiresAt.Format(time.RFC1123))
	}
	return nil
}
