package render

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/profiledash/internal/client/stats"
	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgHiBlack)
	valueColor   = color.New(color.FgWhite, color.Bold)
	xpColor      = color.New(color.FgGreen)
	mutedColor   = color.New(color.FgYellow)
)

// printer keeps the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(c *color.Color, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = c.Fprintf(p.w, format, args...)
}

func (p *printer) row(label, value string) {
	p.printf(labelColor, "  %-13s", label)
	p.printf(valueColor, "%s\n", value)
}

// WriteSummary prints the profile card, the audit block and the top
// projects list.
func WriteSummary(w io.Writer, s stats.Summary) error {
	p := &printer{w: w}

	email := s.Email
	if email == "" {
		email = "Not provided"
	}

	p.printf(headingColor, "%s\n", s.DisplayName)
	p.row("Username", s.Login)
	p.row("Email", email)
	p.row("Audit ratio", s.ServerAuditRatio)
	p.row("Total XP", s.FormattedTotalXP)

	p.printf(headingColor, "\nAudits\n")
	p.row("Done", s.DoneMB+" MB")
	p.row("Received", s.ReceivedMB+" MB")
	p.row("Ratio", s.AuditRatio)

	p.printf(headingColor, "\nTop projects (%s)\n", stats.FormatXP(s.TopProjectsXP))
	if len(s.TopProjects) == 0 {
		p.printf(mutedColor, "  No project XP data available.\n")
	}
	for i, pr := range s.TopProjects {
		p.printf(labelColor, "  %2d. ", i+1)
		p.printf(valueColor, "%-28s", pr.Project)
		p.printf(xpColor, "%s\n", stats.FormatXP(pr.XP))
	}

	if p.err != nil {
		return fmt.Errorf("write summary: %w", p.err)
	}
	return nil
}
