package stats

import (
	"strings"

	"github.com/dmitrijs2005/profiledash/internal/client/models"
)

// Summary is everything the dashboard shows for one profile.
type Summary struct {
	DisplayName string
	Login       string
	Email       string

	TotalXP          int64
	RoundedTotalXP   int64
	FormattedTotalXP string

	TopProjects   []ProjectXP
	TopProjectsXP int64

	// AuditRatio is derived locally from TotalUp and TotalDown;
	// ServerAuditRatio is the backend's figure. They are not reconciled.
	AuditRatio       string
	ServerAuditRatio string

	TotalUp    float64
	TotalDown  float64
	DoneMB     string
	ReceivedMB string
	UpShare    float64
}

// DisplayName is "first last", or the login when both are blank.
func DisplayName(p *models.UserProfile) string {
	if name := strings.TrimSpace(p.FirstName + " " + p.LastName); name != "" {
		return name
	}
	return p.Login
}

// Compute derives the Summary of p.
func Compute(p *models.UserProfile) Summary {
	total := TotalXP(p.Transactions)
	rounded := RoundedTotalXP(total)
	top := TopProjectsXP(p.Transactions)

	return Summary{
		DisplayName:      DisplayName(p),
		Login:            p.Login,
		Email:            p.Email,
		TotalXP:          total,
		RoundedTotalXP:   rounded,
		FormattedTotalXP: FormatXP(rounded),
		TopProjects:      top,
		TopProjectsXP:    SumXP(top),
		AuditRatio:       AuditRatio(p.TotalUp, p.TotalDown),
		ServerAuditRatio: FormatServerAuditRatio(p.AuditRatio),
		TotalUp:          p.TotalUp,
		TotalDown:        p.TotalDown,
		DoneMB:           FormatMB(p.TotalUp),
		ReceivedMB:       FormatMB(p.TotalDown),
		UpShare:          UpShare(p.TotalUp, p.TotalDown),
	}
}
