package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/profiledash/internal/client/config"
	"github.com/dmitrijs2005/profiledash/internal/client/services"
	"github.com/dmitrijs2005/profiledash/internal/client/stats"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

type fakeService struct {
	loginUser string
	loginPass []byte
	loginErr  error

	logoutCalls int
	logoutErr   error

	status    services.SessionStatus
	statusErr error

	loadCalls int
	dashboard *services.Dashboard
	loadErr   error
}

func (f *fakeService) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr == nil {
		f.status = services.SessionStatus{Exists: true, Valid: true, Subject: "42"}
	}
	return f.loginErr
}

func (f *fakeService) Logout(context.Context) error {
	f.logoutCalls++
	if f.logoutErr == nil {
		f.status = services.SessionStatus{}
	}
	return f.logoutErr
}

func (f *fakeService) Status(context.Context) (services.SessionStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeService) Load(context.Context) (*services.Dashboard, error) {
	f.loadCalls++
	return f.dashboard, f.loadErr
}

func sampleDashboard() *services.Dashboard {
	return &services.Dashboard{Summary: stats.Summary{
		DisplayName:      "Alice Doe",
		Login:            "adoe",
		FormattedTotalXP: "66 kB",
		TopProjects:      []stats.ProjectXP{{Project: "ascii art", XP: 48000}},
		TopProjectsXP:    48000,
		AuditRatio:       "1.3",
		ServerAuditRatio: "1.3",
		TotalUp:          1500000,
		TotalDown:        1200000,
		DoneMB:           "1.50",
		ReceivedMB:       "1.20",
	}}
}

func newTestApp(t *testing.T, svc *fakeService, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ChartDir = t.TempDir()
	return newApp(cfg, svc, strings.NewReader(input), &out), &out
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
