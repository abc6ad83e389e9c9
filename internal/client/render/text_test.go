package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/profiledash/internal/client/stats"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func sampleSummary() stats.Summary {
	return stats.Summary{
		DisplayName:      "Alice Doe",
		Login:            "adoe",
		Email:            "alice@example.com",
		TotalXP:          65500,
		RoundedTotalXP:   66000,
		FormattedTotalXP: "66 kB",
		TopProjects: []stats.ProjectXP{
			{Project: "ascii art", XP: 48000},
			{Project: "go reloaded", XP: 11500},
		},
		TopProjectsXP:    59500,
		AuditRatio:       "1.3",
		ServerAuditRatio: "1.3",
		TotalUp:          1500000,
		TotalDown:        1200000,
		DoneMB:           "1.50",
		ReceivedMB:       "1.20",
		UpShare:          0.5555,
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, sampleSummary()))
	out := buf.String()

	for _, want := range []string{
		"Alice Doe\n",
		"Username     adoe",
		"Email        alice@example.com",
		"Total XP     66 kB",
		"Done         1.50 MB",
		"Received     1.20 MB",
		"Ratio        1.3",
		"Top projects (59.5 kB)",
		" 1. ascii art",
		"48 kB",
		" 2. go reloaded",
		"11.5 kB",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "ascii art"), strings.Index(out, "go reloaded"))
}

func TestWriteSummary_EmptyFields(t *testing.T) {
	s := sampleSummary()
	s.Email = ""
	s.TopProjects = nil
	s.TopProjectsXP = 0

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))
	assert.Contains(t, buf.String(), "Not provided")
	assert.Contains(t, buf.String(), "No project XP data available.")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteSummary_WriteError(t *testing.T) {
	err := WriteSummary(failingWriter{}, sampleSummary())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}
