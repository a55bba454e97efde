package notify_test

import (
	"fmt"
	"privacymon/pkg/domain"
	"privacymon/pkg/notify"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func findings(n int) []domain.Finding {
	out := make([]domain.Finding, n)
	for i := range out {
		out[i] = domain.Finding{
			Source:      domain.ExposureSourceBreach,
			SourceName:  fmt.Sprintf("Breach%d", i),
			SourceURL:   fmt.Sprintf("https://haveibeenpwned.com/PwnedWebsites#Breach%d", i),
			DataExposed: "Email addresses, Passwords",
		}
	}

	return out
}

func TestRenderer_NewFindings(t *testing.T) {
	r := notify.NewRenderer("Privacy Monitor", "http://localhost:3000")

	msg, err := r.NewFindings("Jane Doe", domain.RunnerKindBreach, findings(2))
	require.NoError(t, err)
	require.Equal(t, "[Privacy Monitor] 2 new exposure(s) detected for Jane Doe", msg.Subject)
	require.Contains(t, msg.Text, "- Breach0\n")
	require.Contains(t, msg.Text, "Link: https://haveibeenpwned.com/PwnedWebsites#Breach1")
	require.Contains(t, msg.Text, "Data: Email addresses, Passwords")
	require.NotContains(t, msg.Text, "more.")
	require.Contains(t, msg.HTML, `href="http://localhost:3000"`)
	require.Contains(t, msg.HTML, "<td style=\"padding: 8px; border-bottom: 1px solid #eee;\">Breach1</td>")
}

func TestRenderer_NewFindingsListsAtMostTen(t *testing.T) {
	r := notify.NewRenderer("Privacy Monitor", "")

	msg, err := r.NewFindings("Jane Doe", domain.RunnerKindDataBroker, findings(13))
	require.NoError(t, err)
	require.Contains(t, msg.Text, "Breach9\n")
	require.NotContains(t, msg.Text, "Breach10")
	require.Contains(t, msg.Text, "... and 3 more.")
	require.Contains(t, msg.Text, "data broker scan")
	require.Contains(t, msg.HTML, "...and 3 more exposures.")
	require.NotContains(t, msg.HTML, "View Dashboard")
}

func TestRenderer_NewFindingsTruncatesData(t *testing.T) {
	r := notify.NewRenderer("Privacy Monitor", "")
	long := strings.Repeat("x", 150)

	msg, err := r.NewFindings("Jane Doe", domain.RunnerKindBreach, []domain.Finding{{SourceName: "Big", DataExposed: long}})
	require.NoError(t, err)
	require.Contains(t, msg.Text, "Data: "+strings.Repeat("x", 100)+"\n")
	require.NotContains(t, msg.Text, strings.Repeat("x", 101))
	require.Contains(t, msg.HTML, strings.Repeat("x", 50)+"</td>")
	require.NotContains(t, msg.HTML, strings.Repeat("x", 51))
}

func TestRenderer_NewFindingsEscapesHTML(t *testing.T) {
	r := notify.NewRenderer("Privacy Monitor", "")

	msg, err := r.NewFindings("Jane Doe", domain.RunnerKindBreach, []domain.Finding{{SourceName: "<script>"}})
	require.NoError(t, err)
	require.NotContains(t, msg.HTML, "<script>")
	require.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestRenderer_ScanComplete(t *testing.T) {
	r := notify.NewRenderer("Privacy Monitor", "")

	tests := []struct {
		name        string
		summary     notify.ScanSummary
		subject     string
		contains    []string
		notContains []string
	}{
		{
			name: "success",
			summary: notify.ScanSummary{
				Kind: domain.ScanKindFull, Status: domain.ScanStatusCompleted, Subjects: 3, NewExposures: 4,
			},
			subject:     "[Privacy Monitor] Full scan complete - 4 new exposures",
			contains:    []string{"full scan completed successfully.", "Subjects scanned: 3", "New exposures found: 4"},
			notContains: []string{"Errors:"},
		},
		{
			name: "with errors",
			summary: notify.ScanSummary{
				Kind:   domain.ScanKindDataBroker,
				Status: domain.ScanStatusCompleted,
				Errors: []string{"e1", "e2", "e3", "e4", "e5", "e6"},
			},
			subject:     "[Privacy Monitor] Data Broker scan complete - 0 new exposures",
			contains:    []string{"completed with errors.", "- e1\n", "- e5\n"},
			notContains: []string{"e6"},
		},
		{
			name: "failed",
			summary: notify.ScanSummary{
				Kind:   domain.ScanKindBreach,
				Status: domain.ScanStatusFailed,
				Errors: []string{"HIBP API key invalid"},
			},
			subject:  "[Privacy Monitor] Breach scan complete - 0 new exposures",
			contains: []string{"completed with a failure.", "- HIBP API key invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.ScanComplete(tt.summary)
			require.NoError(t, err)
			require.Equal(t, tt.subject, msg.Subject)
			for _, s := range tt.contains {
				require.Contains(t, msg.Text, s)
			}
			for _, s := range tt.notContains {
				require.NotContains(t, msg.Text, s)
			}
			require.Empty(t, msg.HTML)
		})
	}
}
