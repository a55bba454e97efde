package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"privacymon/pkg/domain"
	"strings"
	texttemplate "text/template"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxListedFindings = 10
	maxTextData       = 100
	maxHTMLData       = 50
	maxListedErrors   = 5
)

var newFindingsText = texttemplate.Must(texttemplate.New("findings").Parse( //nolint: gochecknoglobals
	`{{.Brand}} detected {{.Count}} new data exposure(s) for {{.Subject}} during a {{.Kind}} scan.

New exposures:

{{range .Findings}}- {{.Name}}
{{if .URL}}  Link: {{.URL}}
{{end}}{{if .Data}}  Data: {{.Data}}
{{end}}
{{end}}{{if .More}}... and {{.More}} more.

{{end}}Log in to your {{.Brand}} dashboard to review and request removals.
`))

var newFindingsHTML = htmltemplate.Must(htmltemplate.New("findings").Parse( //nolint: gochecknoglobals
	`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626;">New Data Exposures Detected</h2>
  <p>{{.Brand}} detected <strong>{{.Count}} new data exposure(s)</strong> for <strong>{{.Subject}}</strong>.</p>
  <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <thead>
      <tr style="background: #f3f4f6;">
        <th style="padding: 8px; text-align: left;">Source</th>
        <th style="padding: 8px; text-align: left;">Data Exposed</th>
        <th style="padding: 8px; text-align: left;">Link</th>
      </tr>
    </thead>
    <tbody>
{{- range .Findings}}
      <tr>
        <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Name}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Data}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #eee;">{{if .URL}}<a href="{{.URL}}">View</a>{{end}}</td>
      </tr>
{{- end}}
    </tbody>
  </table>
{{- if .More}}
  <p><em>...and {{.More}} more exposures.</em></p>
{{- end}}
{{- if .DashboardURL}}
  <p style="margin-top: 20px;">
    <a href="{{.DashboardURL}}" style="background: #2563eb; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">View Dashboard</a>
  </p>
{{- end}}
  <hr style="margin-top: 30px; border: none; border-top: 1px solid #eee;">
  <p style="color: #666; font-size: 12px;">This alert was sent by {{.Brand}}.</p>
</body>
</html>
`))

var scanCompleteText = texttemplate.Must(texttemplate.New("complete").Parse( //nolint: gochecknoglobals
	`{{.Brand}} {{.Kind}} scan completed {{.Outcome}}.

Summary:
- Subjects scanned: {{.Subjects}}
- New exposures found: {{.NewExposures}}
{{if .Errors}}
Errors:
{{range .Errors}}- {{.}}
{{end}}{{end}}
Log in to your dashboard to review results.
`))

type findingView struct {
	Name string
	URL  string
	Data string
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

func kindLabel[K ~string](kind K) string {
	return strings.ReplaceAll(string(kind), "_", " ")
}

// Renderer turns alerts into messages.
type Renderer struct {
	brand        string
	dashboardURL string
}

// NewRenderer creates a Renderer. brand prefixes subjects and signs bodies;
// dashboardURL, when set, is linked from HTML bodies.
func NewRenderer(brand, dashboardURL string) *Renderer {
	return &Renderer{brand: brand, dashboardURL: dashboardURL}
}

// NewFindings renders the alert for exposures newly recorded for one subject.
// At most ten findings are listed.
func (r *Renderer) NewFindings(subjectName string, runner domain.RunnerKind, findings []domain.Finding) (Message, error) {
	listed := findings
	if len(listed) > maxListedFindings {
		listed = listed[:maxListedFindings]
	}

	data := struct {
		Brand        string
		Subject      string
		Kind         string
		Count        int
		More         int
		Findings     []findingView
		DashboardURL string
	}{
		Brand:        r.brand,
		Subject:      subjectName,
		Kind:         kindLabel(runner),
		Count:        len(findings),
		More:         len(findings) - len(listed),
		DashboardURL: r.dashboardURL,
	}

	textViews := make([]findingView, len(listed))
	htmlViews := make([]findingView, len(listed))
	for i, f := range listed {
		textViews[i] = findingView{Name: f.SourceName, URL: f.SourceURL, Data: truncate(f.DataExposed, maxTextData)}
		htmlViews[i] = findingView{Name: f.SourceName, URL: f.SourceURL, Data: truncate(f.DataExposed, maxHTMLData)}
	}

	var text, html bytes.Buffer
	data.Findings = textViews
	if err := newFindingsText.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("could not render text body: %w", err)
	}
	data.Findings = htmlViews
	if err := newFindingsHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("could not render html body: %w", err)
	}

	return Message{
		Subject: fmt.Sprintf("[%s] %d new exposure(s) detected for %s", r.brand, len(findings), subjectName),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

// ScanComplete renders the summary of a finalized scan. At most five errors
// are listed.
func (r *Renderer) ScanComplete(summary ScanSummary) (Message, error) {
	errs := summary.Errors
	if len(errs) > maxListedErrors {
		errs = errs[:maxListedErrors]
	}

	outcome := "successfully"
	switch {
	case summary.Status == domain.ScanStatusFailed:
		outcome = "with a failure"
	case len(summary.Errors) > 0:
		outcome = "with errors"
	}

	kind := kindLabel(summary.Kind)
	var text bytes.Buffer
	if err := scanCompleteText.Execute(&text, struct {
		ScanSummary
		Brand   string
		Kind    string
		Outcome string
		Errors  []string
	}{
		ScanSummary: summary,
		Brand:       r.brand,
		Kind:        kind,
		Outcome:     outcome,
		Errors:      errs,
	}); err != nil {
		return Message{}, fmt.Errorf("could not render text body: %w", err)
	}

	return Message{
		Subject: fmt.Sprintf("[%s] %s scan complete - %d new exposures",
			r.brand, cases.Title(language.English).String(kind), summary.NewExposures),
		Text: text.String(),
	}, nil
}
