// internal/app/features/exports/report.go
package exports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// Results is the diagnostic-run payload the dashboard posts for export.
type Results struct {
	Summary         Summary          `json:"summary"`
	Tests           []TestResult     `json:"tests"`
	Recommendations []Recommendation `json:"recommendations"`
	Timestamp       string           `json:"timestamp"`
}

// Summary aggregates one diagnostic run.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// TestResult is one check from a diagnostic run.
type TestResult struct {
	Name      string         `json:"name"`
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Duration  int64          `json:"duration"` // milliseconds; 0 means not measured
	Timestamp string         `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

// Recommendation is a follow-up suggested by the diagnostic run.
type Recommendation struct {
	Title       string   `json:"title"`
	Priority    string   `json:"priority"` // high, medium, low
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tests       []string `json:"tests"`
}

// SuccessRate returns the pass percentage formatted to one decimal.
func (s Summary) SuccessRate() string {
	if s.Total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(s.Passed)/float64(s.Total)*100)
}

// MarkdownReport renders the results as a markdown document.
func MarkdownReport(results Results) string {
	var b strings.Builder

	b.WriteString("# Automated Test Results Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", results.Timestamp)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Total Tests | %d |\n", results.Summary.Total)
	fmt.Fprintf(&b, "| Passed | %d |\n", results.Summary.Passed)
	fmt.Fprintf(&b, "| Failed | %d |\n", results.Summary.Failed)
	fmt.Fprintf(&b, "| Success Rate | %s%% |\n\n", results.Summary.SuccessRate())

	b.WriteString("## Test Results\n\n")
	for _, test := range results.Tests {
		status := "FAIL"
		if test.Success {
			status = "PASS"
		}
		duration := "N/A"
		if test.Duration > 0 {
			duration = fmt.Sprintf("%dms", test.Duration)
		}
		fmt.Fprintf(&b, "### %s\n", test.Name)
		fmt.Fprintf(&b, "- **Status:** %s\n", status)
		fmt.Fprintf(&b, "- **Message:** %s\n", test.Message)
		fmt.Fprintf(&b, "- **Duration:** %s\n", duration)
		fmt.Fprintf(&b, "- **Timestamp:** %s\n\n", test.Timestamp)

		if len(test.Details) > 0 {
			if detail, err := json.MarshalIndent(test.Details, "", "  "); err == nil {
				fmt.Fprintf(&b, "**Details:**\n```json\n%s\n```\n\n", detail)
			}
		}
	}

	if len(results.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range results.Recommendations {
			fmt.Fprintf(&b, "### %d. %s\n", i+1, rec.Title)
			fmt.Fprintf(&b, "- **Priority:** %s\n", strings.ToUpper(rec.Priority))
			fmt.Fprintf(&b, "- **Category:** %s\n", rec.Category)
			fmt.Fprintf(&b, "- **Description:** %s\n\n", rec.Description)
			if len(rec.Tests) > 0 {
				b.WriteString("**Affected Tests:**\n")
				for _, name := range rec.Tests {
					fmt.Fprintf(&b, "- %s\n", name)
				}
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// HTMLReport renders the results as a standalone HTML page.
func HTMLReport(results Results) (string, error) {
	var buf bytes.Buffer
	if err := htmlReportTmpl.Execute(&buf, htmlReportData{Results: results}); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return buf.String(), nil
}

type htmlReportData struct {
	Results
}

func (d htmlReportData) DetailJSON(details map[string]any) string {
	raw, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return ""
	}
	return string(raw)
}

var htmlReportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Automated Test Results Report</title>
  <style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; margin: 0; padding: 20px; background: #f5f5f5; }
    .container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 5px 15px rgba(0,0,0,0.1); }
    .header { text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 2px solid #3498db; }
    .summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 30px; }
    .stat-card { background: linear-gradient(45deg, #3498db, #2980b9); color: white; padding: 20px; border-radius: 10px; text-align: center; }
    .stat-number { font-size: 2rem; font-weight: bold; margin-bottom: 5px; }
    .test-result { padding: 15px; border-radius: 8px; margin-bottom: 15px; border-left: 4px solid; }
    .test-passed { background: #d4edda; border-left-color: #28a745; }
    .test-failed { background: #f8d7da; border-left-color: #dc3545; }
    .recommendation { padding: 15px; border-radius: 8px; margin-bottom: 15px; border-left: 4px solid; }
    .rec-high { background: #f8d7da; border-left-color: #dc3545; }
    .rec-medium { background: #fff3cd; border-left-color: #ffc107; }
    .rec-low { background: #d1ecf1; border-left-color: #17a2b8; }
    .section-title { font-size: 1.5rem; margin: 30px 0 20px 0; color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
    .json-details { background: #2c3e50; color: #ecf0f1; padding: 15px; border-radius: 8px; font-family: 'Courier New', monospace; font-size: 0.9rem; overflow-x: auto; margin-top: 10px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Automated Test Results Report</h1>
      <p>Generated: {{.Timestamp}}</p>
    </div>

    <div class="summary">
      <div class="stat-card"><div class="stat-number">{{.Summary.Total}}</div><div>Total Tests</div></div>
      <div class="stat-card"><div class="stat-number">{{.Summary.Passed}}</div><div>Passed</div></div>
      <div class="stat-card"><div class="stat-number">{{.Summary.Failed}}</div><div>Failed</div></div>
      <div class="stat-card"><div class="stat-number">{{.Summary.SuccessRate}}%</div><div>Success Rate</div></div>
    </div>

    <div class="section-title">Test Results</div>
    {{range .Tests}}
    <div class="test-result {{if .Success}}test-passed{{else}}test-failed{{end}}">
      <h3>{{.Name}}</h3>
      <p><strong>Status:</strong> {{if .Success}}PASS{{else}}FAIL{{end}}</p>
      <p><strong>Message:</strong> {{.Message}}</p>
      {{if .Duration}}<p><strong>Duration:</strong> {{.Duration}}ms</p>{{end}}
      <p><strong>Timestamp:</strong> {{.Timestamp}}</p>
      {{if .Details}}
      <div class="json-details"><strong>Details:</strong><br><pre>{{$.DetailJSON .Details}}</pre></div>
      {{end}}
    </div>
    {{end}}

    {{if .Recommendations}}
    <div class="section-title">Recommendations</div>
    {{range $i, $rec := .Recommendations}}
    <div class="recommendation rec-{{$rec.Priority}}">
      <h3>{{$rec.Title}}</h3>
      <p><strong>Priority:</strong> {{$rec.Priority}}</p>
      <p><strong>Category:</strong> {{$rec.Category}}</p>
      <p><strong>Description:</strong> {{$rec.Description}}</p>
      {{if $rec.Tests}}
      <p><strong>Affected Tests:</strong></p>
      <ul>{{range $rec.Tests}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
    {{end}}
  </div>
</body>
</html>
`))
