package output

import (
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/shixin-guo/seo-agent/internal/model"
)

// PageData provides the full context for the HTML report.
type PageData struct {
	Title       string
	GeneratedAt time.Time
	Result      *model.Result
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatTime": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	"upper":      strings.ToUpper,
	"deref": func(s *string) string {
		if s == nil {
			return "—"
		}
		return *s
	},
	"ms": func(seconds float64) int64 { return int64(seconds * 1000) },
}).Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { color-scheme: light dark; }
body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; margin: 24px; background:#fafafa; color:#111; }
header { margin-bottom: 24px; }
h1 { font-size: 26px; margin: 0 0 8px; }
.section { border:1px solid #e5e7eb; border-radius:16px; padding:16px 20px; margin-bottom:18px; background:#fff; box-shadow:0 1px 2px rgba(15,23,42,0.08); }
h2 { font-size:20px; margin:0 0 12px; }
h3 { font-size:16px; margin:12px 0 6px; }
.summary-grid { display:grid; gap:12px; grid-template-columns: repeat(auto-fit,minmax(160px,1fr)); }
.summary-card { display:block; padding:12px; border-radius:12px; border:1px solid #cbd5f5; position:relative; background:linear-gradient(180deg,#eef2ff,#fff); }
.summary-card .badge { position:absolute; top:12px; right:12px; padding:2px 10px; border-radius:999px; background:#4f46e5; color:#fff; font-size:12px; }
.meta { color:#6b7280; font-size:12px; }
.issue-list { list-style:disc; margin:8px 0 8px 20px; }
.sev-high { color:#dc2626; font-weight:600; }
.sev-medium { color:#d97706; font-weight:600; }
.sev-low { color:#6b7280; font-weight:600; }
.table { width:100%; border-collapse:collapse; font-size:14px; }
.table th, .table td { border-bottom:1px solid #e5e7eb; padding:6px 8px; text-align:left; }
.table th { background:#f9fafb; }
.url { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; font-size:13px; }
.footer { text-align:center; font-size:12px; color:#6b7280; margin-top:24px; }
@media (prefers-color-scheme: dark) {
        body { background:#0f172a; color:#e2e8f0; }
        .section { background:#1e293b; border-color:#334155; box-shadow:none; }
        .summary-card { background:linear-gradient(180deg,#312e81,#1e293b); border-color:#4338ca; color:#e0e7ff; }
        .meta { color:#94a3b8; }
        .table th { background:#1e293b; }
}
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p class="meta">{{.Result.Domain}} • generated at {{formatTime .GeneratedAt}}</p>
</header>
<section id="summary" class="section">
  <h2>Summary</h2>
  <div class="summary-grid">
    <div class="summary-card"><strong>Pages Analyzed</strong><span class="badge">{{.Result.Summary.TotalPages}}</span></div>
    <div class="summary-card"><strong>Total Issues</strong><span class="badge">{{.Result.Summary.TotalIssues}}</span></div>
    <div class="summary-card"><strong>Broken Links</strong><span class="badge">{{.Result.Summary.BrokenLinksCount}}</span></div>
    <div class="summary-card"><strong>Redirects</strong><span class="badge">{{.Result.Summary.RedirectsCount}}</span></div>
  </div>
  <p class="meta">Average page speed: {{printf "%.2f" .Result.Summary.AveragePageSpeed}}s</p>
</section>
<section id="recommendations" class="section">
  <h2>Recommendations</h2>
  {{if .Result.Recommendations}}
  <ul class="issue-list">
    {{range .Result.Recommendations}}
      <li><span class="sev-{{.Priority}}">{{upper (printf "%s" .Priority)}}</span> — {{.Message}}</li>
    {{end}}
  </ul>
  {{else}}
  <p class="meta">No recommendations; the crawled pages look healthy.</p>
  {{end}}
</section>
<section id="issues" class="section">
  <h2>Issues</h2>
  {{if .Result.Issues}}
  <table class="table">
    <thead>
      <tr><th>Severity</th><th>Type</th><th>Message</th><th>URL</th></tr>
    </thead>
    <tbody>
    {{range .Result.Issues}}
      <tr>
        <td class="sev-{{.Severity}}">{{.Severity}}</td>
        <td>{{.Type}}</td>
        <td>{{.Message}}</td>
        <td class="url">{{.URL}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>
  {{else}}
  <p class="meta">No issues found.</p>
  {{end}}
</section>
<section id="pages" class="section">
  <h2>Pages</h2>
  <table class="table">
    <thead>
      <tr><th>URL</th><th>Title</th><th>Status</th><th>Load (ms)</th><th>H1s</th><th>Images</th><th>Links</th><th>Issues</th></tr>
    </thead>
    <tbody>
    {{range .Result.Pages}}
      <tr>
        <td class="url">{{.URL}}</td>
        <td>{{deref .Title}}</td>
        <td>{{.StatusCode}}</td>
        <td>{{ms .LoadTime}}</td>
        <td>{{len .H1}}</td>
        <td>{{len .Images}}</td>
        <td>{{len .Links}}</td>
        <td>{{len .Issues}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>
</section>
{{if .Result.BrokenLinks}}
<section id="broken" class="section">
  <h2>Broken Links</h2>
  <ul class="issue-list">
    {{range .Result.BrokenLinks}}
      <li><span class="url">{{.URL}}</span>{{if .StatusCode}} — status {{.StatusCode}}{{end}}{{if .Error}} — {{.Error}}{{end}}</li>
    {{end}}
  </ul>
</section>
{{end}}
{{if .Result.Redirects}}
<section id="redirects" class="section">
  <h2>Redirects</h2>
  <ul class="issue-list">
    {{range .Result.Redirects}}
      <li><span class="url">{{.From}}</span> → <span class="url">{{.To}}</span> ({{.StatusCode}})</li>
    {{end}}
  </ul>
</section>
{{end}}
<footer class="footer">
  SEO audit report generated at {{formatTime .GeneratedAt}}
</footer>
</body>
</html>
`))

// RenderHTML renders the HTML report using the provided data.
func RenderHTML(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "SEO Audit Report"
	}
	return htmlTemplate.Execute(w, data)
}
