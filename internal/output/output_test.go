package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shixin-guo/seo-agent/internal/model"
	"github.com/shixin-guo/seo-agent/internal/output"
)

func sampleResult() *model.Result {
	title := "Short"
	return &model.Result{
		Domain:   "example.com",
		StartURL: "https://example.com",
		Pages: []model.Page{
			{
				URL:        "https://example.com",
				FinalURL:   "https://example.com",
				StatusCode: 200,
				LoadTime:   0.251,
				Title:      &title,
				H1:         []string{"Welcome"},
				Images:     []model.Image{{Src: "a.png", HasAlt: false}},
				Links:      []string{"https://example.com/about"},
				Issues: []model.Issue{
					{Type: model.IssueShortTitle, Severity: model.SeverityMedium, Message: "Title is too short (5 characters)"},
				},
			},
		},
		PagesAnalyzed: 1,
		Recommendations: []model.Recommendation{
			{Type: "title_optimization", Priority: model.SeverityHigh, Message: "Optimize page titles to be between 10-70 characters and include relevant keywords."},
			{Type: "image_optimization", Priority: model.SeverityMedium, Message: "Add descriptive alt text to all images to improve accessibility and SEO."},
		},
		Summary: model.Summary{
			TotalPages:       1,
			TotalIssues:      1,
			BrokenLinksCount: 2,
			RedirectsCount:   1,
			AveragePageSpeed: 0.251,
		},
	}
}

func TestActionPlan(t *testing.T) {
	plan := output.ActionPlan(sampleResult())

	if !strings.HasPrefix(plan, "# SEO Action Plan\n") {
		t.Fatalf("missing plan header:\n%s", plan)
	}

	highIdx := strings.Index(plan, "## High Priority Items")
	medIdx := strings.Index(plan, "## Medium Priority Items")
	statsIdx := strings.Index(plan, "## Audit Statistics")
	if highIdx < 0 || medIdx < 0 || statsIdx < 0 {
		t.Fatalf("missing sections:\n%s", plan)
	}
	if !(highIdx < medIdx && medIdx < statsIdx) {
		t.Fatalf("sections out of order:\n%s", plan)
	}

	titleIdx := strings.Index(plan, "- Optimize page titles")
	altIdx := strings.Index(plan, "- Add descriptive alt text")
	if titleIdx < 0 || altIdx < 0 {
		t.Fatalf("recommendations missing from plan:\n%s", plan)
	}
	if !(highIdx < titleIdx && titleIdx < medIdx && medIdx < altIdx) {
		t.Fatalf("recommendations under wrong sections:\n%s", plan)
	}

	for _, want := range []string{
		"- Total pages analyzed: 1",
		"- Total issues found: 1",
		"- Broken links: 2",
		"- Redirects: 1",
		"- Average page speed: 0.25 seconds",
	} {
		if !strings.Contains(plan, want) {
			t.Errorf("plan missing %q", want)
		}
	}
}

func TestWriteJSONL(t *testing.T) {
	res := sampleResult()
	rec := output.BuildRecord(res.Pages[0])

	var buf bytes.Buffer
	if err := output.WriteJSONL(&buf, []output.Record{rec}); err != nil {
		t.Fatalf("WriteJSONL error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var got output.Record
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if got.URL != "https://example.com" || got.IssueCount != 1 || got.LoadTimeMs != 251 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	err := output.RenderHTML(&buf, output.PageData{Result: sampleResult()})
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"SEO Audit Report",
		"example.com",
		"Title is too short (5 characters)",
		"Optimize page titles",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
