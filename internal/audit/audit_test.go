package audit_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shixin-guo/seo-agent/internal/audit"
	"github.com/shixin-guo/seo-agent/internal/model"
)

func newAuditor() *audit.Auditor {
	return audit.New(audit.Config{Timeout: 5 * time.Second})
}

func issueTypes(issues []model.Issue) map[model.IssueType]int {
	out := map[model.IssueType]int{}
	for _, is := range issues {
		out[is.Type]++
	}
	return out
}

func recTypes(recs []model.Recommendation) map[string]model.Severity {
	out := map[string]model.Severity{}
	for _, r := range recs {
		out[r.Type] = r.Priority
	}
	return out
}

func TestSinglePageScenario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head></head><body><h1>Welcome</h1><img src="hero.png"></body></html>`))
	}))
	defer srv.Close()

	res, err := newAuditor().Audit(context.Background(), srv.URL, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.PagesAnalyzed)
	types := issueTypes(res.Issues)
	assert.Len(t, types, 3)
	assert.Equal(t, 1, types[model.IssueMissingTitle])
	assert.Equal(t, 1, types[model.IssueMissingMetaDescription])
	assert.Equal(t, 1, types[model.IssueImagesMissingAlt])

	recs := recTypes(res.Recommendations)
	assert.Equal(t, model.SeverityHigh, recs["title_optimization"])
	assert.Equal(t, model.SeverityHigh, recs["meta_description_optimization"])
	assert.Equal(t, model.SeverityMedium, recs["image_optimization"])

	for _, is := range res.Issues {
		assert.Equal(t, srv.URL, is.URL, "audit-wide issues carry the page URL")
	}
}

func TestRecommendationDedup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>a</h1><a href="/two">next</a></body></html>`))
	})
	mux.HandleFunc("/two", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>b</h1></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := newAuditor().Audit(context.Background(), srv.URL, 5)
	require.NoError(t, err)

	require.Equal(t, 2, res.PagesAnalyzed)
	assert.Equal(t, 2, issueTypes(res.Issues)[model.IssueMissingTitle])

	count := 0
	for _, rec := range res.Recommendations {
		if rec.Type == "title_optimization" {
			count++
		}
	}
	assert.Equal(t, 1, count, "one recommendation per category, not per page")
}

func TestBrokenLink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>A healthy page title</title>` +
			`<meta name="description" content="A description long enough to satisfy every boundary check easily.">` +
			`</head><body><h1>a</h1><a href="/missing">gone</a></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := newAuditor().Audit(context.Background(), srv.URL, 5)
	require.NoError(t, err)

	// Both URLs were fetched, only one produced a page.
	assert.Equal(t, 2, res.PagesAnalyzed)
	assert.Len(t, res.Pages, 1)

	require.Len(t, res.BrokenLinks, 1)
	assert.Equal(t, srv.URL+"/missing", res.BrokenLinks[0].URL)
	assert.Equal(t, http.StatusNotFound, res.BrokenLinks[0].StatusCode)

	for _, is := range res.Issues {
		assert.NotEqual(t, srv.URL+"/missing", is.URL, "broken pages contribute no issues")
	}

	recs := recTypes(res.Recommendations)
	assert.Equal(t, model.SeverityHigh, recs["fix_broken_links"])
}

func TestRedirectCapture(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>a</h1></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := newAuditor().Audit(context.Background(), srv.URL+"/old", 1)
	require.NoError(t, err)

	require.Len(t, res.Redirects, 1)
	assert.Equal(t, srv.URL+"/old", res.Redirects[0].From)
	assert.Equal(t, srv.URL+"/new", res.Redirects[0].To)
	assert.Equal(t, http.StatusMovedPermanently, res.Redirects[0].StatusCode)
}

func TestSameDomainRestriction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>a</h1>` +
			`<a href="https://elsewhere.invalid/">out</a><a href="/in">in</a></body></html>`))
	}))
	defer srv.Close()

	res, err := newAuditor().Audit(context.Background(), srv.URL, 10)
	require.NoError(t, err)

	host := mustHost(t, srv.URL)
	for _, p := range res.Pages {
		assert.Equal(t, host, mustHost(t, p.URL))
		for _, link := range p.Links {
			assert.Equal(t, host, mustHost(t, link))
		}
	}
}

func TestBudgetClamp(t *testing.T) {
	mux := http.NewServeMux()
	for i := 0; i < 10; i++ {
		next := fmt.Sprintf("/p%d", i+1)
		path := "/"
		if i > 0 {
			path = fmt.Sprintf("/p%d", i)
		}
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<html><body><h1>a</h1><a href="%s">next</a></body></html>`, next)
		})
	}
	srv := httptest.NewServer(mux)
	defer srv.Close()

	auditor := audit.New(audit.Config{Timeout: 5 * time.Second, MaxPages: 2})
	res, err := auditor.Audit(context.Background(), srv.URL, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.PagesAnalyzed, 2)
}

func TestInputValidation(t *testing.T) {
	a := newAuditor()
	_, err := a.Audit(context.Background(), "", 5)
	assert.Error(t, err, "empty domain must fail fast")
	_, err = a.Audit(context.Background(), "example.com", 0)
	assert.Error(t, err, "zero budget must fail fast")
	_, err = a.Audit(context.Background(), "example.com", -1)
	assert.Error(t, err)
}

func TestAuditorReuse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>a</h1></body></html>`))
	}))
	defer srv.Close()

	a := newAuditor()
	first, err := a.Audit(context.Background(), srv.URL, 1)
	require.NoError(t, err)
	second, err := a.Audit(context.Background(), srv.URL, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, first.PagesAnalyzed)
	assert.Equal(t, 1, second.PagesAnalyzed, "no crawl state may leak between calls")
}

func TestSummaryCounters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>a</h1><h1>b</h1><img src="x.png"></body></html>`))
	}))
	defer srv.Close()

	res, err := newAuditor().Audit(context.Background(), srv.URL, 1)
	require.NoError(t, err)

	assert.Equal(t, len(res.Issues), res.Summary.TotalIssues)
	sum := 0
	for _, n := range res.Summary.SeverityCounts {
		sum += n
	}
	assert.Equal(t, res.Summary.TotalIssues, sum)
	assert.Equal(t, res.PagesAnalyzed, res.Summary.TotalPages)
	assert.Greater(t, res.Summary.AveragePageSpeed, 0.0)
}

func mustHost(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Host
}
