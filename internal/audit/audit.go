package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shixin-guo/seo-agent/internal/analyze"
	"github.com/shixin-guo/seo-agent/internal/fetch"
	"github.com/shixin-guo/seo-agent/internal/frontier"
	"github.com/shixin-guo/seo-agent/internal/model"
	"github.com/shixin-guo/seo-agent/internal/util"
)

// DefaultMaxPages is the ceiling a caller-supplied budget is clamped to.
const DefaultMaxPages = 50

// slowSpeedThreshold is the average load time above which a page-speed
// recommendation is emitted, in seconds.
const slowSpeedThreshold = 3.0

// Config holds audit settings.
type Config struct {
	Timeout       time.Duration
	UserAgent     string
	MaxPages      int
	SkipQueryURLs bool
	// RespectRobots is accepted for config compatibility but not enforced.
	RespectRobots bool
	Delay         time.Duration
	Insecure      bool
	Retries       int
	Verbose       bool
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = fetch.DefaultUserAgent
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
}

// Auditor runs technical SEO audits. It keeps no per-audit state, so a
// single Auditor is safe to reuse across calls; each call owns its own
// frontier, visited set, and result.
type Auditor struct {
	cfg     Config
	fetcher *fetch.Fetcher
}

// New creates an Auditor from cfg, filling in defaults.
func New(cfg Config) *Auditor {
	cfg.applyDefaults()
	return &Auditor{
		cfg: cfg,
		fetcher: fetch.New(fetch.Config{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
			Insecure:  cfg.Insecure,
			Retries:   cfg.Retries,
			Delay:     cfg.Delay,
		}),
	}
}

// Audit crawls domain breadth-first up to maxPages pages (clamped to the
// configured ceiling) and returns the accumulated findings. The domain may
// omit its scheme; https:// is assumed. Per-page failures never abort the
// audit: fetch failures become broken links, analysis failures become crawl
// errors.
func (a *Auditor) Audit(ctx context.Context, domain string, maxPages int) (*model.Result, error) {
	if maxPages <= 0 {
		return nil, fmt.Errorf("max pages must be positive (got %d)", maxPages)
	}
	start, err := util.NormalizeURL(domain)
	if err != nil {
		return nil, err
	}
	budget := maxPages
	if budget > a.cfg.MaxPages {
		budget = a.cfg.MaxPages
	}

	res := &model.Result{
		Domain:          start.Host,
		StartURL:        start.String(),
		Pages:           []model.Page{},
		Issues:          []model.Issue{},
		Redirects:       []model.Redirect{},
		BrokenLinks:     []model.BrokenLink{},
		PageSpeeds:      map[string]float64{},
		Recommendations: []model.Recommendation{},
	}

	fr := frontier.New(budget, func(u string) bool {
		return util.ShouldCrawl(u, a.cfg.SkipQueryURLs)
	})
	fr.Seed(start.String())

	for fr.ShouldContinue() {
		u, ok := fr.Pop()
		if !ok {
			break
		}
		if fr.Visited(u) {
			continue
		}
		fr.MarkVisited(u)

		page, err := a.crawlPage(ctx, u, start.Host, res)
		if err != nil {
			if a.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[crawl] %s: %v\n", u, err)
			}
			res.CrawlErrors = append(res.CrawlErrors, model.Issue{
				Type:     model.IssueCrawlError,
				Severity: model.IssueCrawlError.Severity(),
				Message:  err.Error(),
				URL:      u,
			})
			continue
		}
		if page == nil {
			continue
		}
		res.Pages = append(res.Pages, *page)
		for _, link := range page.Links {
			fr.Offer(link)
		}
	}

	res.PagesAnalyzed = fr.VisitedCount()
	summarize(res)
	recommend(res)
	return res, nil
}

// crawlPage fetches and analyzes one URL, recording redirects, broken links,
// page speed, and issues into res. It returns nil, nil when the URL was
// recorded as broken, and an error only for analysis failures.
func (a *Auditor) crawlPage(ctx context.Context, u, startHost string, res *model.Result) (*model.Page, error) {
	fres := a.fetcher.Fetch(ctx, u)
	if fres.Err != nil {
		res.BrokenLinks = append(res.BrokenLinks, model.BrokenLink{URL: u, Error: fres.Err.Error()})
		return nil, nil
	}
	if len(fres.Chain) > 0 {
		res.Redirects = append(res.Redirects, model.Redirect{
			From:       u,
			To:         fres.FinalURL,
			StatusCode: fres.Chain[0].Status,
		})
	}
	if fres.StatusCode != 200 {
		res.BrokenLinks = append(res.BrokenLinks, model.BrokenLink{URL: u, StatusCode: fres.StatusCode})
		return nil, nil
	}

	page, err := analyze.Page(fres.Body, u, startHost)
	if err != nil {
		return nil, err
	}
	page.FinalURL = fres.FinalURL
	page.StatusCode = fres.StatusCode
	page.ContentType = fres.ContentType
	page.LoadTime = fres.LoadTime.Seconds()
	res.PageSpeeds[u] = page.LoadTime

	for _, is := range page.Issues {
		is.URL = u
		res.Issues = append(res.Issues, is)
	}
	return page, nil
}

func summarize(res *model.Result) {
	issueCounts := map[model.IssueType]int{}
	severityCounts := map[model.Severity]int{
		model.SeverityHigh:   0,
		model.SeverityMedium: 0,
		model.SeverityLow:    0,
	}
	for _, is := range res.Issues {
		issueCounts[is.Type]++
		severityCounts[is.Severity]++
	}

	var total float64
	for _, speed := range res.PageSpeeds {
		total += speed
	}
	n := len(res.PageSpeeds)
	if n < 1 {
		n = 1
	}

	res.Summary = model.Summary{
		TotalPages:       res.PagesAnalyzed,
		TotalIssues:      len(res.Issues),
		IssueCounts:      issueCounts,
		BrokenLinksCount: len(res.BrokenLinks),
		RedirectsCount:   len(res.Redirects),
		AveragePageSpeed: total / float64(n),
		SeverityCounts:   severityCounts,
	}
}

func hasIssue(res *model.Result, types ...model.IssueType) bool {
	for _, is := range res.Issues {
		for _, t := range types {
			if is.Type == t {
				return true
			}
		}
	}
	return false
}

// recommend emits one recommendation per issue category present anywhere in
// the audit, in a fixed order.
func recommend(res *model.Result) {
	if hasIssue(res, model.IssueMissingTitle, model.IssueShortTitle, model.IssueLongTitle) {
		res.Recommendations = append(res.Recommendations, model.Recommendation{
			Type:     "title_optimization",
			Priority: model.SeverityHigh,
			Message:  "Optimize page titles to be between 10-70 characters and include relevant keywords.",
		})
	}
	if hasIssue(res, model.IssueMissingMetaDescription, model.IssueShortMetaDescription, model.IssueLongMetaDescription) {
		res.Recommendations = append(res.Recommendations, model.Recommendation{
			Type:     "meta_description_optimization",
			Priority: model.SeverityHigh,
			Message:  "Add or optimize meta descriptions to be between 50-160 characters and entice clicks.",
		})
	}
	if hasIssue(res, model.IssueMissingH1, model.IssueMultipleH1) {
		res.Recommendations = append(res.Recommendations, model.Recommendation{
			Type:     "heading_structure",
			Priority: model.SeverityMedium,
			Message:  "Ensure each page has exactly one H1 tag that clearly describes the page content.",
		})
	}
	if hasIssue(res, model.IssueImagesMissingAlt) {
		res.Recommendations = append(res.Recommendations, model.Recommendation{
			Type:     "image_optimization",
			Priority: model.SeverityMedium,
			Message:  "Add descriptive alt text to all images to improve accessibility and SEO.",
		})
	}
	if len(res.BrokenLinks) > 0 {
		res.Recommendations = append(res.Recommendations, model.Recommendation{
			Type:     "fix_broken_links",
			Priority: model.SeverityHigh,
			Message:  fmt.Sprintf("Fix %d broken links found during the audit.", len(res.BrokenLinks)),
		})
	}
	if res.Summary.AveragePageSpeed > slowSpeedThreshold {
		res.Recommendations = append(res.Recommendations, model.Recommendation{
			Type:     "improve_page_speed",
			Priority: model.SeverityHigh,
			Message:  fmt.Sprintf("Improve page load speed, currently averaging %.2f seconds.", res.Summary.AveragePageSpeed),
		})
	}
}
