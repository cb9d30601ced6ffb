package model

// Severity grades an issue or recommendation for quick triage.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// IssueType identifies a category of technical SEO problem. Each type owns
// its severity so call sites never re-derive it.
type IssueType string

const (
	IssueMissingTitle           IssueType = "missing_title"
	IssueShortTitle             IssueType = "short_title"
	IssueLongTitle              IssueType = "long_title"
	IssueMissingMetaDescription IssueType = "missing_meta_description"
	IssueShortMetaDescription   IssueType = "short_meta_description"
	IssueLongMetaDescription    IssueType = "long_meta_description"
	IssueMissingH1              IssueType = "missing_h1"
	IssueMultipleH1             IssueType = "multiple_h1"
	IssueImagesMissingAlt       IssueType = "images_missing_alt"
	IssueLargePageSize          IssueType = "large_page_size"
	IssueCrawlError             IssueType = "crawl_error"
)

var issueSeverities = map[IssueType]Severity{
	IssueMissingTitle:           SeverityHigh,
	IssueShortTitle:             SeverityMedium,
	IssueLongTitle:              SeverityMedium,
	IssueMissingMetaDescription: SeverityMedium,
	IssueShortMetaDescription:   SeverityLow,
	IssueLongMetaDescription:    SeverityLow,
	IssueMissingH1:              SeverityMedium,
	IssueMultipleH1:             SeverityLow,
	IssueImagesMissingAlt:       SeverityMedium,
	IssueLargePageSize:          SeverityMedium,
	IssueCrawlError:             SeverityHigh,
}

// Severity returns the fixed severity for the issue type.
func (t IssueType) Severity() Severity {
	if s, ok := issueSeverities[t]; ok {
		return s
	}
	return SeverityMedium
}

// Issue is a single flagged problem on one page. URL is set when the issue
// is merged into the audit-wide list.
type Issue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	URL      string    `json:"url,omitempty"`
}

// Image describes one <img> with a non-empty src.
type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	HasAlt bool   `json:"has_alt"`
}

// Hop is one 3xx response observed while following redirects.
type Hop struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
}

// Page holds the extracted metadata for one successfully fetched page.
// Immutable once built; owned by the audit result.
type Page struct {
	URL             string   `json:"url"`
	FinalURL        string   `json:"final_url"`
	StatusCode      int      `json:"status_code"`
	LoadTime        float64  `json:"load_time"`
	ContentType     string   `json:"content_type"`
	Title           *string  `json:"title"`
	MetaDescription *string  `json:"meta_description"`
	H1              []string `json:"h1"`
	H2              []string `json:"h2"`
	Images          []Image  `json:"images"`
	Links           []string `json:"links"`
	Issues          []Issue  `json:"issues"`
}

// Redirect records the first hop of a redirect chain.
type Redirect struct {
	From       string `json:"from"`
	To         string `json:"to"`
	StatusCode int    `json:"status_code"`
}

// BrokenLink records a URL that could not be fetched with a 200. Exactly one
// of StatusCode and Error is set.
type BrokenLink struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Recommendation is a prioritized action derived from the issue set.
// One per category present in the audit, never per occurrence.
type Recommendation struct {
	Type     string   `json:"type"`
	Priority Severity `json:"priority"`
	Message  string   `json:"message"`
}

// Summary aggregates the audit counters.
type Summary struct {
	TotalPages       int               `json:"total_pages"`
	TotalIssues      int               `json:"total_issues"`
	IssueCounts      map[IssueType]int `json:"issue_counts"`
	BrokenLinksCount int               `json:"broken_links_count"`
	RedirectsCount   int               `json:"redirects_count"`
	AveragePageSpeed float64           `json:"average_page_speed"`
	SeverityCounts   map[Severity]int  `json:"severity_counts"`
}

// Result is the complete output of one audit. It is built inside a single
// Audit call and immutable once returned.
type Result struct {
	Domain          string             `json:"domain"`
	StartURL        string             `json:"start_url"`
	PagesAnalyzed   int                `json:"pages_analyzed"`
	Pages           []Page             `json:"pages"`
	Issues          []Issue            `json:"issues"`
	Redirects       []Redirect         `json:"redirects"`
	BrokenLinks     []BrokenLink       `json:"broken_links"`
	PageSpeeds      map[string]float64 `json:"page_speeds"`
	Recommendations []Recommendation   `json:"recommendations"`
	Summary         Summary            `json:"summary"`
	// CrawlErrors holds per-URL failures from the analysis path. They stay
	// out of Issues so issue counts reflect page findings only.
	CrawlErrors []Issue `json:"crawl_errors,omitempty"`
}
