package detect

import (
	"fmt"
	"unicode/utf8"

	"github.com/shixin-guo/seo-agent/internal/model"
)

// Length boundaries for title and meta description, in characters.
const (
	MinTitleLen = 10
	MaxTitleLen = 70
	MinMetaLen  = 50
	MaxMetaLen  = 160

	// MaxPageSize is the body size above which a page is flagged.
	MaxPageSize = 1 << 20
)

func issue(t model.IssueType, msg string) *model.Issue {
	return &model.Issue{Type: t, Severity: t.Severity(), Message: msg}
}

// Title checks the page title against the length boundaries. An absent or
// empty title is missing.
func Title(title *string) *model.Issue {
	if title == nil || *title == "" {
		return issue(model.IssueMissingTitle, "Page is missing a title tag")
	}
	n := utf8.RuneCountInString(*title)
	switch {
	case n < MinTitleLen:
		return issue(model.IssueShortTitle, fmt.Sprintf("Title is too short (%d characters)", n))
	case n > MaxTitleLen:
		return issue(model.IssueLongTitle, fmt.Sprintf("Title is too long (%d characters)", n))
	}
	return nil
}

// MetaDescription checks the meta description against the length boundaries.
func MetaDescription(desc *string) *model.Issue {
	if desc == nil || *desc == "" {
		return issue(model.IssueMissingMetaDescription, "Page is missing a meta description")
	}
	n := utf8.RuneCountInString(*desc)
	switch {
	case n < MinMetaLen:
		return issue(model.IssueShortMetaDescription, fmt.Sprintf("Meta description is too short (%d characters)", n))
	case n > MaxMetaLen:
		return issue(model.IssueLongMetaDescription, fmt.Sprintf("Meta description is too long (%d characters)", n))
	}
	return nil
}

// Headings checks that the page has exactly one H1.
func Headings(h1 []string) *model.Issue {
	switch {
	case len(h1) == 0:
		return issue(model.IssueMissingH1, "Page is missing an H1 heading")
	case len(h1) > 1:
		return issue(model.IssueMultipleH1, fmt.Sprintf("Page has multiple H1 headings (%d)", len(h1)))
	}
	return nil
}

// ImageAlt flags pages where one or more images lack alt text.
func ImageAlt(images []model.Image) *model.Issue {
	missing := 0
	for _, img := range images {
		if !img.HasAlt {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}
	return issue(model.IssueImagesMissingAlt,
		fmt.Sprintf("%d of %d images missing alt text", missing, len(images)))
}

// PageSize flags raw bodies larger than MaxPageSize.
func PageSize(bodyLen int) *model.Issue {
	if bodyLen <= MaxPageSize {
		return nil
	}
	return issue(model.IssueLargePageSize,
		fmt.Sprintf("Page size is large: %.1f KB", float64(bodyLen)/1024))
}

// Page runs every rule against an extracted page and returns the issues in
// rule order. bodyLen is the raw response body size in bytes.
func Page(p *model.Page, bodyLen int) []model.Issue {
	var issues []model.Issue
	for _, f := range []*model.Issue{
		Title(p.Title),
		MetaDescription(p.MetaDescription),
		Headings(p.H1),
		ImageAlt(p.Images),
		PageSize(bodyLen),
	} {
		if f != nil {
			issues = append(issues, *f)
		}
	}
	return issues
}
