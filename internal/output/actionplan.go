package output

import (
	"fmt"
	"strings"

	"github.com/shixin-guo/seo-agent/internal/model"
)

// ActionPlan renders the priority-grouped markdown action plan for a
// completed audit.
func ActionPlan(res *model.Result) string {
	var b strings.Builder
	b.WriteString("# SEO Action Plan\n\n")

	b.WriteString("## High Priority Items\n\n")
	for _, rec := range res.Recommendations {
		if rec.Priority == model.SeverityHigh {
			fmt.Fprintf(&b, "- %s\n", rec.Message)
		}
	}

	b.WriteString("\n## Medium Priority Items\n\n")
	for _, rec := range res.Recommendations {
		if rec.Priority == model.SeverityMedium {
			fmt.Fprintf(&b, "- %s\n", rec.Message)
		}
	}

	b.WriteString("\n## Audit Statistics\n\n")
	fmt.Fprintf(&b, "- Total pages analyzed: %d\n", res.Summary.TotalPages)
	fmt.Fprintf(&b, "- Total issues found: %d\n", res.Summary.TotalIssues)
	fmt.Fprintf(&b, "- Broken links: %d\n", res.Summary.BrokenLinksCount)
	fmt.Fprintf(&b, "- Redirects: %d\n", res.Summary.RedirectsCount)
	fmt.Fprintf(&b, "- Average page speed: %.2f seconds\n", res.Summary.AveragePageSpeed)

	return b.String()
}
