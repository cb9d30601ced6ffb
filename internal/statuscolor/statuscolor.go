package statuscolor

import (
	"fmt"
	"net/http"

	"github.com/shixin-guo/seo-agent/internal/model"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
	colorReset  = "\033[0m"
)

func colorFor(status int) string {
	switch {
	case status == 0:
		return colorReset
	case status == http.StatusOK:
		return colorGreen
	case status >= 300 && status < 400:
		return colorYellow
	case status >= 400:
		return colorRed
	default:
		return colorYellow
	}
}

func severityColor(sev model.Severity) string {
	switch sev {
	case model.SeverityHigh:
		return colorRed
	case model.SeverityMedium:
		return colorYellow
	case model.SeverityLow:
		return colorGray
	default:
		return colorReset
	}
}

// Sprint returns a colorized status code string (200 green, 3xx yellow,
// 4xx/5xx red).
func Sprint(status int) string {
	if status == 0 {
		return fmt.Sprintf("%s—%s", colorGray, colorReset)
	}
	return fmt.Sprintf("%s%d%s", colorFor(status), status, colorReset)
}

// Severity returns the severity label wrapped in its ANSI color.
func Severity(sev model.Severity) string {
	return fmt.Sprintf("%s%s%s", severityColor(sev), sev, colorReset)
}

// Gray wraps the provided text with a gray ANSI color.
func Gray(text string) string {
	return fmt.Sprintf("%s%s%s", colorGray, text, colorReset)
}

// PrintIssues prints every audit-wide issue with a color-coded severity tag.
func PrintIssues(res *model.Result) {
	for _, is := range res.Issues {
		fmt.Printf("[%s] %s — %s %s\n", Severity(is.Severity), is.Type, is.Message, Gray(is.URL))
	}
}

// PrintPage prints one crawled page line with a color-coded status.
func PrintPage(p model.Page) {
	fmt.Printf("%s %s (%d issues, %.0fms)\n", Sprint(p.StatusCode), p.URL, len(p.Issues), p.LoadTime*1000)
}
