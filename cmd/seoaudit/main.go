package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shixin-guo/seo-agent/internal/audit"
	"github.com/shixin-guo/seo-agent/internal/banner"
	"github.com/shixin-guo/seo-agent/internal/model"
	"github.com/shixin-guo/seo-agent/internal/output"
	"github.com/shixin-guo/seo-agent/internal/runner"
	"github.com/shixin-guo/seo-agent/internal/statuscolor"
)

type options struct {
	domain      string
	domainsFile string
	maxPages    int
	timeout     time.Duration
	userAgent   string
	skipQuery   bool
	insecure    bool
	retries     int
	delay       time.Duration
	threads     int
	outputJSON  string
	outputJSONL string
	outputHTML  string
	outputPlan  string
	verbose     bool
	silent      bool
	summary     bool
}

func main() {
	opts := parseFlags()
	banner.PrintBanner()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.domain, "d", "", "Domain to audit (scheme optional)")
	flag.StringVar(&opts.domainsFile, "f", "", "File with one domain per line")
	flag.IntVar(&opts.maxPages, "max-pages", 10, "Maximum pages to crawl per domain")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-fetch timeout")
	flag.StringVar(&opts.userAgent, "ua", "", "User-Agent override")
	flag.BoolVar(&opts.skipQuery, "skip-query", false, "Skip URLs with query strings")
	flag.BoolVar(&opts.insecure, "insecure", false, "Skip TLS verification")
	flag.IntVar(&opts.retries, "retries", 0, "Retry count for 5xx/transport errors")
	flag.DurationVar(&opts.delay, "delay", time.Second, "Pause between fetches")
	flag.IntVar(&opts.threads, "t", 1, "Concurrent audits (multi-domain runs)")
	flag.StringVar(&opts.outputJSON, "o", "", "JSON result output file")
	flag.StringVar(&opts.outputJSONL, "jsonl", "", "JSONL page records output file")
	flag.StringVar(&opts.outputHTML, "html", "", "HTML report output file (single domain)")
	flag.StringVar(&opts.outputPlan, "plan", "", "Action plan markdown output file (single domain)")
	flag.BoolVar(&opts.verbose, "v", false, "Enable verbose output")
	flag.BoolVar(&opts.silent, "silent", false, "Suppress console output")
	flag.BoolVar(&opts.summary, "summary", false, "Show one-line summary per domain")
	flag.Parse()
	return opts
}

func run(opts options) error {
	switch {
	case opts.domain == "" && opts.domainsFile == "":
		return errors.New("-d (domain) or -f (domains file) is required")
	case opts.domain != "" && opts.domainsFile != "":
		return errors.New("-d and -f are mutually exclusive")
	}
	if opts.maxPages <= 0 {
		return fmt.Errorf("-max-pages must be greater than zero (got %d)", opts.maxPages)
	}
	if opts.timeout <= 0 {
		return fmt.Errorf("-timeout must be > 0 (got %s)", opts.timeout)
	}
	if opts.retries < 0 {
		return fmt.Errorf("-retries must be >= 0 (got %d)", opts.retries)
	}
	if opts.delay < 0 {
		return fmt.Errorf("-delay must be >= 0 (got %s)", opts.delay)
	}
	if opts.threads <= 0 {
		return fmt.Errorf("-t must be greater than zero (got %d)", opts.threads)
	}

	domains, err := buildDomains(opts)
	if err != nil {
		return err
	}
	if len(domains) > 1 && (opts.outputHTML != "" || opts.outputPlan != "") {
		return errors.New("-html and -plan expect a single domain")
	}

	cfg := audit.Config{
		Timeout:       opts.timeout,
		UserAgent:     opts.userAgent,
		SkipQueryURLs: opts.skipQuery,
		Delay:         opts.delay,
		Insecure:      opts.insecure,
		Retries:       opts.retries,
		Verbose:       opts.verbose,
	}

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "[config] domains=%d max-pages=%d threads=%d timeout=%s delay=%s\n",
			len(domains), opts.maxPages, opts.threads, opts.timeout, opts.delay)
	}

	ctx := context.Background()
	outcomes := runner.New(runner.Config{
		Threads:  opts.threads,
		MaxPages: opts.maxPages,
		Audit:    cfg,
	}).Run(ctx, domains)

	var results []*model.Result
	failed := 0
	for _, oc := range outcomes {
		if oc.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "[-] %s: %v\n", oc.Domain, oc.Err)
			continue
		}
		results = append(results, oc.Result)
		if !opts.silent {
			printConsole(oc.Result, opts)
		}
	}

	if opts.outputJSON != "" {
		if err := writeJSONFile(opts.outputJSON, results, opts.verbose); err != nil {
			return err
		}
	}
	if opts.outputJSONL != "" {
		if err := writeJSONLFile(opts.outputJSONL, results, opts.verbose); err != nil {
			return err
		}
	}
	if opts.outputHTML != "" && len(results) == 1 {
		if err := writeHTMLFile(opts.outputHTML, results[0], opts.verbose); err != nil {
			return err
		}
	}
	if opts.outputPlan != "" && len(results) == 1 {
		if err := writePlanFile(opts.outputPlan, results[0], opts.verbose); err != nil {
			return err
		}
	}

	if failed == len(outcomes) {
		return errors.New("every audit failed")
	}
	return nil
}

func buildDomains(opts options) ([]string, error) {
	if opts.domain != "" {
		return []string{opts.domain}, nil
	}
	file, err := os.Open(opts.domainsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open domains file %q: %w", opts.domainsFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var domains []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		domains = append(domains, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("domains file read error: %w", err)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("domains file %q is empty", opts.domainsFile)
	}
	return domains, nil
}

func printConsole(res *model.Result, opts options) {
	sev := res.Summary.SeverityCounts
	if opts.summary {
		fmt.Printf("%s | pages=%d issues=%d (high=%d medium=%d low=%d) broken=%d redirects=%d avg=%.2fs\n",
			res.Domain, res.Summary.TotalPages, res.Summary.TotalIssues,
			sev[model.SeverityHigh], sev[model.SeverityMedium], sev[model.SeverityLow],
			res.Summary.BrokenLinksCount, res.Summary.RedirectsCount, res.Summary.AveragePageSpeed)
		return
	}

	fmt.Printf("=== %s ===\n", res.Domain)
	fmt.Printf("Pages analyzed: %d\n", res.Summary.TotalPages)
	fmt.Printf("Issues found: %d (high=%d medium=%d low=%d)\n",
		res.Summary.TotalIssues, sev[model.SeverityHigh], sev[model.SeverityMedium], sev[model.SeverityLow])
	fmt.Printf("Broken links: %d | Redirects: %d | Avg page speed: %.2fs\n",
		res.Summary.BrokenLinksCount, res.Summary.RedirectsCount, res.Summary.AveragePageSpeed)

	if opts.verbose {
		for _, p := range res.Pages {
			statuscolor.PrintPage(p)
		}
		statuscolor.PrintIssues(res)
	}

	if len(res.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range res.Recommendations {
			fmt.Printf("  - [%s] %s\n", statuscolor.Severity(rec.Priority), rec.Message)
		}
	}

	if opts.outputPlan == "" {
		fmt.Println()
		fmt.Println(output.ActionPlan(res))
	}
}

func writeJSONFile(path string, results []*model.Result, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create JSON directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	var werr error
	if len(results) == 1 {
		werr = enc.Encode(results[0])
	} else {
		werr = enc.Encode(results)
	}
	if werr != nil {
		return fmt.Errorf("write JSON: %w", werr)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] JSON result -> %s\n", path)
	}
	return nil
}

func writeJSONLFile(path string, results []*model.Result, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create JSONL directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create JSONL file: %w", err)
	}
	defer f.Close()

	var records []output.Record
	for _, res := range results {
		for _, p := range res.Pages {
			records = append(records, output.BuildRecord(p))
		}
	}
	if err := output.WriteJSONL(f, records); err != nil {
		return fmt.Errorf("write JSONL: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] JSONL records -> %s\n", path)
	}
	return nil
}

func writeHTMLFile(path string, res *model.Result, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create HTML directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create HTML file: %w", err)
	}
	defer f.Close()
	page := output.PageData{
		Title:       "SEO Audit Report",
		GeneratedAt: time.Now().UTC(),
		Result:      res,
	}
	if err := output.RenderHTML(f, page); err != nil {
		return fmt.Errorf("write HTML: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] HTML report -> %s\n", path)
	}
	return nil
}

func writePlanFile(path string, res *model.Result, verbose bool) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create plan directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(output.ActionPlan(res)), 0o644); err != nil {
		return fmt.Errorf("write action plan: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[write] action plan -> %s\n", path)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
