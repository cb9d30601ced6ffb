package runner

import (
	"context"
	"sync"

	"github.com/shixin-guo/seo-agent/internal/audit"
	"github.com/shixin-guo/seo-agent/internal/model"
)

// Config holds settings for the runner.
type Config struct {
	Threads  int
	MaxPages int
	Audit    audit.Config
}

// Outcome pairs a domain with its audit result or error.
type Outcome struct {
	Domain string
	Result *model.Result
	Err    error
}

// Runner audits several domains with a bounded worker pool. Each worker
// builds a fresh Auditor so every audit keeps its own pacing.
type Runner struct {
	cfg Config
}

// New creates a new Runner.
func New(cfg Config) *Runner {
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	return &Runner{cfg: cfg}
}

// Run audits every domain and returns outcomes in input order.
func (r *Runner) Run(ctx context.Context, domains []string) []Outcome {
	out := make([]Outcome, len(domains))
	mu := &sync.Mutex{}

	type job struct {
		idx    int
		domain string
	}

	jobs := make(chan job)
	wg := sync.WaitGroup{}
	for i := 0; i < r.cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			auditor := audit.New(r.cfg.Audit)
			for jb := range jobs {
				res, err := auditor.Audit(ctx, jb.domain, r.cfg.MaxPages)
				mu.Lock()
				out[jb.idx] = Outcome{Domain: jb.domain, Result: res, Err: err}
				mu.Unlock()
			}
		}()
	}

	go func() {
		for i, d := range domains {
			if ctx.Err() != nil {
				break
			}
			jobs <- job{idx: i, domain: d}
		}
		close(jobs)
	}()

	wg.Wait()
	return out
}
