package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/shixin-guo/seo-agent/internal/httpclient"
	"github.com/shixin-guo/seo-agent/internal/model"
)

// DefaultUserAgent mimics a standard browser while identifying the bot.
const DefaultUserAgent = "Mozilla/5.0 (compatible; SEOAgentBot/1.0; +https://github.com/shixin-guo/seo-agent)"

const (
	defaultTimeout      = 10 * time.Second
	defaultDelay        = time.Second
	defaultMaxRedirects = 10
	defaultMaxBodySize  = 5 << 20
)

// Config holds settings for the page fetcher.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Insecure  bool
	Retries   int
	// Delay is the minimum spacing between requests. Zero disables pacing.
	Delay        time.Duration
	MaxRedirects int
	MaxBodySize  int64
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = defaultMaxRedirects
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = defaultMaxBodySize
	}
}

// Result is the outcome of fetching one URL. Err is set on network failure;
// otherwise StatusCode holds the final response status and Chain the 3xx
// hops that led to FinalURL.
type Result struct {
	RequestedURL string
	FinalURL     string
	StatusCode   int
	ContentType  string
	Body         []byte
	LoadTime     time.Duration
	Chain        []model.Hop
	Err          error
}

// OK reports whether the fetch produced a usable 200 page.
func (r Result) OK() bool { return r.Err == nil && r.StatusCode == http.StatusOK }

// Fetcher performs single-page fetches with manual redirect tracing and a
// fixed inter-request delay.
type Fetcher struct {
	client       *http.Client
	limiter      *rate.Limiter
	maxRedirects int
	maxBodySize  int64
}

// New creates a Fetcher from cfg, filling in defaults.
func New(cfg Config) *Fetcher {
	cfg.applyDefaults()
	f := &Fetcher{
		client: httpclient.New(httpclient.Config{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
			Insecure:  cfg.Insecure,
			Retries:   cfg.Retries,
		}),
		maxRedirects: cfg.MaxRedirects,
		maxBodySize:  cfg.MaxBodySize,
	}
	if cfg.Delay > 0 {
		f.limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}
	return f
}

// Fetch retrieves target, following up to MaxRedirects Location hops
// manually so the first hop's status is preserved. It never panics and never
// returns a Go error for HTTP-level failures; inspect Result instead.
func (f *Fetcher) Fetch(ctx context.Context, target string) Result {
	res := Result{RequestedURL: target, FinalURL: target}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			res.Err = err
			return res
		}
	}

	current := target
	start := time.Now()

	for hop := 0; ; hop++ {
		if hop > f.maxRedirects {
			res.Err = fmt.Errorf("exceeded %d redirects", f.maxRedirects)
			res.LoadTime = time.Since(start)
			return res
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, current, nil)
		if err != nil {
			res.Err = err
			res.LoadTime = time.Since(start)
			return res
		}
		resp, err := f.client.Do(req)
		if err != nil {
			res.Err = err
			res.LoadTime = time.Since(start)
			return res
		}

		if resp.StatusCode >= 300 && resp.StatusCode < 400 {
			loc := resp.Header.Get("Location")
			next, perr := url.Parse(loc)
			if loc == "" || perr != nil {
				// Redirect with no usable Location: treat as the final
				// response and let the caller record it as broken.
				_ = resp.Body.Close()
				res.FinalURL = current
				res.StatusCode = resp.StatusCode
				res.LoadTime = time.Since(start)
				return res
			}
			res.Chain = append(res.Chain, model.Hop{URL: current, Status: resp.StatusCode})
			_ = resp.Body.Close()
			current = resp.Request.URL.ResolveReference(next).String()
			continue
		}

		body, rerr := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
		_ = resp.Body.Close()
		res.LoadTime = time.Since(start)
		res.FinalURL = current
		res.StatusCode = resp.StatusCode
		res.ContentType = resp.Header.Get("Content-Type")
		if rerr != nil {
			res.Err = rerr
			return res
		}
		res.Body = body
		return res
	}
}
