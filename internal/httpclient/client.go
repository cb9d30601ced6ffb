package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// Config holds settings for the HTTP client.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Insecure  bool
	Retries   int
}

// agentRoundTripper wraps a base RoundTripper to inject the User-Agent and
// perform simple retry logic on 5xx responses and transport errors.
type agentRoundTripper struct {
	base      http.RoundTripper
	userAgent string
	retries   int
}

func (a *agentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if a.base == nil {
		a.base = http.DefaultTransport
	}

	var resp *http.Response
	var err error

	for attempt := 0; ; attempt++ {
		// Clone the request to avoid mutations across retries
		r := req.Clone(req.Context())
		if a.userAgent != "" {
			r.Header.Set("User-Agent", a.userAgent)
		}

		resp, err = a.base.RoundTrip(r)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if attempt >= a.retries {
			if err != nil {
				return nil, err
			}
			return resp, nil
		}

		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(time.Duration(100*(1<<attempt)) * time.Millisecond)
	}
}

// New returns a configured HTTP client with manual redirect handling, so the
// fetcher can observe every hop of a redirect chain.
func New(cfg Config) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: &agentRoundTripper{
			base:      transport,
			userAgent: cfg.UserAgent,
			retries:   cfg.Retries,
		},
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// prevent automatic redirects
			return http.ErrUseLastResponse
		},
	}
}
