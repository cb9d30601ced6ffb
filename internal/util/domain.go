package util

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// skippedExtensions are asset paths the crawler never enqueues.
var skippedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".gif", ".css", ".js"}

// NormalizeURL parses a domain or URL, prepending https:// when no scheme is
// given, and rejects anything that cannot be crawled.
func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty domain")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	return u, nil
}

// SameHost reports whether the URL's host matches host exactly. Subdomains do
// not match.
func SameHost(u *url.URL, host string) bool {
	return u.Host == host
}

// HasSkippedExtension reports whether the path ends in an asset extension
// that the crawler ignores.
func HasSkippedExtension(path string) bool {
	p := strings.ToLower(path)
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// ShouldCrawl applies the frontier admission filter: http(s) scheme, no
// skipped asset extension, and optionally no query string.
func ShouldCrawl(raw string, skipQueryURLs bool) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if HasSkippedExtension(u.Path) {
		return false
	}
	if skipQueryURLs && u.RawQuery != "" {
		return false
	}
	return true
}
