package analyze

import (
	"testing"

	"github.com/shixin-guo/seo-agent/internal/model"
)

const samplePage = `<!doctype html>
<html>
<head>
<title>  Example Page Title  </title>
<meta name="description" content=" A perfectly ordinary description that is long enough to pass the checks. ">
</head>
<body>
<h1>Main Heading</h1>
<h2>First Section</h2>
<h2>Second Section</h2>
<img src="logo.png" alt="Company logo">
<img src="hero.jpg" alt="">
<img src="pixel.gif">
<img alt="no source">
<a href="/about">About</a>
<a href="https://example.com/contact">Contact</a>
<a href="https://other.com/page">External</a>
<a href="javascript:void(0)">JS</a>
<a href="#section">Anchor</a>
<a href="mailto:hi@example.com">Mail</a>
<a href="tel:+123">Phone</a>
<a href="   ">Blank</a>
</body>
</html>`

func TestExtraction(t *testing.T) {
	p, err := Page([]byte(samplePage), "https://example.com/start", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Title == nil || *p.Title != "Example Page Title" {
		t.Fatalf("title not trimmed/extracted: %v", p.Title)
	}
	if p.MetaDescription == nil || *p.MetaDescription != "A perfectly ordinary description that is long enough to pass the checks." {
		t.Fatalf("meta description not trimmed/extracted: %v", p.MetaDescription)
	}
	if len(p.H1) != 1 || p.H1[0] != "Main Heading" {
		t.Fatalf("unexpected h1 set: %v", p.H1)
	}
	if len(p.H2) != 2 || p.H2[1] != "Second Section" {
		t.Fatalf("unexpected h2 set: %v", p.H2)
	}
}

func TestImageExtraction(t *testing.T) {
	p, err := Page([]byte(samplePage), "https://example.com/start", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// img without src is dropped
	if len(p.Images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(p.Images))
	}
	wantAlt := map[string]bool{"logo.png": true, "hero.jpg": false, "pixel.gif": false}
	for _, img := range p.Images {
		if wantAlt[img.Src] != img.HasAlt {
			t.Errorf("%s: has_alt=%t, want %t", img.Src, img.HasAlt, wantAlt[img.Src])
		}
	}
}

func TestLinkFiltering(t *testing.T) {
	p, err := Page([]byte(samplePage), "https://example.com/start", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://example.com/about", "https://example.com/contact"}
	if len(p.Links) != len(want) {
		t.Fatalf("expected %d links, got %v", len(want), p.Links)
	}
	for i, w := range want {
		if p.Links[i] != w {
			t.Errorf("link %d: got %s, want %s", i, p.Links[i], w)
		}
	}
}

func TestEmptyTitleIsMissing(t *testing.T) {
	html := `<html><head><title>   </title></head><body><h1>h</h1></body></html>`
	p, err := Page([]byte(html), "https://example.com/", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, is := range p.Issues {
		if is.Type == model.IssueMissingTitle {
			found = true
		}
	}
	if !found {
		t.Fatalf("whitespace-only title must count as missing, issues: %v", p.Issues)
	}
}

func TestSubdomainDoesNotMatch(t *testing.T) {
	html := `<html><body><a href="https://www.example.com/">www</a></body></html>`
	p, err := Page([]byte(html), "https://example.com/", "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Links) != 0 {
		t.Fatalf("subdomain link must be excluded, got %v", p.Links)
	}
}
