package analyze

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shixin-guo/seo-agent/internal/detect"
	"github.com/shixin-guo/seo-agent/internal/model"
	"github.com/shixin-guo/seo-agent/internal/util"
)

// Page parses the HTML body of pageURL and extracts metadata, same-host
// links, and per-page issues. startHost is the audited site's host; only
// links resolving to it (exact match) are kept.
func Page(body []byte, pageURL, startHost string) (*model.Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	p := &model.Page{
		URL:             pageURL,
		Title:           title(doc),
		MetaDescription: metaDescription(doc),
		H1:              headings(doc, "h1"),
		H2:              headings(doc, "h2"),
		Images:          images(doc),
		Links:           links(doc, base, startHost),
	}
	p.Issues = detect.Page(p, len(body))
	return p, nil
}

func title(doc *goquery.Document) *string {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return nil
	}
	t := strings.TrimSpace(sel.Text())
	return &t
}

func metaDescription(doc *goquery.Document) *string {
	sel := doc.Find(`meta[name="description"]`).First()
	if sel.Length() == 0 {
		return nil
	}
	content, _ := sel.Attr("content")
	d := strings.TrimSpace(content)
	return &d
}

func headings(doc *goquery.Document, tag string) []string {
	var out []string
	doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func images(doc *goquery.Document) []model.Image {
	var out []model.Image
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			return
		}
		alt, _ := s.Attr("alt")
		out = append(out, model.Image{
			Src:    src,
			Alt:    alt,
			HasAlt: strings.TrimSpace(alt) != "",
		})
	})
	return out
}

func links(doc *goquery.Document, base *url.URL, startHost string) []string {
	var out []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" ||
			strings.HasPrefix(href, "javascript:") ||
			strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") ||
			strings.HasPrefix(href, "tel:") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		if !util.SameHost(abs, startHost) {
			return
		}
		out = append(out, abs.String())
	})
	return out
}
