package output

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/shixin-guo/seo-agent/internal/model"
)

// Record is one crawled page as a JSONL line.
type Record struct {
	URL        string        `json:"url"`
	FinalURL   string        `json:"final_url"`
	StatusCode int           `json:"status_code"`
	LoadTimeMs int64         `json:"load_time_ms"`
	Title      *string       `json:"title"`
	H1Count    int           `json:"h1_count"`
	ImageCount int           `json:"image_count"`
	LinkCount  int           `json:"link_count"`
	IssueCount int           `json:"issue_count"`
	Issues     []model.Issue `json:"issues,omitempty"`
}

// BuildRecord converts a crawled page into a Record.
func BuildRecord(p model.Page) Record {
	return Record{
		URL:        p.URL,
		FinalURL:   p.FinalURL,
		StatusCode: p.StatusCode,
		LoadTimeMs: int64(p.LoadTime * 1000),
		Title:      p.Title,
		H1Count:    len(p.H1),
		ImageCount: len(p.Images),
		LinkCount:  len(p.Links),
		IssueCount: len(p.Issues),
		Issues:     append([]model.Issue(nil), p.Issues...),
	}
}

// WriteJSONL writes one record per line to w.
func WriteJSONL(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// JSONLWriter streams page records one line at a time.
type JSONLWriter struct {
	w  *bufio.Writer
	mu sync.Mutex
}

// NewJSONLWriter wraps an io.Writer with buffering.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record as a JSON line.
func (j *JSONLWriter) Write(rec Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	enc := json.NewEncoder(j.w)
	// For stable lines without extra spaces.
	enc.SetEscapeHTML(false)
	return enc.Encode(rec)
}

// Flush flushes the underlying buffer.
func (j *JSONLWriter) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.w.Flush()
}

// Close flushes the buffer; keep the signature similar to io.Closer.
func (j *JSONLWriter) Close() error {
	return j.Flush()
}
