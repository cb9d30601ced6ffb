package frontier

import "testing"

func TestOfferDeduplicates(t *testing.T) {
	f := New(10, nil)
	f.Offer("https://example.com/a")
	f.Offer("https://example.com/a")
	if f.Len() != 1 {
		t.Fatalf("expected 1 queued URL, got %d", f.Len())
	}
}

func TestOfferSkipsVisited(t *testing.T) {
	f := New(10, nil)
	f.MarkVisited("https://example.com/a")
	f.Offer("https://example.com/a")
	if f.Len() != 0 {
		t.Fatalf("visited URL must not re-enter the frontier")
	}
}

func TestOfferAppliesFilter(t *testing.T) {
	f := New(10, func(u string) bool { return u != "https://example.com/skip" })
	f.Offer("https://example.com/skip")
	f.Offer("https://example.com/keep")
	if f.Len() != 1 {
		t.Fatalf("expected filter to reject one URL, queue len %d", f.Len())
	}
}

func TestPopInsertionOrder(t *testing.T) {
	f := New(10, nil)
	f.Seed("https://example.com/")
	f.Offer("https://example.com/a")
	f.Offer("https://example.com/b")

	want := []string{"https://example.com/", "https://example.com/a", "https://example.com/b"}
	for i, w := range want {
		got, ok := f.Pop()
		if !ok || got != w {
			t.Fatalf("pop %d: got %q ok=%t, want %q", i, got, ok, w)
		}
	}
	if _, ok := f.Pop(); ok {
		t.Fatalf("expected empty frontier")
	}
}

func TestShouldContinueBudget(t *testing.T) {
	f := New(2, nil)
	f.Seed("https://example.com/a")
	f.Offer("https://example.com/b")
	f.Offer("https://example.com/c")

	visited := 0
	for f.ShouldContinue() {
		u, ok := f.Pop()
		if !ok {
			break
		}
		f.MarkVisited(u)
		visited++
	}
	if visited != 2 {
		t.Fatalf("expected budget of 2 visits, got %d", visited)
	}
	if f.VisitedCount() != 2 {
		t.Fatalf("expected 2 visited, got %d", f.VisitedCount())
	}
}

func TestVisitedFrontierDisjoint(t *testing.T) {
	f := New(10, nil)
	f.Seed("https://example.com/a")
	u, _ := f.Pop()
	f.MarkVisited(u)
	f.Offer(u)
	if f.Len() != 0 {
		t.Fatalf("URL must not be in frontier and visited at once")
	}
}
