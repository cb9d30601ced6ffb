package frontier

// Filter decides whether a discovered URL is admissible for crawling.
type Filter func(url string) bool

// Frontier tracks discovered-but-unvisited URLs and already-visited URLs for
// one audit. Pop order is insertion order, which keeps runs deterministic.
// Not safe for concurrent use; each audit owns its own Frontier.
type Frontier struct {
	queue   []string
	queued  map[string]struct{}
	visited map[string]struct{}
	budget  int
	accept  Filter
}

// New creates a Frontier with the given page budget and admission filter.
// A nil filter admits everything.
func New(budget int, accept Filter) *Frontier {
	if accept == nil {
		accept = func(string) bool { return true }
	}
	return &Frontier{
		queued:  make(map[string]struct{}),
		visited: make(map[string]struct{}),
		budget:  budget,
		accept:  accept,
	}
}

// Seed inserts the start URL, bypassing the admission filter.
func (f *Frontier) Seed(url string) {
	if _, ok := f.queued[url]; ok {
		return
	}
	f.queue = append(f.queue, url)
	f.queued[url] = struct{}{}
}

// Offer adds url to the frontier iff it has not been visited, is not already
// queued, and passes the admission filter.
func (f *Frontier) Offer(url string) {
	if _, ok := f.visited[url]; ok {
		return
	}
	if _, ok := f.queued[url]; ok {
		return
	}
	if !f.accept(url) {
		return
	}
	f.queue = append(f.queue, url)
	f.queued[url] = struct{}{}
}

// Pop removes and returns the next URL in insertion order.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.queued, url)
	return url, true
}

// MarkVisited moves url into the visited set.
func (f *Frontier) MarkVisited(url string) {
	f.visited[url] = struct{}{}
}

// Visited reports whether url has already been fetched.
func (f *Frontier) Visited(url string) bool {
	_, ok := f.visited[url]
	return ok
}

// ShouldContinue reports whether the crawl loop has work left: a non-empty
// frontier and remaining page budget.
func (f *Frontier) ShouldContinue() bool {
	return len(f.queue) > 0 && len(f.visited) < f.budget
}

// VisitedCount returns the number of fetched URLs, successful or not.
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}

// Len returns the number of URLs awaiting a crawl attempt.
func (f *Frontier) Len() int {
	return len(f.queue)
}
