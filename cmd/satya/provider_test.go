// cmd/satya/provider_test.go
package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const searchFixture = `<!DOCTYPE html>
<html><body>
<div class="search-results">
  <div class="card"><a href="/fact-check/viral-photo/">Viral photo is False</a></div>
  <div class="card"><a href="/fact-check/second-hit/">Second result</a></div>
</div>
</body></html>`

func fixtureServer(t *testing.T, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testScrapeProvider(pc *providerClient, searchURL string) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderSnopes,
		name:        "Snopes",
		reliability: ReliabilitySnopes,
		searchURL:   searchURL,
		baseURL:     "https://www.snopes.com",
		selectors:   []string{".search-results .card a", ".article a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}

func TestScrapeProviderFirstResult(t *testing.T) {
	srv := fixtureServer(t, searchFixture, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")
	rec := p.Fetch(context.Background(), "viral photo claim")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Snippet != "Viral photo is False" {
		t.Errorf("expected first result title, got %q", rec.Snippet)
	}
	if rec.URL != "https://www.snopes.com/fact-check/viral-photo/" {
		t.Errorf("expected relative URL resolved, got %q", rec.URL)
	}
	if rec.Reliability != ReliabilitySnopes {
		t.Errorf("expected static weight %d, got %d", ReliabilitySnopes, rec.Reliability)
	}
}

func TestScrapeProviderFallbackSelector(t *testing.T) {
	body := `<html><body><div class="article"><a href="https://www.snopes.com/x">Direct hit</a></div></body></html>`
	srv := fixtureServer(t, body, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")
	rec := p.Fetch(context.Background(), "claim")
	if rec == nil {
		t.Fatal("expected a record via fallback selector")
	}
	if rec.URL != "https://www.snopes.com/x" {
		t.Errorf("absolute URL must pass through, got %q", rec.URL)
	}
}

func TestScrapeProviderNoResults(t *testing.T) {
	srv := fixtureServer(t, `<html><body><p>Nothing here</p></body></html>`, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")
	if rec := p.Fetch(context.Background(), "claim"); rec != nil {
		t.Errorf("expected absent on empty result set, got %+v", rec)
	}
}

func TestScrapeProviderNon200IsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tea time", http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)
	pc := newProviderClient(testCache(t), testConfig())

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")
	if rec := p.Fetch(context.Background(), "claim"); rec != nil {
		t.Errorf("expected absent on non-200, got %+v", rec)
	}
}

func TestProviderIdempotentWithinTTL(t *testing.T) {
	var hits int32
	srv := fixtureServer(t, searchFixture, &hits)
	pc := newProviderClient(testCache(t), testConfig())

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")

	first := p.Fetch(context.Background(), "same claim")
	second := p.Fetch(context.Background(), "same claim")

	if first == nil || second == nil {
		t.Fatal("expected records from both calls")
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected exactly one outbound fetch, saw %d", got)
	}
	if *first != *second {
		t.Errorf("cache hit must equal the fetched record: %+v vs %+v", first, second)
	}
}

func TestProviderFailureNotCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	pc := newProviderClient(testCache(t), testConfig())

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")
	p.Fetch(context.Background(), "claim")
	p.Fetch(context.Background(), "claim")

	// Absence is re-probed on the next request, never cached
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("expected 2 outbound fetches for repeated failures, saw %d", got)
	}
}

func TestUserAgentHeaderSent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(searchFixture))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.UserAgentString = "satya-test/1.0"
	pc := newProviderClient(testCache(t), cfg)

	p := testScrapeProvider(pc, srv.URL+"/?s=%s")
	p.Fetch(context.Background(), "claim")

	if ua != "satya-test/1.0" {
		t.Errorf("expected configured user agent, got %q", ua)
	}
}

const wikiFixture = `{
  "query": {
    "pages": {
      "12345": {
        "pageid": 12345,
        "extract": "The Eiffel Tower is a wrought-iron lattice tower on the Champ de Mars in Paris."
      }
    }
  }
}`

func TestWikipediaProvider(t *testing.T) {
	srv := fixtureServer(t, wikiFixture, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := newWikipediaProvider(pc)
	p.apiURL = srv.URL + "/w/api.php?titles=%s"

	rec := p.Fetch(context.Background(), "Eiffel Tower location")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Name != "Wikipedia" || rec.Reliability != ReliabilityWiki {
		t.Errorf("unexpected record identity: %+v", rec)
	}
	if rec.URL != "https://en.wikipedia.org/?curid=12345" {
		t.Errorf("unexpected page URL: %q", rec.URL)
	}
}

func TestWikipediaMissingPage(t *testing.T) {
	body := `{"query": {"pages": {"-1": {"missing": ""}}}}`
	srv := fixtureServer(t, body, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := newWikipediaProvider(pc)
	p.apiURL = srv.URL + "/w/api.php?titles=%s"

	if rec := p.Fetch(context.Background(), "no such topic"); rec != nil {
		t.Errorf("expected absent for a missing page, got %+v", rec)
	}
}

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Search results</title>
    <item>
      <title>Government confirms new policy - Example Times</title>
      <link>https://news.example.com/policy</link>
    </item>
    <item>
      <title>Second item</title>
      <link>https://news.example.com/second</link>
    </item>
  </channel>
</rss>`

func TestGoogleNewsProvider(t *testing.T) {
	srv := fixtureServer(t, rssFixture, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := newGoogleNewsProvider(pc)
	p.feedURL = srv.URL + "/rss/search?q=%s"

	rec := p.Fetch(context.Background(), "new policy")
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Snippet != "Government confirms new policy - Example Times" {
		t.Errorf("expected first feed item, got %q", rec.Snippet)
	}
	if rec.URL != "https://news.example.com/policy" {
		t.Errorf("unexpected link: %q", rec.URL)
	}
}

func TestGoogleNewsEmptyFeed(t *testing.T) {
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>empty</title></channel></rss>`
	srv := fixtureServer(t, body, nil)
	pc := newProviderClient(testCache(t), testConfig())

	p := newGoogleNewsProvider(pc)
	p.feedURL = srv.URL + "/rss/search?q=%s"

	if rec := p.Fetch(context.Background(), "nothing"); rec != nil {
		t.Errorf("expected absent for empty feed, got %+v", rec)
	}
}
