// cmd/satya/provider.go
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// maxResponseBytes bounds how much of a provider response body is read
const maxResponseBytes = 2 << 20

// Provider is the interface all evidence providers implement. Fetch
// never fails past its boundary: any error maps to a nil record.
type Provider interface {
	ID() string
	Name() string
	Reliability() int
	Fetch(ctx context.Context, query string) *EvidenceRecord
}

// providerClient is the outbound HTTP client shared by all adapters
type providerClient struct {
	client    *http.Client
	cache     *CacheStore
	limiter   *rate.Limiter
	userAgent string
}

// newProviderClient creates the shared provider transport
func newProviderClient(cache *CacheStore, cfg *Config) *providerClient {
	return &providerClient{
		client:    &http.Client{Timeout: cfg.FetchTimeout()},
		cache:     cache,
		limiter:   rate.NewLimiter(rate.Limit(cfg.OutboundRatePerSec), int(cfg.OutboundRatePerSec)+1),
		userAgent: cfg.UserAgentString,
	}
}

// get issues one rate-limited GET and returns the response body
func (pc *providerClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, NewProviderError(ErrProviderFetch, "rate limiter wait aborted", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, NewProviderError(ErrProviderFetch, "failed to build request", err)
	}
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.client.Do(req)
	if err != nil {
		return nil, NewProviderError(ErrProviderFetch, fmt.Sprintf("request to %s failed", rawURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(ErrProviderStatus, fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, rawURL), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, NewProviderError(ErrProviderFetch, "failed to read response body", err)
	}
	return body, nil
}

// document fetches a URL and parses it as an HTML document
func (pc *providerClient) document(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := pc.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, NewProviderError(ErrProviderParse, "failed to parse HTML", err)
	}
	return doc, nil
}

// fetchWithCache runs the shared adapter pipeline: cache read-through,
// provider search, cache write-through. Every failure becomes absent.
func fetchWithCache(ctx context.Context, cache *CacheStore, p Provider, query string,
	search func(context.Context, string) (*EvidenceRecord, error)) *EvidenceRecord {

	key := cacheKey(p.ID(), query)
	if rec := cache.Get(key); rec != nil {
		IncrementCounter(MetricCacheHits)
		return rec
	}
	IncrementCounter(MetricCacheMisses)

	rec, err := search(ctx, query)
	if err != nil {
		IncrementCounter(MetricProviderErrors)
		Logger().Debug("provider %s: %v", p.ID(), err)
		return nil
	}
	if rec == nil {
		return nil
	}

	cache.Set(key, rec)
	return rec
}

// scrapeProvider covers the fact-check and news sites that expose a
// plain HTML search page. Each instance owns its selection rules; site
// structure changes are expected and degrade to absent, not errors.
type scrapeProvider struct {
	pc          *providerClient
	id          string
	name        string
	reliability int
	searchURL   string // fmt pattern with one %s for the encoded query
	baseURL     string // prefix for relative result links
	selectors   []string
	queryTokens int
	maxSnippet  int
}

func (p *scrapeProvider) ID() string       { return p.id }
func (p *scrapeProvider) Name() string     { return p.name }
func (p *scrapeProvider) Reliability() int { return p.reliability }

func (p *scrapeProvider) Fetch(ctx context.Context, query string) *EvidenceRecord {
	return fetchWithCache(ctx, p.pc.cache, p, query, p.search)
}

func (p *scrapeProvider) search(ctx context.Context, query string) (*EvidenceRecord, error) {
	searchURL := fmt.Sprintf(p.searchURL, encodeQuery(query, p.queryTokens))

	doc, err := p.pc.document(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	// Take the first result any of the selection rules matches
	var first *goquery.Selection
	for _, selector := range p.selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			first = sel
			break
		}
	}
	if first == nil {
		return nil, nil
	}

	href := first.AttrOr("href", "")
	if href == "" {
		return nil, nil
	}
	if !strings.HasPrefix(href, "http") {
		href = p.baseURL + href
	}

	title := strings.TrimSpace(first.Text())
	if title == "" {
		return nil, nil
	}

	return &EvidenceRecord{
		Name:        p.name,
		URL:         href,
		Snippet:     truncate(title, p.maxSnippet),
		Reliability: p.reliability,
	}, nil
}

// newProviders builds the full provider panel in registration order
func newProviders(pc *providerClient) []Provider {
	return []Provider{
		newWikipediaProvider(pc),
		newBBCProvider(pc),
		newReutersProvider(pc),
		newGoogleNewsProvider(pc),
		newAltNewsProvider(pc),
		newBoomLiveProvider(pc),
		newSnopesProvider(pc),
		newFactCheckProvider(pc),
		newPolitiFactProvider(pc),
	}
}

// providerIDs returns the panel's identifiers in registration order
func providerIDs(providers []Provider) []string {
	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = p.ID()
	}
	return ids
}
