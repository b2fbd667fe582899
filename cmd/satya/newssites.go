// cmd/satya/newssites.go
package main

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Reputable news outlets and the aggregator tier.

func newBBCProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderBBC,
		name:        "BBC News",
		reliability: ReliabilityBBC,
		searchURL:   "https://www.bbc.co.uk/search?q=%s&d=news_gs",
		baseURL:     "https://www.bbc.co.uk",
		selectors:   []string{`[data-testid="default-promo"] a`, ".ssrcss-its5xf-PromoLink", ".media__link"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}

func newReutersProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderReuters,
		name:        "Reuters",
		reliability: ReliabilityReuters,
		searchURL:   "https://www.reuters.com/site-search/?query=%s",
		baseURL:     "https://www.reuters.com",
		selectors:   []string{`[data-testid="Heading"] a`, ".search-result-title a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}

const gnewsRSSURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// googleNewsProvider reads the Google News search feed
type googleNewsProvider struct {
	pc      *providerClient
	feedURL string
	parser  *gofeed.Parser
}

func newGoogleNewsProvider(pc *providerClient) *googleNewsProvider {
	return &googleNewsProvider{
		pc:      pc,
		feedURL: gnewsRSSURL,
		parser:  gofeed.NewParser(),
	}
}

func (p *googleNewsProvider) ID() string       { return ProviderGNews }
func (p *googleNewsProvider) Name() string     { return "Google News" }
func (p *googleNewsProvider) Reliability() int { return ReliabilityGNews }

func (p *googleNewsProvider) Fetch(ctx context.Context, query string) *EvidenceRecord {
	return fetchWithCache(ctx, p.pc.cache, p, query, p.search)
}

func (p *googleNewsProvider) search(ctx context.Context, query string) (*EvidenceRecord, error) {
	body, err := p.pc.get(ctx, fmt.Sprintf(p.feedURL, encodeQuery(query, 10)))
	if err != nil {
		return nil, err
	}

	feed, err := p.parser.ParseString(string(body))
	if err != nil {
		return nil, NewProviderError(ErrProviderParse, "failed to parse news feed", err)
	}
	if len(feed.Items) == 0 {
		return nil, nil
	}

	item := feed.Items[0]
	if item.Title == "" || item.Link == "" {
		return nil, nil
	}

	return &EvidenceRecord{
		Name:        p.Name(),
		URL:         item.Link,
		Snippet:     truncate(item.Title, 200),
		Reliability: p.Reliability(),
	}, nil
}
