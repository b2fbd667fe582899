// cmd/satya/wikipedia.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
)

const wikiAPIURL = "https://en.wikipedia.org/w/api.php?action=query&format=json&prop=extracts&exintro&explaintext&redirects=1&titles=%s"

// wikipediaProvider looks a claim up against the MediaWiki extracts API
type wikipediaProvider struct {
	pc     *providerClient
	apiURL string
}

func newWikipediaProvider(pc *providerClient) *wikipediaProvider {
	return &wikipediaProvider{pc: pc, apiURL: wikiAPIURL}
}

func (p *wikipediaProvider) ID() string       { return ProviderWiki }
func (p *wikipediaProvider) Name() string     { return "Wikipedia" }
func (p *wikipediaProvider) Reliability() int { return ReliabilityWiki }

func (p *wikipediaProvider) Fetch(ctx context.Context, query string) *EvidenceRecord {
	return fetchWithCache(ctx, p.pc.cache, p, query, p.search)
}

func (p *wikipediaProvider) search(ctx context.Context, query string) (*EvidenceRecord, error) {
	body, err := p.pc.get(ctx, fmt.Sprintf(p.apiURL, encodeQuery(query, 20)))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Query struct {
			Pages map[string]struct {
				PageID  int64  `json:"pageid"`
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewProviderError(ErrProviderParse, "failed to decode wiki response", err)
	}

	for pid, page := range payload.Query.Pages {
		// pid "-1" marks a missing page; it carries no extract
		if page.Extract == "" {
			continue
		}
		return &EvidenceRecord{
			Name:        p.Name(),
			URL:         "https://en.wikipedia.org/?curid=" + pid,
			Snippet:     truncate(page.Extract, 1200),
			Reliability: p.Reliability(),
		}, nil
	}
	return nil, nil
}
