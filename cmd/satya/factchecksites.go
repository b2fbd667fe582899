// cmd/satya/factchecksites.go
package main

// International fact-check organizations. These are the three top-tier
// checkers: a lone debunk from any of them is enough to rate a claim
// fake (resolver rule for single top-tier debunks).

func newSnopesProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderSnopes,
		name:        "Snopes",
		reliability: ReliabilitySnopes,
		searchURL:   "https://www.snopes.com/?s=%s",
		baseURL:     "https://www.snopes.com",
		selectors:   []string{".search-results .card a", ".article a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}

func newFactCheckProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderFactCheck,
		name:        "FactCheck.org",
		reliability: ReliabilityFactCheck,
		searchURL:   "https://www.factcheck.org/?s=%s",
		baseURL:     "https://www.factcheck.org",
		selectors:   []string{".entry-title a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}

func newPolitiFactProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderPolitiFact,
		name:        "PolitiFact",
		reliability: ReliabilityPolitiFact,
		searchURL:   "https://www.politifact.com/search/?q=%s",
		baseURL:     "https://www.politifact.com",
		selectors:   []string{".o-title a", ".c-quote__title a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}
