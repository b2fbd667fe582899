// cmd/satya/regional.go
package main

// Regional fact-check sites covering Indian-language misinformation.

func newAltNewsProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderAltNews,
		name:        "AltNews",
		reliability: ReliabilityAltNews,
		searchURL:   "https://www.altnews.in/?s=%s",
		baseURL:     "https://www.altnews.in",
		selectors:   []string{"h4.entry-title a", ".entry-title a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}

func newBoomLiveProvider(pc *providerClient) *scrapeProvider {
	return &scrapeProvider{
		pc:          pc,
		id:          ProviderBoomLive,
		name:        "BOOM Live",
		reliability: ReliabilityBoomLive,
		searchURL:   "https://www.boomlive.in/search?search=%s",
		baseURL:     "https://www.boomlive.in",
		selectors:   []string{".search-listing a", ".story-card a"},
		queryTokens: 10,
		maxSnippet:  200,
	}
}
