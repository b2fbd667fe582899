// cmd/satya/analysis.go
package main

import (
	"strings"
)

// Debunk vocabulary scanned in fact-check snippets
var fakeLexicon = []string{
	"false", "fake", "misleading", "debunked", "hoax",
	"unverified", "unsubstantiated", "disproven", "incorrect",
}

// Confirmation vocabulary scanned in news snippets
var trueLexicon = []string{
	"confirmed", "verified", "accurate", "true",
	"factual", "reported by", "according to", "official",
}

// factCheckProviderIDs are the providers whose snippets count as
// debunk signals
var factCheckProviderIDs = map[string]bool{
	ProviderAltNews:    true,
	ProviderBoomLive:   true,
	ProviderSnopes:     true,
	ProviderFactCheck:  true,
	ProviderPolitiFact: true,
}

// newsProviderIDs are the providers whose snippets count as
// confirmation signals
var newsProviderIDs = map[string]bool{
	ProviderWiki:    true,
	ProviderBBC:     true,
	ProviderReuters: true,
	ProviderGNews:   true,
}

// topTierFactCheckers are the checkers trusted enough that a single
// debunk is decisive
var topTierFactCheckers = map[string]bool{
	ProviderSnopes:     true,
	ProviderFactCheck:  true,
	ProviderPolitiFact: true,
}

// EvidenceAnalysis holds the trust signals derived from one bundle
type EvidenceAnalysis struct {
	Found          []*EvidenceRecord
	AvgReliability float64
	Count          int
	FakeSignals    []*EvidenceRecord
	FakeIDs        []string
	TrueSignals    []*EvidenceRecord
}

// AnalyzeEvidence computes trust signals over a bundle. Pure and
// deterministic: same bundle and order, same analysis. Records appear
// in provider registration order.
func AnalyzeEvidence(bundle EvidenceBundle, order []string) *EvidenceAnalysis {
	analysis := &EvidenceAnalysis{}
	totalReliability := 0

	for _, id := range order {
		rec := bundle[id]
		if rec == nil {
			continue
		}

		analysis.Found = append(analysis.Found, rec)
		totalReliability += rec.Reliability

		snippet := strings.ToLower(rec.Snippet)

		if factCheckProviderIDs[id] && containsAny(snippet, fakeLexicon) {
			analysis.FakeSignals = append(analysis.FakeSignals, rec)
			analysis.FakeIDs = append(analysis.FakeIDs, id)
		}

		if newsProviderIDs[id] {
			// A longer snippet from a reputable outlet is a weak
			// positive signal even without lexicon hits
			if len(rec.Snippet) > 50 || containsAny(snippet, trueLexicon) {
				analysis.TrueSignals = append(analysis.TrueSignals, rec)
			}
		}
	}

	analysis.Count = len(analysis.Found)
	if analysis.Count > 0 {
		analysis.AvgReliability = float64(totalReliability) / float64(analysis.Count)
	}
	return analysis
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}
