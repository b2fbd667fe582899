// cmd/satya/analysis_test.go
package main

import (
	"testing"
)

var testOrder = []string{
	ProviderWiki, ProviderBBC, ProviderReuters, ProviderGNews,
	ProviderAltNews, ProviderBoomLive, ProviderSnopes,
	ProviderFactCheck, ProviderPolitiFact,
}

func TestAnalyzeEmptyBundle(t *testing.T) {
	analysis := AnalyzeEvidence(EvidenceBundle{}, testOrder)

	if analysis.Count != 0 {
		t.Errorf("expected count 0, got %d", analysis.Count)
	}
	if analysis.AvgReliability != 0 {
		t.Errorf("expected avg reliability 0, got %f", analysis.AvgReliability)
	}
	if len(analysis.FakeSignals) != 0 || len(analysis.TrueSignals) != 0 {
		t.Error("expected no signals from an empty bundle")
	}
}

func TestAnalyzeAbsentProvidersTolerated(t *testing.T) {
	bundle := EvidenceBundle{
		ProviderWiki:   record("Wikipedia", "short", ReliabilityWiki),
		ProviderSnopes: nil,
	}

	analysis := AnalyzeEvidence(bundle, testOrder)
	if analysis.Count != 1 {
		t.Fatalf("expected count 1, got %d", analysis.Count)
	}
	if analysis.AvgReliability != float64(ReliabilityWiki) {
		t.Errorf("expected avg %d, got %f", ReliabilityWiki, analysis.AvgReliability)
	}
}

func TestFakeSignalsOnlyFromFactCheckers(t *testing.T) {
	// The same debunk word in a news snippet must not count as a
	// fake signal
	bundle := EvidenceBundle{
		ProviderBBC:    record("BBC News", "it", ReliabilityBBC),
		ProviderSnopes: record("Snopes", "Claim debunked by researchers", ReliabilitySnopes),
	}

	analysis := AnalyzeEvidence(bundle, testOrder)
	if len(analysis.FakeSignals) != 1 {
		t.Fatalf("expected 1 fake signal, got %d", len(analysis.FakeSignals))
	}
	if analysis.FakeIDs[0] != ProviderSnopes {
		t.Errorf("expected snopes signal, got %s", analysis.FakeIDs[0])
	}

	bundle = EvidenceBundle{
		ProviderBBC: record("BBC News", "it", ReliabilityBBC),
	}
	// "debunked" from a news outlet: not a fake signal
	bundle[ProviderBBC].Snippet = "debunked"
	analysis = AnalyzeEvidence(bundle, testOrder)
	if len(analysis.FakeSignals) != 0 {
		t.Errorf("news snippets must not produce fake signals, got %d", len(analysis.FakeSignals))
	}
}

func TestFakeLexiconMatchesCaseInsensitive(t *testing.T) {
	for _, word := range []string{"FALSE", "Misleading", "HOAX", "Unsubstantiated"} {
		bundle := EvidenceBundle{
			ProviderPolitiFact: record("PolitiFact", "Rated "+word+" by reviewers", ReliabilityPolitiFact),
		}
		analysis := AnalyzeEvidence(bundle, testOrder)
		if len(analysis.FakeSignals) != 1 {
			t.Errorf("word %q: expected a fake signal", word)
		}
	}
}

func TestTrueSignals(t *testing.T) {
	// Lexicon hit with a short snippet
	bundle := EvidenceBundle{
		ProviderReuters: record("Reuters", "official statement", ReliabilityReuters),
	}
	analysis := AnalyzeEvidence(bundle, testOrder)
	if len(analysis.TrueSignals) != 1 {
		t.Fatalf("expected lexicon true signal, got %d", len(analysis.TrueSignals))
	}

	// Long snippet counts as a weak positive even without the lexicon
	bundle = EvidenceBundle{
		ProviderWiki: record("Wikipedia", "A lengthy encyclopedia extract describing the event in detail", ReliabilityWiki),
	}
	analysis = AnalyzeEvidence(bundle, testOrder)
	if len(analysis.TrueSignals) != 1 {
		t.Fatalf("expected weak positive signal from long snippet, got %d", len(analysis.TrueSignals))
	}

	// Short snippet with no lexicon hit is not a signal
	bundle = EvidenceBundle{
		ProviderWiki: record("Wikipedia", "short note", ReliabilityWiki),
	}
	analysis = AnalyzeEvidence(bundle, testOrder)
	if len(analysis.TrueSignals) != 0 {
		t.Errorf("expected no true signal, got %d", len(analysis.TrueSignals))
	}
}

func TestFoundSourcesRegistrationOrder(t *testing.T) {
	bundle := EvidenceBundle{
		ProviderPolitiFact: record("PolitiFact", "a", ReliabilityPolitiFact),
		ProviderWiki:       record("Wikipedia", "b", ReliabilityWiki),
		ProviderReuters:    record("Reuters", "c", ReliabilityReuters),
	}

	analysis := AnalyzeEvidence(bundle, testOrder)
	wantOrder := []string{"Wikipedia", "Reuters", "PolitiFact"}
	for i, want := range wantOrder {
		if analysis.Found[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, analysis.Found[i].Name, want)
		}
	}
}

func TestAvgReliability(t *testing.T) {
	bundle := EvidenceBundle{
		ProviderWiki: record("Wikipedia", "a", 80),
		ProviderBBC:  record("BBC News", "b", 92),
	}

	analysis := AnalyzeEvidence(bundle, testOrder)
	if analysis.AvgReliability != 86 {
		t.Errorf("expected avg 86, got %f", analysis.AvgReliability)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	bundle := EvidenceBundle{
		ProviderSnopes: record("Snopes", "this is false", ReliabilitySnopes),
		ProviderBBC:    record("BBC News", "a long confirmation snippet that exceeds fifty characters for sure", ReliabilityBBC),
	}

	first := AnalyzeEvidence(bundle, testOrder)
	second := AnalyzeEvidence(bundle, testOrder)

	if first.Count != second.Count ||
		first.AvgReliability != second.AvgReliability ||
		len(first.FakeSignals) != len(second.FakeSignals) ||
		len(first.TrueSignals) != len(second.TrueSignals) {
		t.Error("analysis must be deterministic for the same bundle")
	}
}
