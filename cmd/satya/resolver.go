// cmd/satya/resolver.go
package main

import (
	"context"
	"fmt"
	"strings"
)

// LLMBackend adjudicates a claim against collected evidence
type LLMBackend interface {
	Adjudicate(ctx context.Context, claim string, evidence []*EvidenceRecord) (*Verdict, error)
}

// ClassifierBackend ranks a text against a fixed label set
type ClassifierBackend interface {
	Classify(ctx context.Context, text string, labels []string) ([]LabelScore, error)
}

// LabelScore is one ranked classification label
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// classifierLabels is the fixed label set for the classifier tier
var classifierLabels = []string{StatusTrue, StatusFake, StatusUnknown}

// Resolver walks the tiered verdict ladder over analyzed evidence.
// Backends are injected at construction; a nil backend disables its
// tier. The ladder is strictly ordered: the first rule that fires
// returns and later rules are never consulted.
type Resolver struct {
	llm        LLMBackend
	classifier ClassifierBackend
}

// NewResolver creates a resolver with optional model backends
func NewResolver(llm LLMBackend, classifier ClassifierBackend) *Resolver {
	return &Resolver{llm: llm, classifier: classifier}
}

// Resolve produces the final verdict for a claim from its evidence
// analysis. It cannot fail: the worst case is the low-confidence
// default verdict.
func (r *Resolver) Resolve(ctx context.Context, claim string, analysis *EvidenceAnalysis) *Verdict {
	fakeCount := len(analysis.FakeSignals)
	trueCount := len(analysis.TrueSignals)

	// 1. Two or more independent debunks
	if fakeCount >= 2 {
		confidence := min(95+fakeCount, 99)
		return &Verdict{
			Status:     StatusFake,
			Confidence: confidence,
			Reasoning:  "Debunked by " + recordNames(analysis.FakeSignals),
			Sources:    topRecords(analysis.FakeSignals, 5),
			RiskScore:  confidence,
		}
	}

	// 2. A single debunk from a top-tier fact-checker is decisive
	if fakeCount == 1 && topTierFactCheckers[analysis.FakeIDs[0]] {
		return &Verdict{
			Status:     StatusFake,
			Confidence: 96,
			Reasoning:  fmt.Sprintf("Debunked by %s", analysis.FakeSignals[0].Name),
			Sources:    topRecords(analysis.FakeSignals, 1),
			RiskScore:  96,
		}
	}

	// 3. Three or more reputable confirmations
	if trueCount >= 3 {
		confidence := min(92+2*(trueCount-3), 99)
		return &Verdict{
			Status:     StatusTrue,
			Confidence: confidence,
			Reasoning:  "Confirmed by " + recordNames(analysis.TrueSignals),
			Sources:    topRecords(analysis.TrueSignals, 5),
			RiskScore:  100 - confidence,
		}
	}

	// 4. Model adjudication over the collected evidence. Any backend
	// failure falls through to the heuristic tiers below.
	if r.llm != nil && analysis.Count > 0 {
		IncrementCounter(MetricBackendCalls)
		verdict, err := r.llm.Adjudicate(ctx, claim, topRecords(analysis.Found, 5))
		if err != nil {
			IncrementCounter(MetricBackendErrors)
			Logger().Warning("LLM adjudication failed: %v", err)
		} else if verdict != nil {
			if analysis.AvgReliability > 85 && analysis.Count >= 2 {
				verdict.Confidence = min(verdict.Confidence+5, 99)
			}
			if len(verdict.Sources) == 0 {
				verdict.Sources = topRecords(analysis.Found, 5)
			}
			return verdict
		}
	}

	// 5. Ensemble scoring from two or more found sources
	if analysis.Count >= 2 {
		return r.resolveEnsemble(analysis, fakeCount, trueCount)
	}

	// 6. A single highly reliable source
	if analysis.Count == 1 && analysis.Found[0].Reliability >= 95 {
		return resolveSingleSource(analysis.Found[0])
	}

	// 7. Classifier fallback over the claim text itself
	if r.classifier != nil {
		if verdict := r.resolveWithClassifier(ctx, claim, analysis); verdict != nil {
			return verdict
		}
	}

	// 8. Sources found but nothing definitive
	if analysis.Count > 0 {
		return &Verdict{
			Status:     StatusUnknown,
			Confidence: min(60+5*analysis.Count, 75),
			Reasoning:  "Sources found but no definitive signal.",
			Sources:    topRecords(analysis.Found, 3),
			RiskScore:  50,
		}
	}

	// 9. Nothing at all
	return fallbackVerdict("No evidence found.")
}

// resolveEnsemble scores a verdict from source count and average
// reliability when no single rule was decisive
func (r *Resolver) resolveEnsemble(analysis *EvidenceAnalysis, fakeCount, trueCount int) *Verdict {
	var confidence int
	switch {
	case analysis.AvgReliability >= 90:
		confidence = min(85+3*(analysis.Count-2), 95)
	case analysis.AvgReliability >= 80:
		confidence = min(75+4*(analysis.Count-2), 90)
	default:
		confidence = min(65+3*(analysis.Count-2), 85)
	}

	if fakeCount > 0 {
		return &Verdict{
			Status:     StatusFake,
			Confidence: confidence,
			Reasoning:  "Debunked by " + recordNames(analysis.FakeSignals),
			Sources:    topRecords(analysis.FakeSignals, 5),
			RiskScore:  min(85+3*fakeCount, 95),
		}
	}

	if trueCount >= 2 {
		return &Verdict{
			Status:     StatusTrue,
			Confidence: confidence,
			Reasoning:  "Corroborated by " + recordNames(analysis.TrueSignals),
			Sources:    topRecords(analysis.TrueSignals, 5),
			RiskScore:  100 - confidence,
		}
	}

	return &Verdict{
		Status:     StatusUnknown,
		Confidence: confidence,
		Reasoning:  "Sources found but signals are mixed.",
		Sources:    topRecords(analysis.Found, 5),
		RiskScore:  50,
	}
}

// resolveSingleSource rates a claim from one high-reliability record
func resolveSingleSource(rec *EvidenceRecord) *Verdict {
	snippet := strings.ToLower(rec.Snippet)
	if strings.Contains(snippet, "false") || strings.Contains(snippet, "fake") {
		return &Verdict{
			Status:     StatusFake,
			Confidence: 92,
			Reasoning:  fmt.Sprintf("Flagged by %s", rec.Name),
			Sources:    []*EvidenceRecord{rec},
			RiskScore:  92,
		}
	}
	return &Verdict{
		Status:     StatusTrue,
		Confidence: 88,
		Reasoning:  fmt.Sprintf("Reported by %s", rec.Name),
		Sources:    []*EvidenceRecord{rec},
		RiskScore:  12,
	}
}

// resolveWithClassifier runs the 3-way zero-shot fallback; a failed
// call yields nil so the ladder keeps going
func (r *Resolver) resolveWithClassifier(ctx context.Context, claim string, analysis *EvidenceAnalysis) *Verdict {
	IncrementCounter(MetricBackendCalls)
	scores, err := r.classifier.Classify(ctx, truncate(claim, 500), classifierLabels)
	if err != nil || len(scores) == 0 {
		IncrementCounter(MetricBackendErrors)
		Logger().Warning("classifier fallback failed: %v", err)
		return nil
	}

	top := scores[0]
	status := top.Label
	if status != StatusTrue && status != StatusFake && status != StatusUnknown {
		Logger().Warning("classifier returned unexpected label %q", top.Label)
		return nil
	}

	confidence := clampInt(int(top.Score*100), 0, 99)
	if analysis.Count > 0 {
		confidence = min(confidence+10, 85)
	} else if confidence > 75 {
		confidence = 75
	}

	riskScore := confidence
	if status == StatusFake {
		riskScore = 100 - confidence
	}

	return &Verdict{
		Status:     status,
		Confidence: confidence,
		Reasoning:  "Model backup used.",
		Sources:    []*EvidenceRecord{},
		RiskScore:  riskScore,
	}
}

// topRecords returns at most n records
func topRecords(records []*EvidenceRecord, n int) []*EvidenceRecord {
	if len(records) > n {
		records = records[:n]
	}
	out := make([]*EvidenceRecord, len(records))
	copy(out, records)
	return out
}

// recordNames joins record display names for reasoning strings
func recordNames(records []*EvidenceRecord) string {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	return strings.Join(names, ", ")
}
