// cmd/satya/types.go
package main

import (
	"time"
)

// Verdict status values
const (
	StatusTrue    = "true"
	StatusFake    = "fake"
	StatusUnknown = "unknown"
)

// Provider identifiers, in registration order
const (
	ProviderWiki       = "wiki"
	ProviderBBC        = "bbc"
	ProviderReuters    = "reuters"
	ProviderGNews      = "gnews"
	ProviderAltNews    = "altnews"
	ProviderBoomLive   = "boomlive"
	ProviderSnopes     = "snopes"
	ProviderFactCheck  = "factcheck"
	ProviderPolitiFact = "politifact"
)

// Static reliability weights per provider
const (
	ReliabilitySnopes     = 98
	ReliabilityFactCheck  = 96
	ReliabilityPolitiFact = 95
	ReliabilityAltNews    = 95
	ReliabilityBoomLive   = 94
	ReliabilityBBC        = 92
	ReliabilityReuters    = 92
	ReliabilityWiki       = 80
	ReliabilityGNews      = 75
	ReliabilityDefault    = 70
)

// EvidenceRecord represents one provider's best match for a query.
// A nil record means the provider found nothing or failed; absence is
// a normal outcome, not an error.
type EvidenceRecord struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Snippet     string `json:"snippet"`
	Reliability int    `json:"reliability"`
}

// EvidenceBundle maps provider identifiers to their results for one query
type EvidenceBundle map[string]*EvidenceRecord

// Verdict represents the final verification result returned to the caller
type Verdict struct {
	Status     string            `json:"status"`
	Confidence int               `json:"confidence"`
	Reasoning  string            `json:"reasoning"`
	Sources    []*EvidenceRecord `json:"sources"`
	RiskScore  int               `json:"risk_score"`
}

// Check represents a stored verification request and its verdict
type Check struct {
	ID          string    `json:"id"`
	InputType   string    `json:"input_type"`
	InputURL    string    `json:"input_url,omitempty"`
	TextSnippet string    `json:"text_snippet"`
	Result      *Verdict  `json:"result"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusCounts holds aggregate verdict totals for the admin surface
type StatusCounts struct {
	Total   int `json:"total"`
	Fake    int `json:"fake"`
	True    int `json:"true"`
	Unknown int `json:"unknown"`
}

// fallbackVerdict returns the guaranteed well-formed default verdict
func fallbackVerdict(reasoning string) *Verdict {
	return &Verdict{
		Status:     StatusUnknown,
		Confidence: 40,
		Reasoning:  reasoning,
		Sources:    []*EvidenceRecord{},
		RiskScore:  50,
	}
}
