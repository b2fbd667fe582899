// cmd/satya/checker_test.go
package main

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankClaimShortCircuits(t *testing.T) {
	stub := &stubProvider{id: "wiki", name: "Wikipedia", reliability: ReliabilityWiki}
	checker := NewChecker(NewCollector([]Provider{stub}), NewResolver(nil, nil))

	for _, claim := range []string{"", "   ", "\n\t "} {
		v := checker.GetVerdict(context.Background(), claim)

		assert.Equal(t, StatusUnknown, v.Status)
		assert.Equal(t, 40, v.Confidence)
		assert.Equal(t, 50, v.RiskScore)
		assert.Equal(t, "No text provided.", v.Reasoning)
		assert.Empty(t, v.Sources)
	}
	assert.Zero(t, atomic.LoadInt32(&stub.calls), "blank input must not reach any provider")
}

func TestNoEvidenceNoBackendsIsDefaultVerdict(t *testing.T) {
	providers := make([]Provider, 0, len(testOrder))
	for _, id := range testOrder {
		providers = append(providers, &stubProvider{id: id, name: id})
	}
	checker := NewChecker(NewCollector(providers), NewResolver(nil, nil))

	v := checker.GetVerdict(context.Background(), "the moon is made of cheese")

	assert.Equal(t, StatusUnknown, v.Status)
	assert.Equal(t, 40, v.Confidence)
	assert.Equal(t, 50, v.RiskScore)
	assert.Equal(t, "No evidence found.", v.Reasoning)
	assert.Empty(t, v.Sources)
}

func TestCheckerResolvesFromStubEvidence(t *testing.T) {
	providers := []Provider{
		&stubProvider{id: ProviderSnopes, name: "Snopes", reliability: ReliabilitySnopes,
			rec: record("Snopes", "This claim was rated False.", ReliabilitySnopes)},
	}
	checker := NewChecker(NewCollector(providers), NewResolver(nil, nil))

	v := checker.GetVerdict(context.Background(), "a viral claim")

	assert.Equal(t, StatusFake, v.Status)
	assert.Equal(t, 96, v.Confidence)
	assert.Equal(t, 96, v.RiskScore)
}
