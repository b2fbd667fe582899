// cmd/satya/checker.go
package main

import (
	"context"
	"strings"
)

// Checker runs the full claim verification pipeline: collect evidence,
// analyze it, resolve a verdict
type Checker struct {
	collector *Collector
	resolver  *Resolver
}

// NewChecker creates a checker over a collector and resolver
func NewChecker(collector *Collector, resolver *Resolver) *Checker {
	return &Checker{collector: collector, resolver: resolver}
}

// GetVerdict verifies one claim. It never fails: blank input and total
// evidence failure both degrade to the default unknown verdict. Blank
// input short-circuits before any provider is consulted.
func (c *Checker) GetVerdict(ctx context.Context, claim string) *Verdict {
	if strings.TrimSpace(claim) == "" {
		return fallbackVerdict("No text provided.")
	}

	query := normalizeQuery(claim)
	bundle := c.collector.Collect(ctx, query)
	analysis := AnalyzeEvidence(bundle, c.collector.ProviderIDs())

	return c.resolver.Resolve(ctx, claim, analysis)
}
