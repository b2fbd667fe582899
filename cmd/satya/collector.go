// cmd/satya/collector.go
package main

import (
	"context"
	"sync"
)

// Collector fans one query out to every registered provider and
// assembles the evidence bundle. Providers are independent; any subset
// may come back absent.
type Collector struct {
	providers []Provider
}

// NewCollector creates a collector over a provider panel
func NewCollector(providers []Provider) *Collector {
	return &Collector{providers: providers}
}

// ProviderIDs returns the panel's identifiers in registration order
func (c *Collector) ProviderIDs() []string {
	return providerIDs(c.providers)
}

// Collect queries all providers concurrently and waits for every one
// to finish or time out. A canceled context makes the remaining
// fetches come back absent; it never fails the bundle.
func (c *Collector) Collect(ctx context.Context, query string) EvidenceBundle {
	type fetchResult struct {
		id  string
		rec *EvidenceRecord
	}

	results := make(chan fetchResult, len(c.providers))
	var wg sync.WaitGroup

	for _, p := range c.providers {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			results <- fetchResult{id: p.ID(), rec: p.Fetch(ctx, query)}
		}(p)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	bundle := make(EvidenceBundle, len(c.providers))
	for result := range results {
		bundle[result.id] = result.rec
	}
	return bundle
}
