// cmd/satya/metrics.go
package main

import (
	"sync"
	"time"
)

// Counter names
const (
	MetricAnalyzeRequests = "analyze_requests"
	MetricCacheHits       = "cache_hits"
	MetricCacheMisses     = "cache_misses"
	MetricProviderErrors  = "provider_errors"
	MetricBackendCalls    = "backend_calls"
	MetricBackendErrors   = "backend_errors"
)

var (
	countersMutex sync.RWMutex
	counters      = make(map[string]int64)
	processStart  = time.Now()
)

// IncrementCounter increments a named application counter
func IncrementCounter(name string) {
	countersMutex.Lock()
	defer countersMutex.Unlock()
	counters[name]++
}

// CounterSnapshot returns a copy of all application counters
func CounterSnapshot() map[string]int64 {
	countersMutex.RLock()
	defer countersMutex.RUnlock()

	snapshot := make(map[string]int64, len(counters))
	for name, value := range counters {
		snapshot[name] = value
	}
	return snapshot
}

// ResetCounters clears all counters (used by tests)
func ResetCounters() {
	countersMutex.Lock()
	defer countersMutex.Unlock()
	counters = make(map[string]int64)
}

// Uptime reports how long the process has been running
func Uptime() time.Duration {
	return time.Since(processStart)
}
