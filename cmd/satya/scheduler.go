// cmd/satya/scheduler.go
package main

import (
	"time"

	"github.com/robfig/cron/v3"
)

// StartScheduler runs the background maintenance jobs: a daily purge
// of checks past the retention window and an hourly counter snapshot.
// The evidence cache is deliberately not swept; its entries expire
// lazily at lookup time.
func StartScheduler(store *CheckStore, retentionDays int) *cron.Cron {
	c := cron.New()

	retention := time.Duration(retentionDays) * 24 * time.Hour
	c.AddFunc("@daily", func() {
		purged, err := store.PurgeOlderThan(retention)
		if err != nil {
			Logger().Error("history purge failed: %v", err)
			return
		}
		if purged > 0 {
			Logger().Info("purged %d checks older than %d days", purged, retentionDays)
		}
	})

	c.AddFunc("@hourly", func() {
		Logger().Info("counters: %v", CounterSnapshot())
	})

	c.Start()
	return c
}
