// cmd/satya/cache.go
package main

import (
	"database/sql"
	"encoding/json"
	"time"
)

// CacheTTL is the maximum age before a cached provider result is stale
const CacheTTL = 24 * time.Hour

// CacheStore persists provider results keyed by provider id and query.
// Entries expire lazily: a stale entry is deleted on the lookup that
// observes it, so no caller ever sees a value older than the TTL. The
// store is best-effort; a failed write is logged and swallowed and a
// failed read is treated as a miss.
type CacheStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewCacheStore creates a cache store over an opened database
func NewCacheStore(db *sql.DB, ttl time.Duration) *CacheStore {
	return &CacheStore{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

// cacheKey builds the cache key for a provider and normalized query
func cacheKey(providerID, query string) string {
	return providerID + ":" + query
}

// Get returns the cached record for a key, or nil when the key is
// absent, expired, or unreadable. Expired entries are deleted before
// returning.
func (c *CacheStore) Get(key string) *EvidenceRecord {
	var (
		value string
		ts    int64
	)
	err := c.db.QueryRow(`SELECT value, timestamp FROM cache WHERE key = ?`, key).Scan(&value, &ts)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		Logger().Warning("cache read failed for %q: %v", key, NewCacheError(ErrCacheRead, "lookup failed", err))
		return nil
	}

	if c.now().Sub(time.Unix(ts, 0)) > c.ttl {
		if _, err := c.db.Exec(`DELETE FROM cache WHERE key = ?`, key); err != nil {
			Logger().Warning("cache purge failed for %q: %v", key, err)
		}
		return nil
	}

	var rec EvidenceRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		Logger().Warning("cache entry for %q is corrupt: %v", key, err)
		return nil
	}
	return &rec
}

// Set upserts a record under a key, refreshing the timestamp. Write
// failures are logged and swallowed; the cache is never load-bearing.
func (c *CacheStore) Set(key string, rec *EvidenceRecord) {
	if rec == nil {
		return
	}

	value, err := json.Marshal(rec)
	if err != nil {
		Logger().Warning("cache encode failed for %q: %v", key, err)
		return
	}

	_, err = c.db.Exec(`
		INSERT INTO cache (key, value, timestamp) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			timestamp = excluded.timestamp
	`, key, string(value), c.now().Unix())
	if err != nil {
		Logger().Warning("cache write failed for %q: %v", key, NewCacheError(ErrCacheWrite, "upsert failed", err))
	}
}
