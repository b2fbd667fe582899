// cmd/satya/extract.go
package main

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// maxClaimChars caps how much extracted text feeds the pipeline
const maxClaimChars = 20000

// normalizeQuery canonicalizes claim text for provider queries and
// cache keys: NFC form, whitespace collapsed
func normalizeQuery(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// encodeQuery URL-encodes the first n tokens of a normalized query
func encodeQuery(query string, n int) string {
	return url.QueryEscape(firstTokens(query, n))
}

// ClaimExtractor turns a URL input into claim text by fetching the
// page and stripping its markup. A failed fetch degrades to empty
// claim text, which resolves to the default verdict downstream.
type ClaimExtractor struct {
	client    *http.Client
	userAgent string
}

// NewClaimExtractor creates a URL claim extractor
func NewClaimExtractor(timeout time.Duration, userAgent string) *ClaimExtractor {
	return &ClaimExtractor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FromURL fetches a page and returns its visible text, capped
func (e *ClaimExtractor) FromURL(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		Logger().Warning("claim extraction: bad URL %q: %v", rawURL, err)
		return ""
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		Logger().Warning("claim extraction: fetch of %q failed: %v", rawURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		Logger().Warning("claim extraction: %q returned status %d", rawURL, resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		Logger().Warning("claim extraction: failed to read %q: %v", rawURL, err)
		return ""
	}

	return truncate(stripMarkup(string(body)), maxClaimChars)
}

// stripMarkup reduces an HTML document to its visible text
func stripMarkup(page string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(page))

	var (
		sb        strings.Builder
		skipDepth int
	)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func skippedTag(name string) bool {
	switch name {
	case "script", "style", "noscript":
		return true
	}
	return false
}
