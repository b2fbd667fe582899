// cmd/satya/classifier.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ZeroShotClassifier calls a zero-shot classification endpoint in the
// HuggingFace inference format (bart-large-mnli style)
type ZeroShotClassifier struct {
	client *http.Client
	url    string
	apiKey string
}

// NewZeroShotClassifier creates the classifier backend
func NewZeroShotClassifier(url, apiKey string) *ZeroShotClassifier {
	return &ZeroShotClassifier{
		client: &http.Client{Timeout: 30 * time.Second},
		url:    url,
		apiKey: apiKey,
	}
}

// Classify ranks the text against the candidate labels, best first
func (z *ZeroShotClassifier) Classify(ctx context.Context, text string, labels []string) ([]LabelScore, error) {
	reqBody, err := json.Marshal(map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"candidate_labels": labels,
		},
	})
	if err != nil {
		return nil, NewBackendError(ErrBackendCall, "failed to encode classifier request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.url, strings.NewReader(string(reqBody)))
	if err != nil {
		return nil, NewBackendError(ErrBackendCall, "failed to build classifier request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if z.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+z.apiKey)
	}

	resp, err := z.client.Do(req)
	if err != nil {
		return nil, NewBackendError(ErrBackendCall, "classifier request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewBackendError(ErrBackendCall, fmt.Sprintf("classifier returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, NewBackendError(ErrBackendResponse, "failed to read classifier response", err)
	}

	var out struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, NewBackendError(ErrBackendResponse, "failed to parse classifier response", err)
	}
	if len(out.Labels) == 0 || len(out.Labels) != len(out.Scores) {
		return nil, NewBackendError(ErrBackendResponse, "classifier response labels and scores do not line up", nil)
	}

	scores := make([]LabelScore, len(out.Labels))
	for i := range out.Labels {
		scores[i] = LabelScore{Label: out.Labels[i], Score: out.Scores[i]}
	}
	return scores, nil
}
