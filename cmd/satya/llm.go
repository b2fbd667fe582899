// cmd/satya/llm.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const llmSystemPrompt = `You are a fact-checking AI assistant. You are given a claim and evidence snippets from trusted sources. Decide whether the claim is true, fake, or unknown.

Format your response as JSON with these fields:
{
  "status": "true" | "fake" | "unknown",
  "confidence": integer 0-99,
  "reasoning": "short explanation",
  "risk_score": integer 0-100,
  "key_evidence": ["optional source names"]
}`

// OpenAIBackend adjudicates claims with an OpenAI chat model
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates the LLM adjudication backend
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Adjudicate submits the claim plus an evidence summary and parses the
// structured verdict fragment out of the reply
func (b *OpenAIBackend) Adjudicate(ctx context.Context, claim string, evidence []*EvidenceRecord) (*Verdict, error) {
	prompt := fmt.Sprintf("Fact check this claim: %s\n\nEvidence:\n%s",
		truncate(claim, 3000), evidenceSummary(evidence))

	resp, err := b.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: b.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: llmSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, NewBackendError(ErrBackendCall, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, NewBackendError(ErrBackendResponse, "empty completion", nil)
	}

	return parseLLMVerdict(resp.Choices[0].Message.Content)
}

// parseLLMVerdict validates and repairs the model's JSON reply
func parseLLMVerdict(content string) (*Verdict, error) {
	repaired, err := repairJSON(content)
	if err != nil {
		return nil, err
	}

	var out struct {
		Status      string   `json:"status"`
		Confidence  *int     `json:"confidence"`
		Reasoning   string   `json:"reasoning"`
		RiskScore   *int     `json:"risk_score"`
		KeyEvidence []string `json:"key_evidence"`
	}
	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return nil, NewBackendError(ErrBackendResponse, "failed to parse model reply", err)
	}

	if out.Status != StatusTrue && out.Status != StatusFake && out.Status != StatusUnknown {
		return nil, NewBackendError(ErrBackendResponse, fmt.Sprintf("unexpected status %q in model reply", out.Status), nil)
	}
	if out.Confidence == nil || out.RiskScore == nil {
		return nil, NewBackendError(ErrBackendResponse, "model reply is missing confidence or risk_score", nil)
	}

	return &Verdict{
		Status:     out.Status,
		Confidence: clampInt(*out.Confidence, 0, 99),
		Reasoning:  out.Reasoning,
		Sources:    []*EvidenceRecord{},
		RiskScore:  clampInt(*out.RiskScore, 0, 100),
	}, nil
}

// repairJSON strips code fences and isolates the first-{ to last-}
// span so a chatty model reply still parses
func repairJSON(content string) (string, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return "", NewBackendError(ErrBackendResponse, "no JSON object in model reply", nil)
	}
	return content[start : end+1], nil
}

// evidenceSummary renders evidence records as compact prompt lines
func evidenceSummary(evidence []*EvidenceRecord) string {
	if len(evidence) == 0 {
		return "(no sources found)"
	}

	var sb strings.Builder
	for _, rec := range evidence {
		fmt.Fprintf(&sb, "- %s (%s): %s\n", rec.Name, rec.URL, truncate(rec.Snippet, 300))
	}
	return sb.String()
}
