// Package gemini provides a Completer implementation for the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/germanamz/analyst/pkg/modeladapter"
	"github.com/germanamz/analyst/pkg/modeladapter/usage"
)

// DefaultBaseURL is the public Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Google Gemini API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the Gemini API.
// The baseURL should be DefaultBaseURL (no trailing slash) outside of tests.
func New(baseURL, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = strings.TrimRight(baseURL, "/")
	a.Auth = modeladapter.Auth{
		Key:    apiKey,
		Header: "x-goog-api-key",
	}
	a.Name = model

	return a
}

// Complete sends the prompt as a single user turn and returns the text of the
// first candidate. An empty req.Model falls back to the adapter's Name.
//
// A reply without candidates, including one whose prompt was blocked, is not
// an error: it yields empty Text, and FinishReason carries the block reason
// when there is one.
func (a *Adapter) Complete(ctx context.Context, req modeladapter.Request) (modeladapter.Response, error) {
	model := strings.TrimPrefix(req.Model, "models/")
	if model == "" {
		model = strings.TrimPrefix(a.Name, "models/")
	}
	if model == "" {
		return modeladapter.Response{}, errors.New("gemini: model is required")
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", model)

	var resp apiResponse
	if err := a.PostJSON(ctx, path, buildRequest(req.Prompt), &resp); err != nil {
		return modeladapter.Response{}, fmt.Errorf("gemini: %w", err)
	}

	tc := usage.TokenCount{
		InputTokens:   resp.UsageMetadata.PromptTokenCount,
		OutputTokens:  resp.UsageMetadata.CandidatesTokenCount,
		ThoughtTokens: resp.UsageMetadata.ThoughtsTokenCount,
	}
	a.Usage.Add(tc)

	out := modeladapter.Response{
		Model:        resp.ModelVersion,
		FinishReason: resp.PromptFeedback.BlockReason,
		Usage:        tc,
	}
	if out.Model == "" {
		out.Model = model
	}

	if len(resp.Candidates) > 0 {
		cand := resp.Candidates[0]
		out.Text = candidateText(cand)
		if out.FinishReason == "" {
			out.FinishReason = cand.FinishReason
		}
	}

	return out, nil
}

// --- request types ---

type apiRequest struct {
	Contents []apiContent `json:"contents"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

// --- response types ---

type apiResponse struct {
	Candidates     []apiCandidate    `json:"candidates"`
	PromptFeedback apiPromptFeedback `json:"promptFeedback"`
	UsageMetadata  apiUsageMeta      `json:"usageMetadata"`
	ModelVersion   string            `json:"modelVersion"`
}

type apiCandidate struct {
	Content      apiContent `json:"content"`
	FinishReason string     `json:"finishReason"`
}

type apiPromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type apiUsageMeta struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	ThoughtsTokenCount   int `json:"thoughtsTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// --- conversion helpers ---

func buildRequest(prompt string) apiRequest {
	return apiRequest{
		Contents: []apiContent{{
			Role:  "user",
			Parts: []apiPart{{Text: prompt}},
		}},
	}
}

// candidateText joins the visible text parts of a candidate. Thought summaries
// are dropped.
func candidateText(cand apiCandidate) string {
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		if p.Thought {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
