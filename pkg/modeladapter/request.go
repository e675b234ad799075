package modeladapter

import "github.com/germanamz/analyst/pkg/modeladapter/usage"

// Request is a single prompt addressed to a named model.
type Request struct {
	Model  string
	Prompt string
}

// Response is the generated reply to a Request. Only Text is meant for the
// user; the remaining fields are provider metadata.
type Response struct {
	Text         string
	Model        string // Model version reported by the provider, if any.
	FinishReason string
	Usage        usage.TokenCount
}
