// Package modeladapter defines the contract between the analysis runner and a
// hosted text-generation model.
//
// It contains:
//   - [Completer], the single-call generation interface, with its [Request] and [Response] values
//   - [ModelAdapter], an embeddable base struct with HTTP helpers and auth, and [UsageReporter]
//   - [APIError] and [RateLimitError] for non-2xx provider replies
//   - [github.com/germanamz/analyst/pkg/modeladapter/usage], a thread-safe token usage tracker
//
// No provider-specific code lives here; concrete adapters are in
// pkg/providers and embed ModelAdapter.
package modeladapter
