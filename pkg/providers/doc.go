// Package providers groups the concrete model adapters.
//
// Each sub-package embeds [github.com/germanamz/analyst/pkg/modeladapter.ModelAdapter]
// and implements Completer for one hosted API:
//   - [github.com/germanamz/analyst/pkg/providers/gemini] for Google Gemini generateContent
package providers
