package analysis

import "strings"

// Header returns the banner printed above a model's answer, e.g.
// "=== GEMINI 2.5 PRO ANALYSIS ===" for "gemini-2.5-pro". A leading
// "models/" resource prefix is dropped.
func Header(model string) string {
	label := strings.TrimPrefix(model, "models/")
	label = strings.ToUpper(strings.ReplaceAll(label, "-", " "))

	return "=== " + label + " ANALYSIS ==="
}
