package analysis_test

import (
	"bytes"
	"testing"

	"github.com/germanamz/analyst/pkg/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	assert.Equal(t, "=== GEMINI 2.5 PRO ANALYSIS ===", analysis.Header("gemini-2.5-pro"))
	assert.Equal(t, "=== GEMINI 2.5 FLASH ANALYSIS ===", analysis.Header("models/gemini-2.5-flash"))
}

func TestPlain_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, analysis.Plain{}.Render(&buf, "H", "line one\nline two"))
	assert.Equal(t, "H\nline one\nline two\n", buf.String())
}

func TestMarkdown_Render(t *testing.T) {
	var buf bytes.Buffer
	md := analysis.Markdown{Style: "notty", WordWrap: 80}

	require.NoError(t, md.Render(&buf, "=== GEMINI 2.5 PRO ANALYSIS ===", "## Verdict\n\nScore: **8/10**"))

	out := buf.String()
	assert.Contains(t, out, "GEMINI 2.5 PRO ANALYSIS")
	assert.Contains(t, out, "Verdict")
	assert.Contains(t, out, "8/10")
}

func TestParseRenderer(t *testing.T) {
	r, err := analysis.ParseRenderer("")
	require.NoError(t, err)
	assert.IsType(t, analysis.Plain{}, r)

	r, err = analysis.ParseRenderer("Markdown")
	require.NoError(t, err)
	assert.IsType(t, analysis.Markdown{}, r)

	_, err = analysis.ParseRenderer("html")
	assert.ErrorContains(t, err, `unknown renderer "html"`)
}
