package analysis

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Renderer writes a header and a response body to w.
type Renderer interface {
	Render(w io.Writer, header, body string) error
}

// Renderer names accepted by ParseRenderer.
const (
	RenderPlain    = "plain"
	RenderMarkdown = "markdown"
)

// ParseRenderer maps a renderer name to a Renderer.
func ParseRenderer(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", RenderPlain:
		return Plain{}, nil
	case RenderMarkdown:
		return Markdown{}, nil
	default:
		return nil, fmt.Errorf("analysis: unknown renderer %q (want %s or %s)", name, RenderPlain, RenderMarkdown)
	}
}

// Plain writes the header line and the body verbatim, each followed by a
// newline. Output is byte-identical for identical inputs.
type Plain struct{}

func (Plain) Render(w io.Writer, header, body string) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	buf.WriteString(body)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan

// Markdown styles the header and renders the body as terminal markdown.
// Style is a glamour standard style name; empty picks one from the terminal
// background.
type Markdown struct {
	Style    string
	WordWrap int // Defaults to 100.
}

func (m Markdown) Render(w io.Writer, header, body string) error {
	wrap := m.WordWrap
	if wrap <= 0 {
		wrap = 100
	}

	styleOpt := glamour.WithAutoStyle()
	if m.Style != "" {
		styleOpt = glamour.WithStandardStyle(m.Style)
	}

	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}

	out, err := tr.Render(body)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n%s", headerStyle.Render(header), out)
	return err
}
