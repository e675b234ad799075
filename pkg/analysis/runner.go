package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/germanamz/analyst/pkg/config"
	"github.com/germanamz/analyst/pkg/modeladapter"
)

// Runner executes a single request/response cycle.
type Runner struct {
	Completer modeladapter.Completer
	Out       io.Writer
	Renderer  Renderer     // Defaults to Plain.
	Logger    *slog.Logger // Defaults to a discarding logger.
}

// New creates a Runner that prints plain output to out.
func New(c modeladapter.Completer, out io.Writer) *Runner {
	return &Runner{Completer: c, Out: out}
}

// Run sends cfg.Prompt to cfg.Model and renders the response under the
// configured header. A positive cfg.Timeout bounds the call.
func (r *Runner) Run(ctx context.Context, cfg config.Config) error {
	log := r.logger()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	req := modeladapter.Request{Model: cfg.Model, Prompt: cfg.Prompt}

	log.DebugContext(ctx, "analysis started", "model", req.Model, "prompt_bytes", len(req.Prompt))

	start := time.Now()

	resp, err := r.Completer.Complete(ctx, req)

	duration := time.Since(start)

	if err != nil {
		log.ErrorContext(ctx, "analysis failed",
			"model", req.Model,
			"duration", duration,
			"error", err,
		)
		return fmt.Errorf("analysis: %w", err)
	}

	spent := resp.Usage
	if ur, ok := r.Completer.(modeladapter.UsageReporter); ok {
		spent = ur.UsageTracker().Sum()
	}

	log.InfoContext(ctx, "analysis finished",
		"model", resp.Model,
		"finish_reason", resp.FinishReason,
		"duration", duration,
		"usage", spent.String(),
	)

	if resp.Text == "" {
		log.WarnContext(ctx, "model returned empty text",
			"model", resp.Model,
			"finish_reason", resp.FinishReason,
		)
	}

	header := cfg.Header
	if header == "" {
		header = Header(cfg.Model)
	}

	if err := r.renderer().Render(r.Out, header, resp.Text); err != nil {
		return fmt.Errorf("analysis: render: %w", err)
	}

	return nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (r *Runner) renderer() Renderer {
	if r.Renderer != nil {
		return r.Renderer
	}
	return Plain{}
}
