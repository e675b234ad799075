package main

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/germanamz/analyst/pkg/analysis"
	"github.com/germanamz/analyst/pkg/config"
	"github.com/germanamz/analyst/pkg/providers/gemini"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	envFile string
	profile string
	model   string
	render  string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:     "analyst",
		Short:   "Ask Gemini for a critique of the Inner Models NFT project",
		Version: version,
		Args:    cobra.NoArgs,
		// main reports errors.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVar(&f.envFile, "env", config.DefaultEnvFile, "path to the .env file holding "+config.APIKeyVar)
	fl.StringVar(&f.profile, "config", "", "optional YAML profile overriding model, prompt, header, base_url and timeout")
	fl.StringVar(&f.model, "model", "", "model identifier (default "+config.DefaultModel+")")
	fl.StringVar(&f.render, "render", analysis.RenderPlain, "output renderer: plain or markdown")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log request details to stderr")

	return cmd
}

func run(ctx context.Context, f rootFlags, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := newLogger(stderr, f.verbose)

	renderer, err := analysis.ParseRenderer(f.render)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{
		EnvFile: f.envFile,
		Profile: f.profile,
		Model:   f.model,
	})
	if err != nil {
		return err
	}

	r := analysis.New(gemini.New(cfg.BaseURL, cfg.APIKey, cfg.Model), stdout)
	r.Renderer = renderer
	r.Logger = log

	return r.Run(ctx, cfg)
}

// newLogger writes text logs to w. Only warnings and errors are shown unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
