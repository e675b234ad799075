// Package config builds the runner configuration from an env file, an
// optional YAML profile, and built-in defaults.
//
// Values are returned in an explicit Config; the process environment is read
// but never modified.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/germanamz/analyst/pkg/prompt"
	"github.com/germanamz/analyst/pkg/providers/gemini"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEnvFile is the env file read when no other path is given.
	DefaultEnvFile = "/home/trader/Tasfag/.env"
	// APIKeyVar names the variable that carries the provider credential.
	APIKeyVar = "GOOGLE_API_KEY"
	// DefaultModel is the model that answers the analysis prompt.
	DefaultModel = "gemini-2.5-pro"
)

var (
	// ErrEnvFileNotFound is returned when the env file does not exist.
	ErrEnvFileNotFound = errors.New("config: env file not found")
	// ErrMissingAPIKey is returned when no credential is set in the env file or
	// the process environment.
	ErrMissingAPIKey = errors.New("config: " + APIKeyVar + " is not set")
)

// Config is everything a single analysis run needs.
type Config struct {
	APIKey  string        `yaml:"-"` // Never read from a profile.
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Prompt  string        `yaml:"prompt"`
	Header  string        `yaml:"header"`  // Empty derives the header from Model.
	Timeout time.Duration `yaml:"timeout"` // Zero means no timeout.
}

// Default returns the built-in configuration without a credential.
func Default() Config {
	return Config{
		BaseURL: gemini.DefaultBaseURL,
		Model:   DefaultModel,
		Prompt:  prompt.Analysis,
	}
}

// Options selects the inputs Load reads.
type Options struct {
	EnvFile string                      // Defaults to DefaultEnvFile.
	Profile string                      // Optional YAML profile path.
	Model   string                      // Overrides the profile and default model when set.
	Lookup  func(string) (string, bool) // Process environment; defaults to os.LookupEnv.
}

// Load reads the env file, resolves the credential, applies the profile and
// overrides, and validates the result.
func Load(opts Options) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	vars, err := ReadEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	cfg.APIKey, err = ResolveAPIKey(vars, lookup)
	if err != nil {
		return Config{}, err
	}

	if opts.Profile != "" {
		cfg, err = LoadProfile(opts.Profile, cfg, expander(vars, lookup))
		if err != nil {
			return Config{}, err
		}
	}

	if opts.Model != "" {
		cfg.Model = opts.Model
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ReadEnvFile parses a dotenv file without exporting its values.
func ReadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrEnvFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read env file %s: %w", path, err)
	}

	return vars, nil
}

// ResolveAPIKey returns the credential. A variable already present in the
// process environment takes precedence over the env file even when it is
// empty, matching dotenv loaders that never override existing variables.
func ResolveAPIKey(vars map[string]string, lookup func(string) (string, bool)) (string, error) {
	v, ok := lookup(APIKeyVar)
	if !ok {
		v = vars[APIKeyVar]
	}

	if v == "" {
		return "", ErrMissingAPIKey
	}

	return v, nil
}

// LoadProfile overlays the YAML profile at path onto base. References such as
// ${VAR} or $VAR are expanded with mapping before parsing.
func LoadProfile(path string, base Config, mapping func(string) string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load profile: %w", err)
	}

	expanded := os.Expand(string(data), mapping)

	cfg := base
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse profile: %w", err)
	}

	cfg.APIKey = base.APIKey

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	if c.Model == "" {
		return fmt.Errorf("config: model is required")
	}
	if c.Prompt == "" {
		return fmt.Errorf("config: prompt is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}

	return nil
}

// expander resolves names from the process environment first, then the env
// file.
func expander(vars map[string]string, lookup func(string) (string, bool)) func(string) string {
	return func(name string) string {
		if v, ok := lookup(name); ok {
			return v
		}
		return vars[name]
	}
}
