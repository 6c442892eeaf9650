package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/config"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "CONTENTORCH_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CONTENTORCH_CONFIG: config file name or path
	InputDir   string // CONTENTORCH_INPUT_DIR: default draft directory
	OutputDir  string // CONTENTORCH_OUTPUT_DIR: default output directory
	Workers    int    // CONTENTORCH_WORKERS: parallel workers
	Status     string // CONTENTORCH_STATUS: publish status stamped on bundles
}

// knownEnvVars lists all recognized CONTENTORCH_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CONTENTORCH_CONFIG":     true,
	"CONTENTORCH_INPUT_DIR":  true,
	"CONTENTORCH_OUTPUT_DIR": true,
	"CONTENTORCH_WORKERS":    true,
	"CONTENTORCH_STATUS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CONTENTORCH_CONFIG"),
		InputDir:   os.Getenv("CONTENTORCH_INPUT_DIR"),
		OutputDir:  os.Getenv("CONTENTORCH_OUTPUT_DIR"),
		Status:     strings.TrimSpace(os.Getenv("CONTENTORCH_STATUS")),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("CONTENTORCH_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CONTENTORCH_* variables.
// Helps catch typos like CONTENTORCH_WORKER instead of CONTENTORCH_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
	if env.Status != "" && cfg.Publish.Status == "" {
		cfg.Publish.Status = env.Status
	}
}

// loadConfig resolves configuration from the --config flag, the environment
// and the config file, then validates the result. Without a config file the
// config starts empty so environment values are not masked by defaults.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}
