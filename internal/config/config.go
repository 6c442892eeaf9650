package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sabers13/agentic-ai-content-orchestrator/internal/fileutil"
	"github.com/sabers13/agentic-ai-content-orchestrator/internal/yamlutil"
)

// AppName names the per-user config directory (~/.config/contentorch).
const AppName = "contentorch"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidStatus   = errors.New("invalid publish status")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrTooManyTerms    = errors.New("too many taxonomy terms")
)

// Field limits.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxTermLength = 100  // Tag or category name
	MaxTerms      = 50   // Tags or categories per post
	MaxWorkers    = 64
)

// DefaultStatus is the post status used when none is configured.
const DefaultStatus = "publish"

// ValidStatuses lists the accepted post statuses.
var ValidStatuses = []string{"publish", "draft", "pending", "private", "future"}

// Config holds all configuration for draft formatting.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Workers int           `yaml:"workers"` // 0 = derive from GOMAXPROCS
	Publish PublishConfig `yaml:"publish"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default draft directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PublishConfig defines the metadata stamped on publish bundles.
type PublishConfig struct {
	Status     string   `yaml:"status"`     // One of ValidStatuses (default: "publish")
	Tags       []string `yaml:"tags"`       // Added to every draft's tags
	Categories []string `yaml:"categories"` // Added to every draft's categories
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	if err := ValidateStatus(c.Publish.Status); err != nil {
		return fmt.Errorf("publish.status: %w", err)
	}
	if err := validateTerms("publish.tags", c.Publish.Tags); err != nil {
		return err
	}
	if err := validateTerms("publish.categories", c.Publish.Categories); err != nil {
		return err
	}

	return nil
}

// ValidateStatus accepts an empty status (meaning the default) or one of
// ValidStatuses, case-insensitively.
func ValidateStatus(status string) error {
	if status == "" || slices.Contains(ValidStatuses, strings.ToLower(status)) {
		return nil
	}
	return fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidStatus, status, strings.Join(ValidStatuses, ", "))
}

// EffectiveStatus returns the configured status in lower case, or DefaultStatus.
func (c *Config) EffectiveStatus() string {
	if c.Publish.Status == "" {
		return DefaultStatus
	}
	return strings.ToLower(c.Publish.Status)
}

func validateTerms(fieldName string, terms []string) error {
	if len(terms) > MaxTerms {
		return fmt.Errorf("%w: %s (%d terms, max %d)", ErrTooManyTerms, fieldName, len(terms), MaxTerms)
	}
	for i, term := range terms {
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", fieldName, i), term, MaxTermLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that formats drafts in place with
// the default publish status.
func DefaultConfig() *Config {
	return &Config{
		Input:   InputConfig{DefaultDir: ""},
		Output:  OutputConfig{DefaultDir: ""},
		Workers: 0,
		Publish: PublishConfig{Status: DefaultStatus},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// current directory then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
