package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.Publish.Status != DefaultStatus {
		t.Errorf("Publish.Status = %q, want %q", cfg.Publish.Status, DefaultStatus)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if err != nil && !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error should name the field, got %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	manyTerms := make([]string, MaxTerms+1)
	for i := range manyTerms {
		manyTerms[i] = "t"
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"zero config", Config{}, nil},
		{"every status accepted", Config{Publish: PublishConfig{Status: "private"}}, nil},
		{"status case-insensitive", Config{Publish: PublishConfig{Status: "Draft"}}, nil},
		{"unknown status", Config{Publish: PublishConfig{Status: "archived"}}, ErrInvalidStatus},
		{"negative workers", Config{Workers: -1}, ErrInvalidWorkers},
		{"too many workers", Config{Workers: MaxWorkers + 1}, ErrInvalidWorkers},
		{"workers at limit", Config{Workers: MaxWorkers}, nil},
		{"output dir too long", Config{Output: OutputConfig{DefaultDir: strings.Repeat("a", MaxPathLength+1)}}, ErrFieldTooLong},
		{"tag too long", Config{Publish: PublishConfig{Tags: []string{strings.Repeat("a", MaxTermLength+1)}}}, ErrFieldTooLong},
		{"too many categories", Config{Publish: PublishConfig{Categories: manyTerms}}, ErrTooManyTerms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_EffectiveStatus(t *testing.T) {
	t.Parallel()

	if got := (&Config{}).EffectiveStatus(); got != DefaultStatus {
		t.Errorf("EffectiveStatus() = %q, want %q", got, DefaultStatus)
	}
	cfg := &Config{Publish: PublishConfig{Status: "PENDING"}}
	if got := cfg.EffectiveStatus(); got != "pending" {
		t.Errorf("EffectiveStatus() = %q, want %q", got, "pending")
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "test.yaml", `input:
  defaultDir: "/drafts"
output:
  defaultDir: "/out"
workers: 4
publish:
  status: draft
  tags: [ai, marketing]
  categories: [Guides]
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/drafts" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/drafts")
		}
		if cfg.Output.DefaultDir != "/out" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/out")
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
		if cfg.EffectiveStatus() != "draft" {
			t.Errorf("status = %q, want %q", cfg.EffectiveStatus(), "draft")
		}
		if len(cfg.Publish.Tags) != 2 || cfg.Publish.Tags[1] != "marketing" {
			t.Errorf("Publish.Tags = %v", cfg.Publish.Tags)
		}
		if len(cfg.Publish.Categories) != 1 || cfg.Publish.Categories[0] != "Guides" {
			t.Errorf("Publish.Categories = %v", cfg.Publish.Categories)
		}
	})

	t.Run("missing status uses default", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "test.yaml", "workers: 2\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.EffectiveStatus() != DefaultStatus {
			t.Errorf("status = %q, want %q", cfg.EffectiveStatus(), DefaultStatus)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "invalid.yaml", "publish: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "workers: 1\nunknownField: \"should fail\"\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid status returns ErrInvalidStatus", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "status.yaml", "publish:\n  status: archived\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits not enforced")
		}
		path := writeConfig(t, t.TempDir(), "unreadable.yaml", "workers: 1\n")
		if err := os.Chmod(path, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(path, 0600)

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "workers: 3\n")
		chdir(t, dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "workers: 1\n")
		writeConfig(t, dir, "myconfig.yml", "workers: 2\n")
		chdir(t, dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 1 {
			t.Errorf("Workers = %d, want 1 (should prefer .yaml)", cfg.Workers)
		}
	})

	t.Run("config name resolves from user config directory", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME only honored on Linux")
		}
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		appDir := filepath.Join(home, AppName)
		if err := os.MkdirAll(appDir, 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		writeConfig(t, appDir, "testconfig.yml", "workers: 5\n")
		chdir(t, t.TempDir())

		cfg, err := LoadConfig("testconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 5 {
			t.Errorf("Workers = %d, want 5", cfg.Workers)
		}
	})

	t.Run("config name not found lists searched paths", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") || !strings.Contains(err.Error(), "missing.yml") {
			t.Errorf("error should list tried paths, got %q", err.Error())
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("base")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "base.yaml" || paths[1] != "base.yml" {
		t.Errorf("local candidates = %v, want [base.yaml base.yml]", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppName) {
			t.Errorf("user candidate %q should live under %s", p, AppName)
		}
	}
}
