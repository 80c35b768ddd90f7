package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"paradoxpatch/internal/config"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"PARADOX_PATCH_URL", "PARADOX_PATCH_PROXY_URL", "PARADOX_PATCH_PROXY", "PARADOX_PATCH_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	testChdir(t, t.TempDir())
	return home
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	home := isolateHome(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(home, ".config", "paradox-patch", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(home, ".local", "state", "paradox-patch")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.LockPath() != filepath.Join(wantState, "paradox-patch.lock") {
		t.Fatalf("unexpected lock path %q", cfg.LockPath())
	}
	if cfg.Logging.Level != config.DefaultLogLevel || cfg.Logging.Format != config.DefaultLogFormat {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Patch.URL != config.Default().Patch.URL || cfg.Patch.UseProxy {
		t.Fatalf("unexpected patch defaults: %+v", cfg.Patch)
	}
	if !strings.HasPrefix(cfg.Patch.ProxyURL, "https://ghproxy.com/") {
		t.Fatalf("unexpected proxy url %q", cfg.Patch.ProxyURL)
	}
	if cfg.DownloadTimeout().Seconds() != 120 {
		t.Fatalf("unexpected timeout %v", cfg.DownloadTimeout())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(wantState); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "paradox-patch.toml")

	custom := config.Default()
	custom.Patch.URL = "https://mirror.example.com/libsteam_api.dylib"
	custom.Patch.UseProxy = true
	custom.Patch.TimeoutSeconds = 30
	custom.Logging.Level = "DEBUG"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Patch.TimeoutSeconds != 30 {
		t.Fatalf("timeout not loaded: %d", cfg.Patch.TimeoutSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", cfg.Logging.Level)
	}
	if !cfg.Patch.UseProxy || cfg.Patch.URL != "https://mirror.example.com/libsteam_api.dylib" {
		t.Fatalf("patch section not loaded: %+v", cfg.Patch)
	}
}

func TestLoadProjectConfigInWorkingDirectory(t *testing.T) {
	isolateHome(t)
	content := "[logging]\nformat = \"json\"\n"
	if err := os.WriteFile("paradox-patch.toml", []byte(content), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("format = %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolateHome(t)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[patch]\nurll = \"https://x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("PARADOX_PATCH_URL", "https://env.example.com/lib.dylib")
	t.Setenv("PARADOX_PATCH_PROXY", "true")
	t.Setenv("PARADOX_PATCH_LOG_LEVEL", "info")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Patch.URL != "https://env.example.com/lib.dylib" {
		t.Fatalf("url = %q", cfg.Patch.URL)
	}
	if !cfg.Patch.UseProxy {
		t.Fatal("expected use_proxy from env")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadInvalidProxyEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("PARADOX_PATCH_PROXY", "maybe")
	if _, _, _, err := config.Load(""); err == nil {
		t.Fatal("expected error for non-boolean PARADOX_PATCH_PROXY")
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	home := isolateHome(t)
	os.Unsetenv("PARADOX_PATCH_PROXY_URL")
	envDir := filepath.Join(home, ".config", "paradox-patch")
	if err := os.MkdirAll(envDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "PARADOX_PATCH_PROXY_URL=https://dotenv.example.com/lib.dylib\n"
	if err := os.WriteFile(filepath.Join(envDir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("PARADOX_PATCH_PROXY_URL") })

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Patch.ProxyURL != "https://dotenv.example.com/lib.dylib" {
		t.Fatalf("proxy url = %q", cfg.Patch.ProxyURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad scheme", func(c *config.Config) { c.Patch.URL = "ftp://example.com/lib" }},
		{"missing host", func(c *config.Config) { c.Patch.ProxyURL = "https:///lib" }},
		{"timeout", func(c *config.Config) { c.Patch.TimeoutSeconds = -1 }},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Patch.URL != config.Default().Patch.URL {
		t.Fatalf("sample url differs from default: %q", cfg.Patch.URL)
	}
}
