package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MauriDarwoft/biblioteca/internal/api"
)

// chdir mirrors t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_DefaultsToDevelopment(t *testing.T) {
	t.Setenv(envMode, "")
	t.Setenv(envAPIURL, "")
	chdir(t, t.TempDir()) // no stray .env

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Mode != ModeDevelopment {
		t.Fatalf("Mode = %q, want %q", cfg.Mode, ModeDevelopment)
	}
	if cfg.APIURL != api.DevelopmentBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, api.DevelopmentBaseURL)
	}
}

func TestLoad_ProductionRequiresBaseURL(t *testing.T) {
	t.Setenv(envMode, ModeProduction)
	t.Setenv(envAPIURL, "")
	chdir(t, t.TempDir())

	if _, err := Load(""); err == nil {
		t.Fatalf("Load returned nil error, want missing base URL error")
	}

	t.Setenv(envAPIURL, "  https://books.example.com/api  ")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://books.example.com/api" {
		t.Fatalf("APIURL = %q, want trimmed URL", cfg.APIURL)
	}
}

func TestLoad_RejectsUnknownMode(t *testing.T) {
	t.Setenv(envMode, "staging")
	chdir(t, t.TempDir())

	if _, err := Load(""); err == nil {
		t.Fatalf("Load returned nil error, want unknown mode error")
	}
}

func TestLoad_ReadsEnvFileWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env")
	contents := "BIBLIOTECA_MODE=production\nBIBLIOTECA_API_URL=https://file.example.com/api\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(envMode, "")
	t.Setenv(envAPIURL, "")
	os.Unsetenv(envMode)
	os.Unsetenv(envAPIURL)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Mode != ModeProduction || cfg.APIURL != "https://file.example.com/api" {
		t.Fatalf("cfg = %+v, want values from env file", cfg)
	}

	// A real environment variable wins over the file.
	t.Setenv(envAPIURL, "https://real.example.com/api")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://real.example.com/api" {
		t.Fatalf("APIURL = %q, want environment to win", cfg.APIURL)
	}
}

func TestLoad_ExplicitMissingEnvFileIsAnError(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("does-not-exist.env"); err == nil {
		t.Fatalf("Load returned nil error, want missing file error")
	}
}
