package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MauriDarwoft/biblioteca/internal/api"
)

// Config captures the deployment settings resolved once at startup.
type Config struct {
	Mode   string
	APIURL string
}

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	envMode   = "BIBLIOTECA_MODE"
	envAPIURL = "BIBLIOTECA_API_URL"

	defaultEnvFile = ".env"
)

// Load resolves the deployment mode and API base URL. A .env file (the
// given path, or ./.env when empty) is read first when present; variables
// already set in the environment win over it. Development mode pins the
// base URL to the fixed local endpoint; production requires one to be
// supplied.
func Load(envFile string) (Config, error) {
	explicit := strings.TrimSpace(envFile) != ""
	path := strings.TrimSpace(envFile)
	if path == "" {
		path = defaultEnvFile
	}
	if err := loadEnvFile(path, explicit); err != nil {
		return Config{}, err
	}

	mode := strings.TrimSpace(os.Getenv(envMode))
	if mode == "" {
		mode = ModeDevelopment
	}

	cfg := Config{Mode: mode}
	switch mode {
	case ModeDevelopment:
		cfg.APIURL = api.DevelopmentBaseURL
	case ModeProduction:
		cfg.APIURL = strings.TrimSpace(os.Getenv(envAPIURL))
		if cfg.APIURL == "" {
			return Config{}, fmt.Errorf("%s is required when %s=%s", envAPIURL, envMode, ModeProduction)
		}
	default:
		return Config{}, fmt.Errorf("unknown %s %q", envMode, mode)
	}
	return cfg, nil
}

// loadEnvFile reads path into the environment without overriding existing
// variables. A missing default file is normal; a missing explicit one is
// an error.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) && !explicit {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}
