// Package config resolves the deployment configuration for the app.
//
// # Overview
//
// Deployment settings come from the environment, optionally seeded from a
// .env file, and are resolved exactly once at startup. The resulting
// Config is immutable; nothing re-reads the environment later.
//
// # Variables
//
//   - BIBLIOTECA_MODE: "development" (default) or "production"
//   - BIBLIOTECA_API_URL: the API base URL; required in production mode
//
// # Mode Resolution
//
// Development pins the base URL to the fixed local endpoint
// (http://localhost:2222/api), so a checkout runs against a local backend
// with zero configuration. Production requires BIBLIOTECA_API_URL and
// rejects startup without it, rather than silently talking to localhost.
// Any other mode value is an error.
//
// # .env Handling
//
// Load reads ./.env when present (or an explicitly given file, which must
// then exist). Variables already set in the real environment always win
// over the file, so operators can override a committed .env without
// editing it.
//
// # User Preferences
//
// Per-user settings (theme, voice command, log directory) are a separate
// concern and live in the prefs package; this package only answers "which
// backend am I talking to".
package config
