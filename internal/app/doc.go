// Package app provides the orchestration layer for biblioteca.
//
// # Overview
//
// This package wires together configuration, logging, the API client, the
// shelf store, voice capture, and the UI to create the complete biblioteca
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load environment configuration (mode and API base URL)
//  2. Load user preferences from ~/.config/biblioteca/prefs.toml
//  3. Initialize file logging under the preferred log directory
//  4. Create the HTTP client for the library API
//  5. Create the shared shelf.Store for collection state
//  6. Build the voice adapter, command-backed when voice_command is set
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Errors during initialization are fatal and returned from Run:
//
//   - Explicit .env file not found or unreadable
//   - Production mode without an API URL
//   - Invalid API base URL
//
// Everything after startup is recoverable. Request failures surface in the
// UI status line; preference and logging problems fall back to defaults.
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal. Business
// logic lives in domain packages (api, shelf, voice, config, ui). The app
// package simply connects these pieces. There is no background poller: the
// collection only changes through this client, so the store refreshes after
// sign-in, after mutations, and when the user asks for a reload.
package app
