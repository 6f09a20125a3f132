// Package ui provides the terminal user interface for biblioteca.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model that owns every view: the auth
// screens, the book shelf, the reading stats panel, and the account
// settings. State flows one way. Key presses dispatch commands, commands
// talk to the shelf store or the API client on background goroutines, and
// their results come back as messages that Update folds into the model.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Root model, Update loop, view dispatch, and shared key handling
//   - commands.go: tea.Cmd factories and the message types they produce
//   - login.go: Sign-in and registration forms
//   - shelf.go: Book list, inline add/edit form, and delete confirmation
//   - stats.go: Reading progress computation and display
//   - settings.go: Profile and password forms
//   - status.go: Header tabs, status line, and footer hints
//   - theme.go: Color themes and lipgloss style construction
//
// # View Types
//
// Five views are available:
//
//   - Login: Email and password sign-in
//   - Register: Account creation with name, email, and password
//   - Shelf: The book collection, newest first, with per-book actions
//   - Stats: Totals and a progress bar over read vs unread books
//   - Settings: Profile editing, password change, and theme selection
//
// # Event Flow
//
//  1. New() wires the client, store, voice adapter, and preferences
//  2. A successful sign-in stores the session and triggers a refresh
//  3. Shelf mutations go through shelf.Store; a storeChangedMsg carries
//     the fresh snapshot back into the model
//  4. Voice transcripts arrive on a channel bridged into the Bubble Tea
//     loop by waitVoiceCmd and become add-book commands
//
// # Key Bindings
//
//   - Tab: Cycle through authenticated views
//   - j/k: Move the shelf cursor
//   - Enter/Space: Toggle a book between read and unread
//   - a/e/d: Add, edit, delete the selected book
//   - r: Reload the collection from the server
//   - v: Toggle voice capture for dictating a title
//   - T: Cycle themes
//   - o: Sign out
//   - ?: Help overlay
//   - q or Ctrl+C: Exit
//
// # Design Principles
//
//   - The store owns collection truth: the UI renders snapshots, never
//     mutates book slices itself
//   - Destructive actions confirm first: delete always asks
//   - Errors stay visible: the status line shows the store's recorded
//     error until the user dismisses it or a refresh succeeds
package ui
