// Package shelf provides the collection state controller for the app.
//
// # Overview
//
// The Store owns the in-memory book list for the current session and is the
// only component that changes it. Every mutation goes through the api
// client first; local state only reflects confirmed server state. There is
// no optimistic update anywhere: a toggle or edit shows the old value until
// the server's record comes back.
//
// # State Model
//
// The view state is the Snapshot triple:
//
//   - Books: the collection, most recently created first
//   - Loading: true while a list request is outstanding
//   - Err: the current user-facing error message, empty when none
//
// # Update Semantics
//
//	Refresh success:  books replaced, error cleared
//	Refresh failure:  books KEPT, fixed error message recorded
//	Add success:      server record prepended, error cleared
//	Add failure:      books unchanged, error recorded, error propagated
//	Delete declined:  nothing happens (the confirm callback gates the call)
//	Delete success:   entry removed by id
//	Delete failure:   entry kept (the server still has it)
//	Toggle/edit:      matching entry replaced with the server's record
//
// Keeping previous books on a failed refresh is deliberate: a transient
// network error during a reload should not blank a collection the user is
// looking at.
//
// # Invariants
//
// No two entries ever share an ID: inserts use fresh server-assigned IDs
// and every update replaces in place by ID. An empty title never issues a
// create request.
//
// # Concurrency
//
// A sync.RWMutex guards the fields; methods are safe to call from the
// tea.Cmd goroutines the UI runs network calls on. Overlapping mutations
// are not sequenced; the last response to resolve wins.
package shelf
