package shelf

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/MauriDarwoft/biblioteca/internal/api"
	"github.com/MauriDarwoft/biblioteca/internal/log"
)

// refreshFailedMessage is intentionally fixed: a failed refresh should not
// leak transport detail, and it must not clear books loaded earlier.
const refreshFailedMessage = "could not load your books, try again"

// Snapshot represents the collection view state available to the UI.
type Snapshot struct {
	Books   []api.Book // most recently created first
	Loading bool
	Err     string
}

// Store owns the in-memory book collection for one session and mediates
// every mutation through the API client. Mutations only apply after the
// server confirms them; the local list never holds a guessed record.
type Store struct {
	mu      sync.RWMutex
	svc     api.Library
	books   []api.Book
	loading bool
	errMsg  string
}

// New builds a Store backed by the given service.
func New(svc api.Library) *Store {
	return &Store{svc: svc}
}

// Refresh replaces the collection with the server's list. With an empty
// token no request is issued. On failure the previous books are kept and a
// fixed message is recorded.
func (s *Store) Refresh(ctx context.Context, token string) {
	if token == "" {
		return
	}

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	books, err := s.svc.ListBooks(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Warn("refresh books failed", zap.Error(err))
		s.errMsg = refreshFailedMessage
		return
	}
	s.books = books
}

// Add creates a book and prepends the server's record. An empty title
// never reaches the network; it records an error and returns immediately.
func (s *Store) Add(ctx context.Context, token, title, author string, status api.Status) (*api.Book, error) {
	if strings.TrimSpace(title) == "" {
		err := &api.ValidationError{Message: "book title is required"}
		s.setError(err.Message)
		return nil, err
	}

	book, err := s.svc.CreateBook(ctx, api.NewBook{Title: title, Author: author, Status: status}, token)
	if err != nil {
		s.setError(err.Error())
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append([]api.Book{*book}, s.books...)
	s.errMsg = ""
	return book, nil
}

// Delete removes a book once the server confirms. confirm gates the
// destructive call; when it declines, nothing happens at all.
func (s *Store) Delete(ctx context.Context, token, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return nil
	}

	if err := s.svc.DeleteBook(ctx, id, token); err != nil {
		s.setError(err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.books[:0]
	for _, b := range s.books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.books = kept
	s.errMsg = ""
	return nil
}

// ToggleStatus flips a book between read and unread. The local entry is
// replaced with the server-returned record, never a locally mutated copy.
func (s *Store) ToggleStatus(ctx context.Context, token string, book api.Book) error {
	updated, err := s.svc.UpdateBook(ctx, book.ID, api.StatusPatch(book.Status.Toggle()), token)
	if err != nil {
		s.setError(err.Error())
		return err
	}
	s.replace(*updated)
	return nil
}

// UpdateInfo applies a partial edit and returns the updated record so an
// edit form can react to it. Failures are recorded and propagated.
func (s *Store) UpdateInfo(ctx context.Context, token, id string, patch api.BookPatch) (*api.Book, error) {
	updated, err := s.svc.UpdateBook(ctx, id, patch, token)
	if err != nil {
		s.setError(err.Error())
		return nil, err
	}
	s.replace(*updated)
	return updated, nil
}

// Snapshot returns a copy of the current view state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Books:   cloneBooks(s.books),
		Loading: s.loading,
		Err:     s.errMsg,
	}
}

// ClearError dismisses the current error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) replace(book api.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.books {
		if s.books[i].ID == book.ID {
			s.books[i] = book
			break
		}
	}
	s.errMsg = ""
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

func cloneBooks(books []api.Book) []api.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]api.Book, len(books))
	copy(dup, books)
	return dup
}
