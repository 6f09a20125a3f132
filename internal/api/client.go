package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/MauriDarwoft/biblioteca/internal/log"
)

// Library is the subset of the API the collection controller depends on.
// This interface is implemented by *Client and can be used for testing.
type Library interface {
	ListBooks(ctx context.Context, token string) ([]Book, error)
	CreateBook(ctx context.Context, nb NewBook, token string) (*Book, error)
	UpdateBook(ctx context.Context, id string, patch BookPatch, token string) (*Book, error)
	DeleteBook(ctx context.Context, id, token string) error
}

// Ensure Client implements Library at compile time.
var _ Library = (*Client)(nil)

// Client talks to the library HTTP API. It is the only component that
// constructs requests; everything else goes through it. One attempt per
// call, no retries, no client-side timeout.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DevelopmentBaseURL is the fixed endpoint used outside production.
	DevelopmentBaseURL = "http://localhost:2222/api"

	defaultUserAgent = "biblioteca/0.1"
	minPasswordLen   = 6
)

// NewClient builds a Client for the given base URL. An empty value falls
// back to the local development endpoint.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// ListBooks retrieves the user's collection, most recently created first.
func (c *Client) ListBooks(ctx context.Context, token string) ([]Book, error) {
	var books []Book
	if err := c.do(ctx, http.MethodGet, []string{"books"}, token, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook submits a new book. The title must be non-empty after
// trimming; that is checked here, before any network call. The returned
// record carries the server-assigned ID and is authoritative.
func (c *Client) CreateBook(ctx context.Context, nb NewBook, token string) (*Book, error) {
	nb.Title = strings.TrimSpace(nb.Title)
	if nb.Title == "" {
		return nil, &ValidationError{Message: "book title is required"}
	}
	nb.Author = strings.TrimSpace(nb.Author)
	if nb.Status == "" {
		nb.Status = StatusUnread
	}
	var book Book
	if err := c.do(ctx, http.MethodPost, []string{"books"}, token, nb, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook applies a partial update and returns the full updated record.
func (c *Client) UpdateBook(ctx context.Context, id string, patch BookPatch, token string) (*Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Message: "book id is required"}
	}
	var book Book
	if err := c.do(ctx, http.MethodPatch, []string{"books", id}, token, patch, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book. Removal is only confirmed once this returns nil.
func (c *Client) DeleteBook(ctx context.Context, id, token string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return &ValidationError{Message: "book id is required"}
	}
	return c.do(ctx, http.MethodDelete, []string{"books", id}, token, nil, nil)
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}
	var session Session
	if err := c.do(ctx, http.MethodPost, []string{"auth", "login"}, "", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Register creates an account and returns the new session. The password
// length check mirrors the server-side rule; the server stays authoritative.
func (c *Client) Register(ctx context.Context, reg Registration) (*Session, error) {
	if reg.Email == "" || reg.Password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}
	if utf8.RuneCountInString(reg.Password) < minPasswordLen {
		return nil, &ValidationError{Message: "password must be at least 6 characters"}
	}
	var session Session
	if err := c.do(ctx, http.MethodPost, []string{"auth", "register"}, "", reg, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateProfile changes the account name and email.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, []string{"auth", "profile"}, token, patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, pc PasswordChange, token string) error {
	if pc.CurrentPassword == "" || pc.NewPassword == "" {
		return &ValidationError{Message: "current and new password are required"}
	}
	if utf8.RuneCountInString(pc.NewPassword) < minPasswordLen {
		return &ValidationError{Message: "new password must be at least 6 characters"}
	}
	return c.do(ctx, http.MethodPatch, []string{"auth", "change-password"}, token, pc, nil)
}

func (c *Client) do(ctx context.Context, method string, parts []string, token string, body, dest any) error {
	reqURL := c.baseURL.JoinPath(parts...).String()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug("api request", zap.String("method", method), zap.String("url", reqURL))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("api transport failure",
			zap.String("method", method), zap.String("url", reqURL), zap.Error(err))
		return &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := decodeError(resp.StatusCode, raw)
		log.Warn("api rejected request",
			zap.String("method", method), zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode), zap.Error(reqErr))
		return reqErr
	}
	if dest == nil {
		return nil
	}
	return decodePayload(resp.StatusCode, raw, dest)
}

// decodeError turns a non-2xx response body into a typed error: a list of
// field-level validation errors joined into one message, a single message
// field, or a generic fallback when the body carries neither.
func decodeError(status int, raw []byte) error {
	var payload struct {
		Errors  []fieldError `json:"errors"`
		Message string       `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &ServerError{Status: status, StatusText: http.StatusText(status)}
	}
	if len(payload.Errors) > 0 {
		return &ValidationError{Message: joinFieldErrors(payload.Errors)}
	}
	if payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("Error %d: %s", status, http.StatusText(status))}
}

// decodePayload unmarshals a success body into dest, unwrapping an
// optional {"data": ...} envelope first.
func decodePayload(status int, raw []byte, dest any) error {
	body := raw
	if isJSONObject(raw) {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return &ServerError{Status: status, StatusText: http.StatusText(status)}
		}
		if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			body = envelope.Data
		}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &ServerError{Status: status, StatusText: http.StatusText(status)}
	}
	return nil
}

func isJSONObject(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b == '{'
	}
	return false
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DevelopmentBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
