package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DevelopmentBaseURL {
		t.Fatalf("base url = %q, want %q", u.String(), DevelopmentBaseURL)
	}

	u, err = parseBaseURL("example.com/api/")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/api" {
		t.Fatalf("path = %q, want /api", u.Path)
	}

	u, err = parseBaseURL("https://books.example.com/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_BookEndpointsAndHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType, gotUserAgent string
	var gotCreateBody NewBook
	var gotPatchBody map[string]any
	var gotDeletePath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/books":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []Book{{ID: "2", Title: "Second"}, {ID: "1", Title: "First"}},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/books":
			_ = json.NewDecoder(r.Body).Decode(&gotCreateBody)
			_ = json.NewEncoder(w).Encode(Book{ID: "9", Title: gotCreateBody.Title, Status: gotCreateBody.Status})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/books/9":
			_ = json.NewDecoder(r.Body).Decode(&gotPatchBody)
			_ = json.NewEncoder(w).Encode(Book{ID: "9", Title: "Dune", Status: StatusRead})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/books/9":
			gotDeletePath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	books, err := c.ListBooks(ctx, "tok-123")
	if err != nil {
		t.Fatalf("ListBooks returned error: %v", err)
	}
	if len(books) != 2 || books[0].ID != "2" {
		t.Fatalf("ListBooks = %#v, want 2 books newest first", books)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}

	created, err := c.CreateBook(ctx, NewBook{Title: "  Dune  ", Author: " Herbert "}, "tok-123")
	if err != nil {
		t.Fatalf("CreateBook returned error: %v", err)
	}
	if created.ID != "9" {
		t.Fatalf("created.ID = %q, want server-assigned 9", created.ID)
	}
	if gotCreateBody.Title != "Dune" || gotCreateBody.Author != "Herbert" {
		t.Fatalf("create body = %#v, want trimmed fields", gotCreateBody)
	}
	if gotCreateBody.Status != StatusUnread {
		t.Fatalf("create status = %q, want default %q", gotCreateBody.Status, StatusUnread)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}

	updated, err := c.UpdateBook(ctx, "9", StatusPatch(StatusRead), "tok-123")
	if err != nil {
		t.Fatalf("UpdateBook returned error: %v", err)
	}
	if updated.Status != StatusRead {
		t.Fatalf("updated.Status = %q, want %q", updated.Status, StatusRead)
	}
	if len(gotPatchBody) != 1 || gotPatchBody["status"] != "read" {
		t.Fatalf("patch body = %#v, want only status", gotPatchBody)
	}

	if err := c.DeleteBook(ctx, "9", "tok-123"); err != nil {
		t.Fatalf("DeleteBook returned error: %v", err)
	}
	if gotDeletePath != "/api/books/9" {
		t.Fatalf("delete path = %q, want /api/books/9", gotDeletePath)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "biblioteca/") {
		t.Fatalf("User-Agent = %q, want biblioteca/*", gotUserAgent)
	}
}

func TestClient_LocalValidationSkipsNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{"create blank title", func() error {
			_, err := c.CreateBook(ctx, NewBook{Title: "   "}, "tok")
			return err
		}},
		{"update empty id", func() error {
			_, err := c.UpdateBook(ctx, " ", BookPatch{}, "tok")
			return err
		}},
		{"delete empty id", func() error {
			return c.DeleteBook(ctx, "", "tok")
		}},
		{"login missing email", func() error {
			_, err := c.Login(ctx, Credentials{Password: "x"})
			return err
		}},
		{"login missing password", func() error {
			_, err := c.Login(ctx, Credentials{Email: "a@b.c"})
			return err
		}},
		{"register short password", func() error {
			_, err := c.Register(ctx, Registration{Name: "A", Email: "a@b.c", Password: "12345"})
			return err
		}},
		{"change password missing current", func() error {
			return c.ChangePassword(ctx, PasswordChange{NewPassword: "123456"}, "tok")
		}},
		{"change password short", func() error {
			return c.ChangePassword(ctx, PasswordChange{CurrentPassword: "old", NewPassword: "12345"}, "tok")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v (%T), want *ValidationError", err, err)
			}
		})
	}

	if n := requests.Load(); n != 0 {
		t.Fatalf("server saw %d requests, want 0", n)
	}
}

func TestClient_ErrorBodyShapes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/books":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[{"field":"title","message":"too long"},{"field":"status","message":"unknown value"}]}`))
		case "/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
		case "/auth/profile":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{}`))
		case "/auth/register":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>gateway</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.CreateBook(ctx, NewBook{Title: "Dune"}, "tok")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v (%T), want *ValidationError", err, err)
	}
	if verr.Message != "title: too long, status: unknown value" {
		t.Fatalf("joined message = %q", verr.Message)
	}

	_, err = c.Login(ctx, Credentials{Email: "a@b.c", Password: "nope"})
	var aerr *APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v (%T), want *APIError", err, err)
	}
	if aerr.Status != http.StatusUnauthorized || aerr.Message != "invalid credentials" {
		t.Fatalf("APIError = %#v, want 401 invalid credentials", aerr)
	}

	_, err = c.UpdateProfile(ctx, ProfilePatch{Name: "A"}, "tok")
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v (%T), want *APIError", err, err)
	}
	if aerr.Message != "Error 403: Forbidden" {
		t.Fatalf("generic message = %q, want Error 403: Forbidden", aerr.Message)
	}

	_, err = c.Register(ctx, Registration{Name: "A", Email: "a@b.c", Password: "123456"})
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v (%T), want *ServerError", err, err)
	}
	if serr.Status != http.StatusBadGateway {
		t.Fatalf("ServerError.Status = %d, want 502", serr.Status)
	}
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListBooks(context.Background(), "tok")
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v (%T), want *ServerError", err, err)
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListBooks(context.Background(), "tok")
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("error = %v (%T), want *NetworkError", err, err)
	}
	if err.Error() != "connection error, check your network and try again" {
		t.Fatalf("user-facing message = %q, want the fixed text", err.Error())
	}
	if nerr.Unwrap() == nil {
		t.Fatalf("NetworkError should keep its cause for the logs")
	}
}

func TestClient_SessionEndpointsUnwrapData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			// wrapped under data
			_, _ = w.Write([]byte(`{"data":{"user":{"id":"u1","name":"Maite","email":"m@x.y"},"token":"tok-1"}}`))
		case "/auth/register":
			// bare body
			_, _ = w.Write([]byte(`{"user":{"id":"u2","name":"Nico","email":"n@x.y"},"token":"tok-2"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	session, err := c.Login(ctx, Credentials{Email: "m@x.y", Password: "secret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token != "tok-1" || session.User.Name != "Maite" {
		t.Fatalf("session = %#v, want tok-1/Maite", session)
	}

	session, err = c.Register(ctx, Registration{Name: "Nico", Email: "n@x.y", Password: "123456"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if session.Token != "tok-2" || session.User.ID != "u2" {
		t.Fatalf("session = %#v, want tok-2/u2", session)
	}
}
