// Package api provides the HTTP client for the remote library API.
//
// # Overview
//
// This package is the sole point of contact with the backend. It translates
// domain operations (list/create/update/delete book, login, register,
// profile and password changes) into HTTP requests, decodes JSON responses,
// and normalizes every failure into one of four typed errors.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: request construction, response decoding, the operations
//   - types.go: data structures mirroring the API schema
//   - errors.go: the error taxonomy
//
// # Client Usage
//
// Create a client using the base URL from configuration:
//
//	client, err := api.NewClient(cfg.APIURL)
//	if err != nil {
//		return err
//	}
//
//	session, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
//	if err != nil {
//		// err.Error() is already a user-presentable message
//	}
//
//	books, err := client.ListBooks(ctx, session.Token)
//
// # Endpoints
//
//   - GET    /books                 list the collection (bearer)
//   - POST   /books                 create a book (bearer)
//   - PATCH  /books/{id}            partial update, returns full record (bearer)
//   - DELETE /books/{id}            delete a book (bearer)
//   - POST   /auth/login            exchange credentials for a session
//   - POST   /auth/register         create an account
//   - PATCH  /auth/profile          update name/email (bearer)
//   - PATCH  /auth/change-password  rotate the password (bearer)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation control
//   - Send Accept and Content-Type: application/json
//   - Attach Authorization: Bearer <token> when a token is given
//   - Are attempted exactly once; no retries, no client-side timeout
//
// # Response Protocol
//
// Success bodies may wrap the payload under a "data" field; the client
// unwraps it when present and uses the body directly otherwise. Error
// bodies carry either errors: [{field, message}] (joined into one
// "field: message, field: message" string) or message: string.
//
// # Error Taxonomy
//
//   - *ValidationError: precondition caught locally before the network, or
//     server-reported field errors
//   - *APIError: non-2xx with a server message
//   - *NetworkError: transport failure; fixed user-facing message, cause
//     preserved via Unwrap for the logs
//   - *ServerError: body that could not be decoded as JSON
//
// Local preconditions (empty title, missing credentials, short password)
// fail before any request is built, so invalid input never hits the wire.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use; the underlying http.Client
// handles connection pooling internally.
//
// # Testing Considerations
//
// Use httptest.Server to mock the API. Assert that local validation
// failures record zero requests, and exercise the three error body shapes
// (errors list, message field, neither) plus non-JSON bodies.
package api
