package api

// Status tracks whether a book has been read.
type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

// Toggle returns the opposite reading status.
func (s Status) Toggle() Status {
	if s == StatusRead {
		return StatusUnread
	}
	return StatusRead
}

// Valid reports whether s is one of the recognized status values.
func (s Status) Valid() bool {
	return s == StatusUnread || s == StatusRead
}

// Book describes a library entry in transport-friendly form. The server
// assigns ID at creation; it never changes afterwards.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Status Status `json:"status"`
}

// User mirrors the account payload returned by the auth endpoints.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
}

// Session is the payload returned by login and register. Token is an opaque
// bearer credential; it is passed explicitly into every authenticated call
// rather than held in shared state.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// NewBook carries the fields for a create request.
type NewBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Status Status `json:"status"`
}

// BookPatch carries a partial update. Nil fields are omitted from the
// request body and left untouched by the server.
type BookPatch struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// StatusPatch builds a patch that only changes the reading status.
func StatusPatch(s Status) BookPatch {
	return BookPatch{Status: &s}
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries a register request.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfilePatch carries a profile update request.
type ProfilePatch struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PasswordChange carries a password change request.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
