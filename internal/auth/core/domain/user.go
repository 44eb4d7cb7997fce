package domain

import "time"

// User is the identity payload handed to the client after login.
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// Scope selects where a session lives. Persistent sessions survive browser
// restarts ("remember me"), session-scoped ones end with the browser session.
type Scope string

const (
	ScopePersistent Scope = "persistent"
	ScopeSession    Scope = "session"
)

// LookupOrder is the order in which scopes are checked for a token.
var LookupOrder = []Scope{ScopePersistent, ScopeSession}

func ScopeFor(remember bool) Scope {
	if remember {
		return ScopePersistent
	}
	return ScopeSession
}

type Session struct {
	Token     string
	Scope     Scope
	User      User
	ExpiresAt time.Time
}
