package entity

import "github.com/google/uuid"

// User is the authenticated account as reported by the hosted auth provider.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthEvent names an authentication state transition.
type AuthEvent string

const (
	AuthEventSignedIn  AuthEvent = "SIGNED_IN"
	AuthEventSignedOut AuthEvent = "SIGNED_OUT"
)

// AuthChange is delivered to auth state listeners. User is nil on sign-out.
type AuthChange struct {
	Event AuthEvent
	User  *User
}
