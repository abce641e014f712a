// Package model defines domain entities for the application.
package model

import "time"

// Role identifies the kind of account behind a session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid checks if the role is one of the known account kinds.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered customer account (table utenti).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Nome         string    `json:"nome"`
	Cognome      string    `json:"cognome"`
	Telefono     string    `json:"telefono,omitempty"`
	Indirizzo    string    `json:"indirizzo,omitempty"`
	Citta        string    `json:"citta,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName returns the user's full name as stored in the session identity.
func (u *User) DisplayName() string {
	return u.Nome + " " + u.Cognome
}

// Admin represents an administrator account (table amministratori).
// Admins are seeded out of band and never created through the API.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Nome         string    `json:"nome"`
	Cognome      string    `json:"cognome"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName returns the admin's full name as stored in the session identity.
func (a *Admin) DisplayName() string {
	return a.Nome + " " + a.Cognome
}

// Identity is the per-request caller identity carried by the session
// cookie and injected into the request context by the session middleware.
type Identity struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IsAdmin reports whether the identity belongs to an administrator.
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
