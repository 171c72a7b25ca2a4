package service

import "github.com/google/uuid"

// Identity is the authenticated caller as supplied by the auth
// middleware. The services trust it and only enforce ownership.
type Identity struct {
	ID   uuid.UUID
	Role string
}

func (i Identity) IsAdmin() bool { return i.Role == "admin" }
