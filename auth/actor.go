package auth

import "github.com/google/uuid"

// Actor is the authenticated user performing a write or delete. It is passed
// explicitly to the operations that require one rather than read from ambient
// state, so those operations can be exercised with an injected value.
type Actor struct {
	ID    uuid.UUID
	Email string
	Name  string
}
