package domain

import (
	"context"
	"time"
)

// Identity is what a verified credential says about its bearer.
type Identity struct {
	UserID    int
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

type IdentityProvider interface {
	// Resolve verifies the credential and returns the identity of its bearer.
	// It returns ErrInvalidCredential when the credential cannot be trusted.
	Resolve(ctx context.Context, credential string) (*Identity, error)
}
