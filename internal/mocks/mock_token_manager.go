package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/auth"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

// MockTokenManager is a mock implementation of auth.TokenManager
type MockTokenManager struct {
	auth.TokenManager
	ResolveFunc func(ctx context.Context, credential string) (*domain.Identity, error)
	IssueFunc   func(user *domain.User) (string, *domain.Identity, error)
	RevokeFunc  func(ctx context.Context, identity *domain.Identity) error
}

func (m *MockTokenManager) Resolve(ctx context.Context, credential string) (*domain.Identity, error) {
	return m.ResolveFunc(ctx, credential)
}

func (m *MockTokenManager) Issue(user *domain.User) (string, *domain.Identity, error) {
	return m.IssueFunc(user)
}

func (m *MockTokenManager) Revoke(ctx context.Context, identity *domain.Identity) error {
	return m.RevokeFunc(ctx, identity)
}
