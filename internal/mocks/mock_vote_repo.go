package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MockVoteRepo struct {
	domain.VoteRepository
	CreateFunc          func(ctx context.Context, vote *domain.Vote) error
	GetAllByMovieIdFunc func(ctx context.Context, movieID int) ([]domain.Vote, error)
	ExistsForUserFunc   func(ctx context.Context, movieID, userID int) (bool, error)
}

func (m *MockVoteRepo) Create(ctx context.Context, vote *domain.Vote) error {
	return m.CreateFunc(ctx, vote)
}

func (m *MockVoteRepo) GetAllByMovieId(ctx context.Context, movieID int) ([]domain.Vote, error) {
	return m.GetAllByMovieIdFunc(ctx, movieID)
}

func (m *MockVoteRepo) ExistsForUser(ctx context.Context, movieID, userID int) (bool, error) {
	return m.ExistsForUserFunc(ctx, movieID, userID)
}
