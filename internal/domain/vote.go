package domain

import (
	"context"
	"time"
)

type Vote struct {
	ID        int
	Value     int
	UserID    int
	MovieID   int
	CreatedAt time.Time
}

func NewVote(user *User, movie *Movie, value int) *Vote {
	return &Vote{
		Value:   value,
		UserID:  user.ID,
		MovieID: movie.ID,
	}
}

type VoteRepository interface {
	Create(ctx context.Context, vote *Vote) error
	// GetAllByMovieId returns recorded votes regardless of the movie's lifecycle state.
	GetAllByMovieId(ctx context.Context, movieID int) ([]Vote, error)
	ExistsForUser(ctx context.Context, movieID, userID int) (bool, error)
}
