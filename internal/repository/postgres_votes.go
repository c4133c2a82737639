package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

type PostgresVoteRepository struct {
	db *pgxpool.Pool
}

func NewPostgresVoteRepository(db *pgxpool.Pool) *PostgresVoteRepository {
	return &PostgresVoteRepository{
		db: db,
	}
}

func (p *PostgresVoteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	query := `INSERT INTO votes (value, user_id, movie_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx, query, vote.Value, vote.UserID, vote.MovieID).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresVoteRepository) GetAllByMovieId(ctx context.Context, movieID int) ([]domain.Vote, error) {
	query := `
		SELECT id, value, user_id, movie_id, created_at
		FROM votes
		WHERE movie_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}

	votes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Vote, error) {
		var vote domain.Vote
		err := row.Scan(&vote.ID, &vote.Value, &vote.UserID, &vote.MovieID, &vote.CreatedAt)
		return vote, err
	})
	if err != nil {
		return nil, err
	}

	return votes, nil
}

func (p *PostgresVoteRepository) ExistsForUser(ctx context.Context, movieID, userID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM votes WHERE movie_id = $1 AND user_id = $2)`

	var exists bool
	err := p.db.QueryRow(ctx, query, movieID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
