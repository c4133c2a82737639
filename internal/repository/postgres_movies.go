package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

// voteRow mirrors the objects built by jsonb_build_object in GetAll.
type voteRow struct {
	ID        int       `json:"id"`
	Value     int       `json:"value"`
	UserID    int       `json:"userId"`
	MovieID   int       `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	query := `
		SELECT
			m.id,
			m.title,
			m.description,
			m.director,
			m.genre,
			m.created_at,
			COALESCE(jsonb_agg(
				jsonb_build_object(
					'id', v.id,
					'value', v.value,
					'userId', v.user_id,
					'movieId', v.movie_id,
					'createdAt', v.created_at
				) ORDER BY v.id) FILTER (WHERE v.id IS NOT NULL), '[]') AS votes
		FROM movies m
		LEFT JOIN votes v ON v.movie_id = m.id
		WHERE m.deleted_at IS NULL
			AND ($1 = '' OR m.director = $1)
			AND ($2 = '' OR m.title = $2)
			AND ($3 = '' OR m.genre = $3)
		GROUP BY m.id
		ORDER BY m.id`

	rows, err := p.db.Query(ctx, query, filters.Director, filters.Title, string(filters.Genre))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie
		var votesJson json.RawMessage

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Director,
			&movie.Genre,
			&movie.CreatedAt,
			&votesJson,
		)
		if err != nil {
			return nil, err
		}

		var votes []voteRow
		if len(votesJson) > 0 {
			if err := json.Unmarshal(votesJson, &votes); err != nil {
				return nil, err
			}
		}

		movie.Votes = make([]domain.Vote, len(votes))
		for i, v := range votes {
			movie.Votes[i] = domain.Vote(v)
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// GetById returns the movie with the given id whether or not it has been deleted.
// Votes are not loaded.
func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT id, title, description, director, genre, created_at, deleted_at
		FROM movies
		WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Director,
		&movie.Genre,
		&movie.CreatedAt,
		&movie.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	movie.Votes = []domain.Vote{}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, description, director, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Director,
		string(movie.Genre)).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) SoftDelete(ctx context.Context, id int) error {
	query := `UPDATE movies SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
