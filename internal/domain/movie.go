package domain

import (
	"context"
	"time"
)

type Genre string

const (
	Action      Genre = "Action"
	Adventure   Genre = "Adventure"
	Animation   Genre = "Animation"
	Comedy      Genre = "Comedy"
	Crime       Genre = "Crime"
	Documentary Genre = "Documentary"
	Drama       Genre = "Drama"
	Fantasy     Genre = "Fantasy"
	Horror      Genre = "Horror"
	Romance     Genre = "Romance"
	SciFi       Genre = "SciFi"
	Thriller    Genre = "Thriller"
)

// Genres lists every genre a movie can be catalogued under.
var Genres = []Genre{
	Action, Adventure, Animation, Comedy, Crime, Documentary,
	Drama, Fantasy, Horror, Romance, SciFi, Thriller,
}

func (g Genre) Valid() bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}

	return false
}

type MovieStatus string

const (
	MovieActive  MovieStatus = "active"
	MovieDeleted MovieStatus = "deleted"
)

type Movie struct {
	ID          int
	Title       string
	Description string
	Director    string
	Genre       Genre
	Votes       []Vote
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// NewMovie builds a movie from its catalog fields. It performs no validation.
func NewMovie(title, description, director string, genre Genre, votes []Vote) *Movie {
	if votes == nil {
		votes = []Vote{}
	}

	return &Movie{
		Title:       title,
		Description: description,
		Director:    director,
		Genre:       genre,
		Votes:       votes,
	}
}

func (m *Movie) Status() MovieStatus {
	if m.DeletedAt != nil {
		return MovieDeleted
	}

	return MovieActive
}

func (m *Movie) IsDeleted() bool {
	return m.Status() == MovieDeleted
}

// Rating aggregates the votes currently attached to the movie.
func (m *Movie) Rating() Rating {
	values := make([]int, len(m.Votes))
	for i, vote := range m.Votes {
		values[i] = vote.Value
	}

	return AggregateRating(values)
}

func (m *Movie) Summary() RatingSummary {
	return RatingSummary{
		Movie: MovieDetails{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Director:    m.Director,
			Genre:       m.Genre,
		},
		AverageRating: m.Rating().String(),
	}
}

// MovieDetails is the public projection of a movie, without its votes.
type MovieDetails struct {
	ID          int
	Title       string
	Description string
	Director    string
	Genre       Genre
}

type MovieFilters struct {
	Director string
	Title    string
	Genre    Genre
}

type MovieRepository interface {
	// GetAll returns active movies matching every non-empty filter, with their votes loaded.
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	SoftDelete(ctx context.Context, id int) error
}
