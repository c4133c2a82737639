package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/internal/domain"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/metinatakli/movie-catalog/internal/catalog"

type Options struct {
	// OneVotePerUser rejects a second vote by the same user on the same movie.
	OneVotePerUser bool
}

// Service implements the catalog use cases on top of the store and identity collaborators.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	logger    *slog.Logger
	validator *validator.Validate
	movieRepo domain.MovieRepository
	voteRepo  domain.VoteRepository
	userRepo  domain.UserRepository
	identity  domain.IdentityProvider
	opts      Options

	votesCast metric.Int64Counter
}

func NewService(
	logger *slog.Logger,
	validator *validator.Validate,
	movieRepo domain.MovieRepository,
	voteRepo domain.VoteRepository,
	userRepo domain.UserRepository,
	identity domain.IdentityProvider,
	opts Options,
) *Service {
	votesCast, err := otel.Meter(instrumentationName).Int64Counter(
		"catalog.votes.cast",
		metric.WithDescription("Number of votes recorded"),
	)
	if err != nil {
		logger.Warn("failed to create votes counter", "error", err)
	}

	return &Service{
		logger:    logger,
		validator: validator,
		movieRepo: movieRepo,
		voteRepo:  voteRepo,
		userRepo:  userRepo,
		identity:  identity,
		opts:      opts,
		votesCast: votesCast,
	}
}

func (s *Service) ListMovies(ctx context.Context, filters domain.MovieFilters) ([]domain.RatingSummary, error) {
	movies, err := s.movieRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, s.storeFailure(ctx, "list movies", err)
	}

	summaries := make([]domain.RatingSummary, len(movies))
	for i, movie := range movies {
		summaries[i] = movie.Summary()
	}

	return summaries, nil
}

func (s *Service) GetMovie(ctx context.Context, id int) (*domain.MovieDetails, error) {
	movie, err := s.activeMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	details := movie.Summary().Movie
	return &details, nil
}

type CreateMovieInput struct {
	Title       string
	Description string
	Director    string
	Genre       domain.Genre
}

func (s *Service) CreateMovie(ctx context.Context, input CreateMovieInput) (*domain.Movie, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidInput
	}

	movie := domain.NewMovie(input.Title, input.Description, input.Director, input.Genre, nil)

	err := s.validate(movie)
	if err != nil {
		return nil, err
	}

	err = s.movieRepo.Create(ctx, movie)
	if err != nil {
		return nil, s.storeFailure(ctx, "create movie", err)
	}

	s.logger.InfoContext(ctx, "movie created", "movie_id", movie.ID)

	return movie, nil
}

type CastVoteInput struct {
	MovieID int
	// Value is the rating as the caller sent it. It is decoded only once the movie
	// is known to exist. Absent and null mean no rating; zero is a legitimate rating.
	Value      json.RawMessage
	Credential string
}

// CastVote records a rating for a movie. The checks run strictly in order:
// movie existence, value presence, caller identity, vote validation, persistence.
func (s *Service) CastVote(ctx context.Context, input CastVoteInput) (*domain.Vote, error) {
	movie, err := s.activeMovie(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}

	value, err := parseVoteValue(input.Value)
	if err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, input.Credential)
	if err != nil {
		return nil, err
	}

	if s.opts.OneVotePerUser {
		exists, err := s.voteRepo.ExistsForUser(ctx, movie.ID, user.ID)
		if err != nil {
			return nil, s.storeFailure(ctx, "check existing vote", err)
		}
		if exists {
			return nil, ErrDuplicateVote
		}
	}

	vote := domain.NewVote(user, movie, value)

	err = s.validate(vote)
	if err != nil {
		return nil, err
	}

	err = s.voteRepo.Create(ctx, vote)
	if err != nil {
		return nil, s.storeFailure(ctx, "create vote", err)
	}

	if s.votesCast != nil {
		s.votesCast.Add(ctx, 1, metric.WithAttributes(attribute.String("genre", string(movie.Genre))))
	}

	s.logger.InfoContext(ctx, "vote recorded", "movie_id", movie.ID, "user_id", user.ID, "vote_id", vote.ID)

	return vote, nil
}

func (s *Service) DeleteMovie(ctx context.Context, id int) error {
	_, err := s.activeMovie(ctx, id)
	if err != nil {
		return err
	}

	err = s.movieRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// deleted concurrently
			return ErrNotFound
		}
		return s.storeFailure(ctx, "delete movie", err)
	}

	s.logger.InfoContext(ctx, "movie deleted", "movie_id", id)

	return nil
}

// ListVotes returns the votes recorded for a movie, including the votes of a deleted movie.
// Only a movie that was never created is reported as not found.
func (s *Service) ListVotes(ctx context.Context, movieID int) ([]domain.Vote, error) {
	_, err := s.movieRepo.GetById(ctx, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.storeFailure(ctx, "get movie", err)
	}

	votes, err := s.voteRepo.GetAllByMovieId(ctx, movieID)
	if err != nil {
		return nil, s.storeFailure(ctx, "list votes", err)
	}

	return votes, nil
}

func (s *Service) activeMovie(ctx context.Context, id int) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.storeFailure(ctx, "get movie", err)
	}

	if movie.IsDeleted() {
		return nil, ErrNotFound
	}

	return movie, nil
}

func parseVoteValue(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrInvalidInput
	}

	var value int
	err := json.Unmarshal(raw, &value)
	if err != nil {
		return 0, fmt.Errorf("%w: value must be an integer", ErrInvalidInput)
	}

	return value, nil
}

func (s *Service) resolveUser(ctx context.Context, credential string) (*domain.User, error) {
	if credential == "" {
		return nil, ErrUnauthenticated
	}

	identity, err := s.identity.Resolve(ctx, credential)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredential) {
			s.logger.WarnContext(ctx, "credential rejected", "error", err)
			return nil, ErrUnauthenticated
		}
		return nil, s.storeFailure(ctx, "resolve identity", err)
	}

	user, err := s.userRepo.GetById(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.WarnContext(ctx, "credential refers to unknown user", "user_id", identity.UserID)
			return nil, ErrUnauthenticated
		}
		return nil, s.storeFailure(ctx, "get user", err)
	}

	return user, nil
}

func (s *Service) validate(entity any) error {
	err := s.validator.Struct(entity)
	if err == nil {
		return nil
	}

	violations := appvalidator.Violations(err)
	if violations == nil {
		return fmt.Errorf("validate %T: %w", entity, err)
	}

	return &ValidationError{Violations: violations}
}

func (s *Service) storeFailure(ctx context.Context, op string, err error) error {
	s.logger.ErrorContext(ctx, "catalog operation failed", "op", op, "error", err)

	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}
