package catalog

import (
	"errors"
	"strings"

	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
)

var (
	ErrInvalidInput    = errors.New("invalid parameters passed to request")
	ErrNotFound        = errors.New("the requested resource not found")
	ErrUnauthenticated = errors.New("user not found or not authenticated")
	ErrDuplicateVote   = errors.New("user has already voted on this movie")
	ErrStoreFailure    = errors.New("catalog store failure")
)

// ValidationError reports every constraint an entity violated.
type ValidationError struct {
	Violations []appvalidator.Violation
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.String()
	}

	return "validation error - " + strings.Join(messages, "; ")
}
