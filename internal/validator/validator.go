package validator

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

const (
	ErrRequired       = "is required"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrOneOf          = "must be one of: %s"
	ErrEmail          = "must be a valid email address"
	ErrGreaterThan    = "must be greater than %s"
	ErrDefaultInvalid = "is invalid"
)

// ErrGenre is reported for a genre outside domain.Genres.
var ErrGenre = fmt.Sprintf(ErrOneOf, genreList())

// MovieRules is the constraint schema applied to domain.Movie before persistence.
var MovieRules = map[string]string{
	"Title":       "required,max=50",
	"Description": "required,max=250",
	"Director":    "max=50",
	"Genre":       "required,genre",
}

// VoteRules is the constraint schema applied to domain.Vote before persistence.
// Value is bounded by the integer column it is stored in.
var VoteRules = map[string]string{
	"Value":   fmt.Sprintf("min=%d,max=%d", math.MinInt32, math.MaxInt32),
	"UserID":  "gt=0",
	"MovieID": "gt=0",
}

type Violation struct {
	Field string
	Issue string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s", v.Field, v.Issue)
}

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonTagName)
	validator.RegisterValidation("genre", validateGenre)

	validator.RegisterStructValidationMapRules(MovieRules, domain.Movie{})
	validator.RegisterStructValidationMapRules(VoteRules, domain.Vote{})

	return validator
}

func validateGenre(fl validator.FieldLevel) bool {
	genre, ok := fl.Field().Interface().(domain.Genre)
	if !ok {
		return false
	}

	return genre.Valid()
}

// jsonTagName names fields after their json tag, falling back to the
// lower camel case form of the Go field name.
func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name != "" {
		return name
	}

	r, size := utf8.DecodeRuneInString(fld.Name)
	return string(unicode.ToLower(r)) + fld.Name[size:]
}

func genreList() string {
	names := make([]string, len(domain.Genres))
	for i, g := range domain.Genres {
		names[i] = string(g)
	}

	return strings.Join(names, " ")
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		if isNumber(err.Kind()) {
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isNumber(err.Kind()) {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "genre":
		return ErrGenre
	default:
		return ErrDefaultInvalid
	}
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Violations flattens the result of a Struct call into one entry per failed constraint.
// It returns nil when err does not carry validation errors.
func Violations(err error) []Violation {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	violations := make([]Violation, len(validationErrors))
	for i, fe := range validationErrors {
		violations[i] = Violation{
			Field: fe.Field(),
			Issue: ValidationMessage(fe),
		}
	}

	return violations
}
