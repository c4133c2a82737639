package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/catalog"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	summaries, err := app.catalog.ListMovies(r.Context(), toMovieFilters(params))
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieWithRating, len(summaries))
	for i, summary := range summaries {
		resp[i] = api.MovieWithRating{
			Movie:         toApiMovie(summary.Movie),
			AverageRating: summary.AverageRating,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, id int) {
	if id < 1 {
		app.badRequestResponse(w, r, errInvalidMovieID)
		return
	}

	movie, err := app.catalog.GetMovie(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.catalog.CreateMovie(r.Context(), catalog.CreateMovieInput{
		Title:       input.Title,
		Description: input.Description,
		Director:    valueOrZero(input.Director),
		Genre:       domain.Genre(valueOrZero(input.Genre)),
	})
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := toApiMovie(movie.Summary().Movie)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int) {
	if id < 1 {
		app.badRequestResponse(w, r, errInvalidMovieID)
		return
	}

	err := app.catalog.DeleteMovie(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	return domain.MovieFilters{
		Director: valueOrZero(params.Director),
		Title:    valueOrZero(params.Title),
		Genre:    domain.Genre(valueOrZero(params.Genre)),
	}
}

func toApiMovie(movie domain.MovieDetails) api.Movie {
	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Director:    movie.Director,
		Genre:       api.Genre(movie.Genre),
	}
}
