package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/catalog"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

// castVoteBody keeps the rating undecoded so a missing movie is reported
// before anything is said about the body.
type castVoteBody struct {
	Value json.RawMessage `json:"value"`
}

func (app *Application) CastVote(w http.ResponseWriter, r *http.Request, id int) {
	if id < 1 {
		app.badRequestResponse(w, r, errInvalidMovieID)
		return
	}

	var input castVoteBody

	bodyErr := app.readJSON(w, r, &input)
	if bodyErr != nil {
		input.Value = nil
	}

	vote, err := app.catalog.CastVote(r.Context(), catalog.CastVoteInput{
		MovieID:    id,
		Value:      input.Value,
		Credential: bearerCredential(r),
	})
	if err != nil {
		if bodyErr != nil && errors.Is(err, catalog.ErrInvalidInput) {
			app.badRequestResponse(w, r, bodyErr)
			return
		}

		app.catalogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiVote(*vote), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieVotes(w http.ResponseWriter, r *http.Request, id int) {
	if id < 1 {
		app.badRequestResponse(w, r, errInvalidMovieID)
		return
	}

	votes, err := app.catalog.ListVotes(r.Context(), id)
	if err != nil {
		app.catalogErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Vote, len(votes))
	for i, vote := range votes {
		resp[i] = toApiVote(vote)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiVote(vote domain.Vote) api.Vote {
	return api.Vote{
		Id:        vote.ID,
		Value:     vote.Value,
		UserId:    vote.UserID,
		MovieId:   vote.MovieID,
		CreatedAt: vote.CreatedAt,
	}
}
