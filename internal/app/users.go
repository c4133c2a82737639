package app

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/oapi-codegen/runtime/types"
)

const welcomeTemplate = "user_welcome.tmpl"

var errInvalidInputData = errors.New("invalid input data")

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, appvalidator.Violations(err))
		return
	}

	user := domain.User{
		Name:  input.Name,
		Email: strings.ToLower(string(input.Email)),
		Role:  domain.RoleUser,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing email")
			// do not reveal whether the email is registered
			app.badRequestResponse(w, r, errInvalidInputData)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	go func(ctx context.Context) {
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending welcome mail", "panic", err)
			}
		}()

		data := map[string]any{
			"name":   user.Name,
			"userID": user.ID,
		}

		err := app.mailer.Send(user.Email, welcomeTemplate, data)
		if err != nil {
			gLogger.Error("failed to send welcome email", "error", err)
		} else {
			gLogger.Info("welcome email sent successfully")
		}
	}(context.WithoutCancel(r.Context()))

	resp := api.UserResponse{
		Id:        user.ID,
		Name:      user.Name,
		Email:     types.Email(user.Email),
		Role:      api.UserResponseRole(user.Role),
		CreatedAt: user.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
