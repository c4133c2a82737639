package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	BaseSuite
}

func TestUserSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) SetupTest() {
	truncateUsers(s.T(), s.app.DB)
	s.app.Mailer.Reset()
}

func (s *UserTestSuite) TestRegisterUser() {
	scenarios := []Scenario{
		{
			Name:             "returns 400 for request with malformed JSON",
			Method:           "POST",
			URL:              "/users",
			Body:             strings.NewReader(`{"bad":"json"`),
			ExpectedStatus:   400,
			ExpectedResponse: `{"message": "body contains badly-formed JSON"}`,
		},
		{
			Name:   "returns 422 for invalid input data",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"name": "",
				"email": "john@example.com",
				"password": "123"
			}`),
			ExpectedStatus: 422,
			ExpectedResponse: `{
				"message": "One or more fields have invalid values",
				"validationErrors": [
					{"field": "name", "issue": "is required"},
					{"field": "password", "issue": "must be at least 8 characters long"}
				]
			}`,
		},
		{
			Name:   "registers the user and sends a welcome mail",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"name": "John Doe",
				"email": "John@Example.com",
				"password": "Test123!@#"
			}`),
			ExpectedStatus: 201,
			ExpectedResponse: `{
				"id": 1,
				"name": "John Doe",
				"email": "john@example.com",
				"role": "user"
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateUsers(t, app.DB)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				select {
				case email := <-app.Mailer.Sent:
					require.Equal(t, "john@example.com", email.Recipient)
					require.Equal(t, "user_welcome.tmpl", email.TemplateFile)
				case <-time.After(5 * time.Second):
					t.Fatal("welcome mail was not sent")
				}
			},
		},
		{
			Name:   "returns 400 for an already registered email",
			Method: "POST",
			URL:    "/users",
			Body: strings.NewReader(`{
				"name": "John Doe",
				"email": "test@example.com",
				"password": "Test123!@#"
			}`),
			ExpectedStatus:   400,
			ExpectedResponse: `{"message": "invalid input data"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateUsers(t, app.DB)
				insertTestUser(t, app.DB, TestUserName, TestUserEmail)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestCreateAuthenticationToken() {
	scenarios := []Scenario{
		{
			Name:           "issues a token for valid credentials",
			Method:         "POST",
			URL:            "/tokens/authentication",
			Body:           strings.NewReader(`{"email": "test@example.com", "password": "Test123!@#"}`),
			ExpectedStatus: 201,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				truncateUsers(t, app.DB)
				insertTestUser(t, app.DB, TestUserName, TestUserEmail)
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var resp api.AuthenticationTokenResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
				require.NotEmpty(t, resp.Token)
				require.True(t, resp.ExpiresAt.After(time.Now()))

				identity, err := app.Tokens.Resolve(context.Background(), resp.Token)
				require.NoError(t, err)
				require.Equal(t, TestUserId, identity.UserID)
			},
		},
		{
			Name:             "returns 401 for wrong password",
			Method:           "POST",
			URL:              "/tokens/authentication",
			Body:             strings.NewReader(`{"email": "test@example.com", "password": "wrong-password"}`),
			ExpectedStatus:   401,
			ExpectedResponse: `{"message": "Invalid authentication credentials"}`,
		},
		{
			Name:             "returns 401 for unknown email",
			Method:           "POST",
			URL:              "/tokens/authentication",
			Body:             strings.NewReader(`{"email": "nobody@example.com", "password": "Test123!@#"}`),
			ExpectedStatus:   401,
			ExpectedResponse: `{"message": "Invalid authentication credentials"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestRevokeAuthenticationToken() {
	user := insertTestUser(s.T(), s.app.DB, TestUserName, TestUserEmail)
	token := issueToken(s.T(), s.app, user)

	scenarios := []Scenario{
		{
			Name:           "revokes the token",
			Method:         "DELETE",
			URL:            "/tokens/authentication",
			Headers:        bearer(token),
			ExpectedStatus: 204,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				_, err := app.Tokens.Resolve(context.Background(), token)
				require.Error(t, err)
			},
		},
		{
			Name:             "returns 401 for an already revoked token",
			Method:           "DELETE",
			URL:              "/tokens/authentication",
			Headers:          bearer(token),
			ExpectedStatus:   401,
			ExpectedResponse: `{"message": "Invalid authentication credentials"}`,
		},
		{
			Name:             "returns 401 without a token",
			Method:           "DELETE",
			URL:              "/tokens/authentication",
			ExpectedStatus:   401,
			ExpectedResponse: `{"message": "You must be authenticated to access this resource"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
