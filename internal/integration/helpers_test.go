package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	actual = cleanValue(actual)
	expected = cleanValue(expected)

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for k := range value {
			if _, ok := keysToIgnore[k]; ok {
				delete(value, k)
				continue
			}
			value[k] = cleanValue(value[k])
		}
	case []any:
		for i := range value {
			value[i] = cleanValue(value[i])
		}
	}

	return v
}

func truncateCatalog(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE votes, movies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func truncateUsers(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

type testMovie struct {
	Title       string
	Description string
	Director    string
	Genre       string
}

func defaultTestMovie() testMovie {
	return testMovie{
		Title:       TestMovieTitle,
		Description: TestMovieDescription,
		Director:    TestMovieDirector,
		Genre:       TestMovieGenre,
	}
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, movie testMovie) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (title, description, director, genre) VALUES ($1, $2, $3, $4) RETURNING id`,
		movie.Title, movie.Description, movie.Director, movie.Genre,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func softDeleteTestMovie(t testing.TB, db *pgxpool.Pool, id int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `UPDATE movies SET deleted_at = now() WHERE id = $1`, id)
	require.NoError(t, err)
}

func insertTestUser(t testing.TB, db *pgxpool.Pool, name, email string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestUserPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{Name: name, Email: email, Role: domain.RoleUser}
	user.Password.Hash = hash

	err = db.QueryRow(context.Background(),
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		user.Name, user.Email, user.Password.Hash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	require.NoError(t, err)

	return user
}

func insertTestVote(t testing.TB, db *pgxpool.Pool, movieID, userID, value int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO votes (value, user_id, movie_id) VALUES ($1, $2, $3)`,
		value, userID, movieID,
	)
	require.NoError(t, err)
}

func countVotes(t testing.TB, db *pgxpool.Pool, movieID int) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM votes WHERE movie_id = $1`, movieID).Scan(&count)
	require.NoError(t, err)

	return count
}

func issueToken(t testing.TB, app *TestApp, user *domain.User) string {
	t.Helper()

	token, _, err := app.Tokens.Issue(user)
	require.NoError(t, err)

	return token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func newRecorder(app *TestApp, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}
