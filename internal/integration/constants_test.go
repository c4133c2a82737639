package integration_test

const (
	TestJWTSecret = "integration-secret-0123456789abcdef"
	TestJWTIssuer = "movie-catalog-integration"

	// User related constants
	TestUserId       = 1
	TestUserName     = "John Doe"
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	TestOtherUserId    = 2
	TestOtherUserEmail = "other@example.com"

	// Movie related constants
	TestMovieTitle       = "Test Movie"
	TestMovieDescription = "A test movie description."
	TestMovieDirector    = "Jane Doe"
	TestMovieGenre       = "Drama"
)
