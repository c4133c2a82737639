package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	revokedKeyPrefix = "revoked_token:"
	minSecretLength  = 32
)

// TokenManager issues authentication tokens and resolves or revokes them.
type TokenManager interface {
	domain.IdentityProvider
	Issue(user *domain.User) (string, *domain.Identity, error)
	Revoke(ctx context.Context, identity *domain.Identity) error
}

// Claims is the payload carried by an authentication token.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider issues HS256 authentication tokens and resolves them back to identities.
// Revoked token ids are kept in Redis until the token would have expired anyway.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
	issuer string
	redis  redis.UniversalClient
}

func NewJWTProvider(secret string, ttl time.Duration, issuer string, client redis.UniversalClient) (*JWTProvider, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &JWTProvider{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		redis:  client,
	}, nil
}

func (p *JWTProvider) Issue(user *domain.User) (string, *domain.Identity, error) {
	now := time.Now()

	identity := &domain.Identity{
		UserID:    user.ID,
		Role:      user.Role,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(p.ttl).Truncate(time.Second),
	}

	claims := Claims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        identity.TokenID,
			Subject:   strconv.Itoa(user.ID),
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(identity.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, identity, nil
}

func (p *JWTProvider) Resolve(ctx context.Context, credential string) (*domain.Identity, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(credential, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID < 1 {
		return nil, fmt.Errorf("%w: malformed subject %q", domain.ErrInvalidCredential, claims.Subject)
	}

	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidCredential, claims.Role)
	}

	revoked, err := p.redis.Exists(ctx, revokedKey(claims.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked > 0 {
		return nil, fmt.Errorf("%w: token revoked", domain.ErrInvalidCredential)
	}

	return &domain.Identity{
		UserID:    userID,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke makes the identity's token unresolvable for the rest of its lifetime.
func (p *JWTProvider) Revoke(ctx context.Context, identity *domain.Identity) error {
	ttl := time.Until(identity.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	return p.redis.Set(ctx, revokedKey(identity.TokenID), identity.UserID, ttl).Err()
}

func revokedKey(tokenID string) string {
	return revokedKeyPrefix + tokenID
}
