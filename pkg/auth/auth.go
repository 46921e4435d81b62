// Package auth issues and verifies access tokens and hashes passwords
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/newsdesk/pkg/domain"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

// Claims are the access token claims
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 access tokens
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewService makes a token service, zero ttl means 24h
func NewService(secret string, ttl time.Duration, issuer string) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

// Token is an issued access token
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Issue makes a signed token for the user
func (s *Service) Issue(u *domain.User) (Token, error) {
	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Admin:    u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{AccessToken: signed, TokenType: "Bearer", ExpiresAt: exp}, nil
}

// Parse verifies a token and returns its claims. All failures wrap domain.ErrUnauthorized.
func (s *Service) Parse(token string) (*Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", domain.ErrUnauthorized)
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return s.secret, nil }, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	if !parsed.Valid || claims.UserID <= 0 {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}

// HashPassword makes a bcrypt hash, too short passwords are rejected
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", domain.Invalid("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BearerToken extracts the token from the Authorization header
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

type claimsKey struct{}

// WithClaims stores verified claims in the context
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFrom returns the claims stored by WithClaims
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}
