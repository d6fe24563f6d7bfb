package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultSessionTTL is the fixed lifetime of a session token.
const DefaultSessionTTL = 7 * 24 * time.Hour

const tokenIssuer = "gym-manager"

// ErrInvalidToken covers malformed, expired and foreign-secret tokens alike.
var ErrInvalidToken = errors.New("invalid or expired session token")

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(userID string) (token string, expiresAt time.Time, err error)
	Verify(token string) (userID string, err error)
	TTL() time.Duration
}

// sessionClaims is the token payload.
type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates an HS256 token service. A non-positive ttl falls
// back to DefaultSessionTTL.
func NewTokenService(secret string, ttl time.Duration) TokenService {
	if secret == "" {
		panic("JWT secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &jwtTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *jwtTokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for userID that expires after the configured TTL.
func (s *jwtTokenService) Issue(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("user ID is required to issue a token")
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm and expiry and returns the embedded user ID.
func (s *jwtTokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" || claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
