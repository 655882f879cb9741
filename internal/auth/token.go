package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims represents the identity claims carried in an access token
type TokenClaims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed bearer tokens
type TokenService interface {
	CreateToken(userID int64, email string) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// jwtCustomClaims is the wire format of the token payload
type jwtCustomClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService creates and validates HMAC-SHA256 signed JWTs
type JWTService struct {
	signingKey    []byte
	tokenDuration time.Duration
	timeFunc      func() time.Time // injectable for testing
}

var _ TokenService = (*JWTService)(nil)

func NewJWTService(signingKey []byte, tokenDuration time.Duration) *JWTService {
	return &JWTService{
		signingKey:    signingKey,
		tokenDuration: tokenDuration,
		timeFunc:      time.Now,
	}
}

// CreateToken generates a signed JWT with the given identity claims
func (s *JWTService) CreateToken(userID int64, email string) (string, error) {
	now := s.timeFunc()

	claims := jwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// VerifyToken validates a token's signature and expiry and returns its claims
func (s *JWTService) VerifyToken(tokenStr string) (*TokenClaims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return s.timeFunc() }),
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwtCustomClaims{},
		func(token *jwt.Token) (any, error) {
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
