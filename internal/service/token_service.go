package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Formery/config"
	"github.com/lshigami/Formery/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// sessionTTL bounds how long a login cookie stays valid.
const sessionTTL = 7 * 24 * time.Hour

// Session identifies the logged-in user carried by a token.
type Session struct {
	UserID   uint
	Username string
}

// TokenService issues and parses the signed session tokens the server sets as
// an HttpOnly cookie. All gateway calls carry the session implicitly through
// that cookie.
type TokenService interface {
	Issue(user *model.User) (string, error)
	Parse(token string) (*Session, error)
}

type tokenService struct {
	secret []byte
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{secret: []byte(cfg.JWTSecret)}
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *tokenService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Parse(tokenString string) (*Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return nil, ErrInvalidToken
	}
	return &Session{UserID: userID, Username: claims.Username}, nil
}
