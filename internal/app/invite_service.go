package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

// ErrInvalidInvite covers expired, malformed and mis-signed invite tokens.
var ErrInvalidInvite = errors.New("invalid invite token")

// InviteService issues and checks signed invite tokens for private tables.
type InviteService struct {
	secret string
	issuer string
	ttl    time.Duration
}

func NewInviteService(secret, issuer string, ttl time.Duration) *InviteService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &InviteService{secret: secret, issuer: issuer, ttl: ttl}
}

// GenerateToken signs an invite for the given match on behalf of a user.
func (s *InviteService) GenerateToken(matchID, user string) (string, error) {
	if s == nil || s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("invite config is incomplete")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if user == "" {
		return "", fmt.Errorf("user is required")
	}
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": user,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(s.ttl).Unix(),
		"mid": matchID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// MatchIDFromToken checks the signature and expiry of an invite token and
// returns the match it opens.
func (s *InviteService) MatchIDFromToken(tokenString string) (string, error) {
	if s == nil || s.secret == "" {
		return "", fmt.Errorf("invite config is incomplete")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidInvite
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidInvite
	}
	if iss, _ := claims["iss"].(string); iss != s.issuer {
		return "", ErrInvalidInvite
	}
	matchID, _ := claims["mid"].(string)
	if matchID == "" {
		return "", ErrInvalidInvite
	}
	return matchID, nil
}
