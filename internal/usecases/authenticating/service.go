package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/revenue-forecast-api/internal/config"
	"github.com/vfg2006/revenue-forecast-api/internal/domain"
)

// Códigos de erro expostos pela API
const (
	CodeInvalidToken          = "AUTH_006"
	CodeExpiredToken          = "AUTH_007"
	CodeInsufficientPrivilege = "AUTH_008"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	GenerateToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
		now:    time.Now,
	}
}

// GenerateToken emite um token HS256 para o papel informado. ttl <= 0 usa 24h.
func (s *Service) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}
	if role != domain.RoleAdmin && role != domain.RoleOperator {
		return "", NewAuthError(ErrInvalidRole, CodeInsufficientPrivilege, role)
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.TrimSpace(subject),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrInvalidToken, CodeInvalidToken, ErrMissingSecret.Error())
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, CodeExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, CodeInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, NewAuthError(ErrInvalidToken, CodeInvalidToken, "")
}
