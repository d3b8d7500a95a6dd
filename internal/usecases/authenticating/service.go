// Package authenticating controla o acesso de leitura ao dashboard: troca a
// chave de acesso configurada por um token JWT de curta duração.
package authenticating

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	// Login valida a chave de acesso e emite um token de visualização.
	Login(accessKey string) (string, error)

	// ValidateToken verifica assinatura e validade de um token emitido.
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

func (s *Service) Login(accessKey string) (string, error) {
	if s.cfg.Auth.AccessKeyHash == "" {
		return "", ErrAccessKeyNotSet
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AccessKeyHash), []byte(accessKey)); err != nil {
		return "", ErrInvalidAccessKey
	}

	now := time.Now()
	claims := &domain.Claims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "dashboard",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigning
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
