package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as declarações transportadas no token de acesso do dashboard.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
