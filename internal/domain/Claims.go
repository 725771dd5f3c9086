package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos nos tokens de acesso
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Claims representa o conteúdo de um token de acesso administrativo
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
