package identity

import "github.com/golang-jwt/jwt/v5"

// Claims полезная нагрузка access токена Supabase
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Identity проверенный пользователь
type Identity struct {
	UserID string
	Email  string
}
