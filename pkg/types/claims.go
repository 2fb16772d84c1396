package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload carried through the gin context under "claims".
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
