package jwtutil

import (
	"time"

	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	signingKey = []byte("homebasesecretkey")
	expiration = 24 * time.Hour
)

// Initialize configures the signing key and token lifetime from config.
func Initialize(cfg *config.JWTConfig) {
	if cfg.SigningKey != "" {
		signingKey = []byte(cfg.SigningKey)
	}
	if cfg.ExpirationHours > 0 {
		expiration = time.Duration(cfg.ExpirationHours) * time.Hour
	}
}

// AdminClaims carries the reviewer identity embedded in issued tokens.
type AdminClaims struct {
	AdminID uint       `json:"admin_id"`
	Email   string     `json:"email"`
	Name    string     `json:"name"`
	Role    model.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for an authenticated admin account
func GenerateToken(admin *model.AdminUser) (string, error) {
	claims := AdminClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    admin.Name,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ValidateToken validates and parses the JWT token
func ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
