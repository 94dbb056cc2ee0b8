package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/spendly/internal/pkg/models"
)

// Claims is the authenticated identity carried by a token
type Claims struct {
	UserID int64
	Email  string
}

// GenerateToken signs an HS256 token for the given user
func GenerateToken(userID int64, email string, cfg *models.Config) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies the signature and expiry of tokenString and
// returns its identity claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	// JSON numbers decode as float64
	rawID, ok := mapClaims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, errors.New("invalid token: missing user_id claim")
	}
	email, _ := mapClaims["email"].(string)

	return &Claims{UserID: int64(rawID), Email: email}, nil
}
