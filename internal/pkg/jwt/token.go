package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// Identity is the subject extracted from a verified credential
type Identity struct {
	UID         string
	PhoneNumber string
}

// GenerateToken issues an HS256 session token for the given subject
func GenerateToken(uid, role string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"uid":  uid,
		"role": role,
		"exp":  expiresAt,
		"iss":  cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// VerifyIDToken validates a bearer credential and yields the stable subject
// identifier plus the phone number bound to it. Invalid or expired tokens
// fail verification; no detail beyond the wrapped error leaves this package.
func VerifyIDToken(tokenString, secret string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, fmt.Errorf("token missing subject identifier")
	}

	phone, _ := claims["phone_number"].(string)

	return &Identity{UID: uid, PhoneNumber: phone}, nil
}

// ValidateToken validates a session token and returns the raw claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
