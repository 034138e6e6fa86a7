package utils

import (
	"context"
	"errors"
	"time"

	"maxcleaners/config"
	"maxcleaners/models"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

func GenerateToken(phoneNumber string) (string, error) {
	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := Claims{
		PhoneNumber: phoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken checks signature, expiry and the revocation set, and
// returns the embedded claims when all three pass.
func ValidateToken(tokenStr string) (*Claims, error) {
	claims, err := parseClaims(tokenStr)
	if err != nil {
		return nil, err
	}
	if Blacklist.IsRevoked(context.Background(), tokenStr) {
		return nil, models.ErrTokenRevoked
	}
	return claims, nil
}

// ExtractPhoneNumber decodes the phone-number claim without verifying the
// token. Only for use after ValidateToken has passed in the same request.
func ExtractPhoneNumber(tokenStr string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return "", models.ErrTokenMalformed
	}
	return claims.PhoneNumber, nil
}

// RevokeToken blacklists a token until its natural expiry. An already
// blacklisted token yields models.ErrAlreadyRevoked so sign-out can report
// the conflict; an expired one yields models.ErrTokenExpired.
func RevokeToken(tokenStr string) error {
	ctx := context.Background()

	if Blacklist.IsRevoked(ctx, tokenStr) {
		return models.ErrAlreadyRevoked
	}

	claims, err := parseClaims(tokenStr)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return Blacklist.Revoke(ctx, tokenStr, expiresAt)
}

func parseClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrTokenMalformed
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.ErrTokenExpired
		}
		return nil, models.ErrTokenMalformed
	}
	if !token.Valid {
		return nil, models.ErrTokenMalformed
	}
	return claims, nil
}
