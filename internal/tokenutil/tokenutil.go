package tokenutil

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/olprod/olprod-backend/domain"
)

type AccessClaims struct {
	ArtistName string `json:"name"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

func CreateAccessToken(user *domain.User, secret string, expiry time.Duration) (string, error) {
	claims := &AccessClaims{
		ArtistName: user.ArtistName,
		Email:      user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ExtractIDFromToken verifies the signature and returns the user id the
// token was minted for.
func ExtractIDFromToken(requestToken, secret string) (string, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Subject, nil
}
