package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JwtService signs the short-lived bearer tokens sent to the e-signature API.
type JwtService interface {
	NewToken() (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	accessKey string
	secretKey string
	ttl       time.Duration
}

func New(accessKey, secretKey string, ttl time.Duration) JwtService {
	return &Jwt{accessKey, secretKey, ttl}
}

// NewToken issues an HS256 token identifying the caller by its access key.
func (j *Jwt) NewToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    j.accessKey,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = j.accessKey
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("can't sign access token: %w", err)
	}
	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(jwtStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(j.accessKey))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}
	return token, nil
}
