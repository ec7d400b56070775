package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// Issuer is the issuer claim stamped on every access token.
	Issuer = "barterhub"
	// AccessTokenDuration is the lifetime of an access token.
	AccessTokenDuration = 7 * 24 * time.Hour

	keyID = "v1"
)

// ClaimsMessage is the payload carried by an access token.
type ClaimsMessage struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a new access token for the user.
func GenerateAccessToken(userID int32, email string, secret string, expirationTime time.Time) (string, error) {
	claims := &ClaimsMessage{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatInt(int64(userID), 10),
			Audience:  jwt.ClaimStrings{"user.access-token"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = keyID
	return token.SignedString([]byte(secret))
}

// Authenticate validates a bearer token and returns the user id and email it names.
func Authenticate(authHeader, secret string) (int32, string, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, "", errors.New("missing access token")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &ClaimsMessage{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Name {
			return nil, errors.Errorf("unexpected access token signing method=%v, expect %v", t.Header["alg"], jwt.SigningMethodHS256)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", errors.Wrap(err, "invalid access token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 32)
	if err != nil {
		return 0, "", errors.Wrap(err, "malformed access token subject")
	}
	return int32(userID), claims.Email, nil
}
