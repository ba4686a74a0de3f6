package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the bearer tokens that protect the API when
// an auth secret is configured. Tokens identify a calling service, not a
// person; there is no user store behind this API.
type Service interface {
	GenerateServiceToken(subject string) (token string, expiresAt int64, err error)
	ValidateServiceToken(tokenString string) (subject string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expiration time.Duration) Service {
	return &JWTService{
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateServiceToken(subject string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.expiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"type": "service",
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateServiceToken(tokenString string) (subject string, err error) {
	// VerifyToken validates claims (expiry in particular) on top of the
	// signature check that Decode performs.
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "service" {
		return "", jwt.ErrInvalidJWT()
	}

	return token.Subject(), nil
}
