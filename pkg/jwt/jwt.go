package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")

type TokenInfo struct {
	UserName string
	Subject  string
	TTL      time.Duration
}

// JWTService issues HS512 tokens for one issuer and accepts only those.
type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(jwtSecret []byte, issuer string) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		issuer: issuer,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	return jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"iss":      gen.issuer,
		"sub":      data.Subject,
		"iat":      now.Unix(),
		"exp":      now.Add(data.TTL).Unix(),
		"username": data.UserName,
	})
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, expiry and issuer and returns the claims.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, gen.key)
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenNotValid
	}

	if !claims.VerifyIssuer(gen.issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %v: %w", claims["iss"], ErrTokenNotValid)
	}

	return claims, nil
}

func (gen *JWTService) key(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return gen.secret, nil
}
