package auth

import (
	"crypto/rsa"
	"errors"

	"github.com/golang-jwt/jwt"
)

// KeyResolver maps a token key id to the identity provider's public key.
type KeyResolver interface {
	Resolve(kid string) (*rsa.PublicKey, error)
}

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.StandardClaims
}

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Verifier struct {
	issuer string
	keys   KeyResolver
}

func NewVerifier(issuer string, keys KeyResolver) *Verifier {
	return &Verifier{
		issuer: issuer,
		keys:   keys,
	}
}

// Verify checks the signature against the provider's JWKS keys and the issuer
// claim. Audience is not checked; the provider's dev tokens carry none.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("token has no key id")
		}
		return v.keys.Resolve(kid)
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.Issuer != v.issuer {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
