package jwtx

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("jwtx: invalid token")

// Verifier validates EdDSA-signed access tokens and returns their claims.
type Verifier struct {
	pub    ed25519.PublicKey
	issuer string
}

func NewVerifier(pub ed25519.PublicKey, issuer string) *Verifier {
	return &Verifier{pub: pub, issuer: issuer}
}

// Verify parses and validates a compact serialized JWT. It checks the
// signature, algorithm, expiry and issuer.
func (v *Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return v.pub, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
