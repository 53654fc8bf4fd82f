package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints EdDSA-signed access tokens. One static key pair is enough for
// this service; verification happens in-process with the matching Verifier.
type Signer struct {
	priv ed25519.PrivateKey
	kid  string
}

// NewSigner wraps an existing Ed25519 private key.
func NewSigner(priv ed25519.PrivateKey, kid string) (*Signer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid ed25519 private key size")
	}
	return &Signer{priv: priv, kid: kid}, nil
}

// NewEphemeralSigner generates a fresh key pair. Tokens do not survive a
// restart; fine for dev and tests.
func NewEphemeralSigner(kid string) (*Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	return &Signer{priv: priv, kid: kid}, nil
}

// LoadSignerFromSeedFile reads a 32-byte Ed25519 seed from path. Used in
// deployments where tokens must survive restarts.
func LoadSignerFromSeedFile(path, kid string) (*Signer, error) {
	seed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jwtx: read seed file: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("jwtx: seed file must be exactly %d bytes", ed25519.SeedSize)
	}
	return &Signer{priv: ed25519.NewKeyFromSeed(seed), kid: kid}, nil
}

// Sign produces a compact serialized JWT for the given claims.
func (s *Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	if s.kid != "" {
		token.Header["kid"] = s.kid
	}
	return token.SignedString(s.priv)
}

// Public returns the verification key matching this signer.
func (s *Signer) Public() ed25519.PublicKey {
	return s.priv.Public().(ed25519.PublicKey)
}

// Verifier returns a Verifier bound to this signer's public key.
func (s *Signer) Verifier(issuer string) *Verifier {
	return NewVerifier(s.Public(), issuer)
}
