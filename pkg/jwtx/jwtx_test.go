package jwtx_test

import (
	"testing"
	"time"

	"github.com/consultbase/leadsvc/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(
		"user-123", "user@example.com", "Test User",
		"leads-auth", time.Hour, time.Now().UTC(),
	)

	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := signer.Verifier("leads-auth").Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "user@example.com", got.Email)
	require.Equal(t, "Test User", got.Name)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	a, err := jwtx.NewEphemeralSigner("a")
	require.NoError(t, err)
	b, err := jwtx.NewEphemeralSigner("b")
	require.NoError(t, err)

	raw, err := a.Sign(jwtx.NewAccessClaims(
		"user-123", "", "", "leads-auth", time.Hour, time.Now().UTC(),
	))
	require.NoError(t, err)

	_, err = b.Verifier("leads-auth").Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)

	raw, err := signer.Sign(jwtx.NewAccessClaims(
		"user-123", "", "", "leads-auth", time.Hour, time.Now().UTC().Add(-2*time.Hour),
	))
	require.NoError(t, err)

	_, err = signer.Verifier("leads-auth").Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)

	raw, err := signer.Sign(jwtx.NewAccessClaims(
		"user-123", "", "", "someone-else", time.Hour, time.Now().UTC(),
	))
	require.NoError(t, err)

	_, err = signer.Verifier("leads-auth").Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}
