package cryptox_test

import (
	"strings"
	"testing"

	"github.com/consultbase/leadsvc/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("Sup3rSecret!", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrPasswordMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("same")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	require.Error(t, cryptox.VerifyPassword("pw", "not-a-phc-string"))
	require.Error(t, cryptox.VerifyPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
}
