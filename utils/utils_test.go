package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "8.50", FormatCents(850))
	assert.Equal(t, "123.45", FormatCents(12345))
	assert.Equal(t, "-1.00", FormatCents(-100))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "manager")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "manager", claims.Role)
}

func TestTokenIdentityRejectsBadHeaders(t *testing.T) {
	id := TokenIdentity{}

	_, err := id.Resolve("")
	assert.Error(t, err)

	_, err = id.Resolve("Basic abc")
	assert.Error(t, err)

	_, err = id.Resolve("Bearer not-a-token")
	assert.Error(t, err)
}
