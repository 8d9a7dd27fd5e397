package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate(testSecret, "u-1", "ana@x.com", "tienda-api", 60)
	require.NoError(t, err)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "tienda-api", claims.Issuer)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := generateAt(time.Now().Add(-2*time.Hour), testSecret, "u-1", "a@x.com", "i", 60)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	require.Error(t, err)
	assert.True(t, IsExpired(err))
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("otro", "u-1", "a@x.com", "i", 60)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	require.Error(t, err)
	assert.False(t, IsExpired(err))
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u", "e", "i", 1)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Parse("", "x.y.z")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
