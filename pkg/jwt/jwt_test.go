package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "inventario-test"
)

func TestGenerateYParse(t *testing.T) {
	tok, exp, err := Generate(testSecret, "uid-1", "ana@example.com", testIssuer, 60)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	claims, err := Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, _, err := Generate(testSecret, "uid-1", "", testIssuer, 60)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, _, err := Generate(testSecret, "uid-1", "", testIssuer, -5)
	require.NoError(t, err)

	_, err = Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, _, err := Generate(testSecret, "uid-1", "", "otro", 60)
	require.NoError(t, err)

	_, err = Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, _, err := Generate("", "uid-1", "", testIssuer, 60)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Parse("", testIssuer, "x")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
