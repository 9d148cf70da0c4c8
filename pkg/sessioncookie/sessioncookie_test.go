package sessioncookie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "salesify-dashboard-test"
)

func TestIssueAndParse(t *testing.T) {
	value, err := Issue(testSecret, testIssuer, 60, "api-token-abc", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, value)

	token, role, err := Parse(testSecret, value)
	require.NoError(t, err)
	assert.Equal(t, "api-token-abc", token)
	assert.Equal(t, "manager", role)
}

func TestParse_CookieExpirada(t *testing.T) {
	value, err := Issue(testSecret, testIssuer, -1, "api-token", "admin")
	require.NoError(t, err)

	_, _, err = Parse(testSecret, value)
	assert.Error(t, err, "cookie vencida debe rechazarse")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	value, err := Issue(testSecret, testIssuer, 60, "api-token", "admin")
	require.NoError(t, err)

	_, _, err = Parse("otro-secret-completamente-distinto", value)
	assert.Error(t, err, "firma con otro secret debe invalidar la cookie")
}

func TestParse_ValorMalformado(t *testing.T) {
	_, _, err := Parse(testSecret, "no.es.un.jwt")
	assert.Error(t, err)
}

func TestIssue_SecretVacio(t *testing.T) {
	_, err := Issue("", testIssuer, 60, "tok", "admin")
	assert.Error(t, err)
}
