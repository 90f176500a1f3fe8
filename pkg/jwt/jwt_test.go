package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, expiresAt, err := m.GenerateToken("admin", []string{"product:create"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.HasPrivilege("product:create"))
	assert.False(t, claims.HasPrivilege("product:delete"))
}

func TestValidateRejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, _, err := m.GenerateToken("admin", nil)
	require.NoError(t, err)

	_, err = NewManager("other-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, _, err := m.GenerateToken("admin", nil)
	require.NoError(t, err)

	_, err = NewManager("secret", time.Minute).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
