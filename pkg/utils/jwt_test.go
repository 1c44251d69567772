package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := CreateToken("a@x.com", secret, 24*time.Hour)
		require.NoError(t, err)

		claims, err := ValidateToken(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := CreateToken("a@x.com", secret, 24*time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(token, []byte("other-secret"))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := CreateToken("a@x.com", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(token, secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ValidateToken("not-a-token", secret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
