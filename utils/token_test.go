package utils

import (
	"context"
	"sync"
	"testing"
	"time"

	"maxcleaners/config"
	"maxcleaners/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenTest(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
	Blacklist = NewMemoryTokenStore()
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupTokenTest(t)

	token, err := GenerateToken("5551234567")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5551234567", claims.PhoneNumber)
}

func TestValidateTokenFailures(t *testing.T) {
	setupTokenTest(t)

	t.Run("garbage token is malformed", func(t *testing.T) {
		_, err := ValidateToken("not.a.token")
		assert.ErrorIs(t, err, models.ErrTokenMalformed)
	})

	t.Run("wrong signature is malformed", func(t *testing.T) {
		token, err := GenerateToken("5551234567")
		require.NoError(t, err)

		config.AppConfig.JWTSecret = "different-secret"
		_, err = ValidateToken(token)
		assert.ErrorIs(t, err, models.ErrTokenMalformed)
		config.AppConfig.JWTSecret = "test-secret"
	})

	t.Run("expired token", func(t *testing.T) {
		config.AppConfig.JWTExpiry = "-1h"
		token, err := GenerateToken("5551234567")
		require.NoError(t, err)
		config.AppConfig.JWTExpiry = "1h"

		_, err = ValidateToken(token)
		assert.ErrorIs(t, err, models.ErrTokenExpired)
	})
}

func TestExtractPhoneNumber(t *testing.T) {
	setupTokenTest(t)

	token, err := GenerateToken("5559876543")
	require.NoError(t, err)

	phone, err := ExtractPhoneNumber(token)
	require.NoError(t, err)
	assert.Equal(t, "5559876543", phone)

	_, err = ExtractPhoneNumber("junk")
	assert.ErrorIs(t, err, models.ErrTokenMalformed)
}

func TestRevokeToken(t *testing.T) {
	setupTokenTest(t)

	token, err := GenerateToken("5551234567")
	require.NoError(t, err)

	require.NoError(t, RevokeToken(token))

	t.Run("revoked token fails validation", func(t *testing.T) {
		_, err := ValidateToken(token)
		assert.ErrorIs(t, err, models.ErrTokenRevoked)
	})

	t.Run("second revoke is a conflict", func(t *testing.T) {
		err := RevokeToken(token)
		assert.ErrorIs(t, err, models.ErrAlreadyRevoked)
	})

	t.Run("expired token cannot be revoked", func(t *testing.T) {
		config.AppConfig.JWTExpiry = "-1h"
		expired, err := GenerateToken("5551234567")
		require.NoError(t, err)
		config.AppConfig.JWTExpiry = "1h"

		assert.ErrorIs(t, RevokeToken(expired), models.ErrTokenExpired)
	})
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	ctx := context.Background()

	t.Run("entries expire with their token", func(t *testing.T) {
		require.NoError(t, store.Revoke(ctx, "stale", time.Now().Add(-time.Minute)))
		assert.False(t, store.IsRevoked(ctx, "stale"))
	})

	t.Run("concurrent revokes yield exactly one success", func(t *testing.T) {
		const workers = 16
		var wg sync.WaitGroup
		var mu sync.Mutex
		successes := 0

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if store.Revoke(ctx, "contested", time.Now().Add(time.Hour)) == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.True(t, store.IsRevoked(ctx, "contested"))
	})
}
