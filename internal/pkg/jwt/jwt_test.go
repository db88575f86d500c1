//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	t.Run("発行したトークンが検証できる", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		userID := uuid.New()

		token, err := svc.GenerateToken(userID, true)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("別のシークレットで署名したトークンは拒否される", func(t *testing.T) {
		token, err := jwt.NewService("secret-a", time.Hour).GenerateToken(uuid.New(), false)
		require.NoError(t, err)

		_, err = jwt.NewService("secret-b", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("期限切れトークンはErrExpiredToken", func(t *testing.T) {
		mock := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
		svc := jwt.NewServiceWithClock("secret", time.Hour, mock)

		token, err := svc.GenerateToken(uuid.New(), false)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("壊れたトークンはErrInvalidToken", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)

		_, err := svc.ValidateToken("garbage")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
