//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"gym-reservation-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	memberID := int64(12)

	token, err := svc.GenerateToken(&memberID, jwt.RoleMember)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.MemberID)
	assert.Equal(t, memberID, *claims.MemberID)
	assert.Equal(t, jwt.RoleMember, claims.Role)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	token, err := svc.GenerateToken(nil, jwt.RoleAdmin)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := jwt.NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := jwt.NewService("secret", -time.Minute).GenerateToken(nil, jwt.RoleAdmin)
		require.NoError(t, err)
		_, err = svc.ValidateToken(expired)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.GenerateToken(nil, "root")
		assert.ErrorIs(t, err, jwt.ErrUnknownRole)
	})
}
