//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := h.cfg.TokenDuration()
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) Admin(t *testing.T) string {
	t.Helper()
	token, err := h.service(t).GenerateToken(nil, jwt.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) Member(t *testing.T, memberID int64) string {
	t.Helper()
	token, err := h.service(t).GenerateToken(&memberID, jwt.RoleMember)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) Agent(t *testing.T, memberID int64) string {
	t.Helper()
	token, err := h.service(t).GenerateToken(&memberID, jwt.RoleAgent)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) Expired(t *testing.T, memberID int64) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(&memberID, jwt.RoleMember)
	require.NoError(t, err)
	return token
}
