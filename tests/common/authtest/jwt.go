//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/pkg/config"
	"salon-queue/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, act actor.Actor) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(act.ID, act.Role, act.LocationID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) StaffToken(t *testing.T, locationID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, actor.Actor{ID: uuid.New(), Role: actor.RoleStaff, LocationID: locationID})
}

func (h *JWTHelper) OwnerToken(t *testing.T, locationID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, actor.Actor{ID: uuid.New(), Role: actor.RoleOwner, LocationID: locationID})
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, act actor.Actor) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(act.ID, act.Role, act.LocationID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
