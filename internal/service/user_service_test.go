package service_test

import (
	"testing"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDeleteSelf(t *testing.T) {
	e := newTestEnv(t)
	admin := e.seedUser(t, "admin@inventory.com", model.RoleAdmin)

	err := e.userSvc.Delete(admin.ID, admin.ID)
	assert.ErrorIs(t, err, service.ErrSelfDelete)
}

func TestUserDeleteOther(t *testing.T) {
	e := newTestEnv(t)
	admin := e.seedUser(t, "admin@inventory.com", model.RoleAdmin)
	other := e.seedUser(t, "john@example.com", model.RoleUser)

	require.NoError(t, e.userSvc.Delete(other.ID, admin.ID))

	_, err := e.userSvc.Get(other.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUserUpdateRole(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "john@example.com", model.RoleUser)

	role := model.RoleAdmin
	updated, err := e.userSvc.Update(user.ID, &service.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, "john@example.com", updated.Email)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "admin@inventory.com", model.RoleAdmin)
	user := e.seedUser(t, "john@example.com", model.RoleUser)

	email := "admin@inventory.com"
	_, err := e.userSvc.Update(user.ID, &service.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestUserUpdateRejectsBadRole(t *testing.T) {
	e := newTestEnv(t)
	user := e.seedUser(t, "john@example.com", model.RoleUser)

	role := "superadmin"
	_, err := e.userSvc.Update(user.ID, &service.UpdateUserRequest{Role: &role})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUserGetUnknown(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.userSvc.Get(uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
