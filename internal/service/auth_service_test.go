package service_test

import (
	"testing"

	"stockroom/internal/model"
	"stockroom/internal/service"
	"stockroom/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	e := newTestEnv(t)

	user, err := e.authSvc.Signup(&service.SignupRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "Password123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "Password123", user.Password)

	resp, err := e.authSvc.Login(&service.LoginRequest{
		Email:    "john@example.com",
		Password: "Password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "john@example.com", resp.User.Email)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "john@example.com", model.RoleUser)

	_, err := e.authSvc.Signup(&service.SignupRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "Password123",
	})
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestSignupWeakPassword(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.authSvc.Signup(&service.SignupRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "alllowercase1",
	})
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoginWrongPassword(t *testing.T) {
	e := newTestEnv(t)
	e.seedUser(t, "john@example.com", model.RoleUser)

	_, err := e.authSvc.Login(&service.LoginRequest{
		Email:    "john@example.com",
		Password: "WrongPassword1",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.authSvc.Login(&service.LoginRequest{
		Email:    "ghost@example.com",
		Password: "Password123",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
