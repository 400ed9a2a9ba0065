package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub-io/deskhub-console/internal/models"
)

const userJSON = `{"id": 5, "username": "carol", "email": "carol@example.com", "role": "SUPPORT_AGENT", "active": true, "createdAt": "2025-01-02T10:00:00"}`

func TestAdminListUsers(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, "["+userJSON+"]")
	api := testClient(t, backend)

	users, err := api.Admin.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].Username)

	req := backend.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/admin/users", req.Path)
}

func TestAdminGetUser(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, userJSON)
	api := testClient(t, backend)

	user, err := api.Admin.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSupportAgent, user.Role)

	assert.Equal(t, "/admin/users/5", backend.last(t).Path)
}

func TestAdminCreateUser(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, userJSON)
	api := testClient(t, backend)

	username := "carol"
	email := "carol@example.com"
	password := "hunter2"
	role := models.RoleSupportAgent
	active := true

	_, err := api.Admin.CreateUser(context.Background(), &models.UserUpdate{
		Username: &username,
		Email:    &email,
		Password: &password,
		Role:     &role,
		Active:   &active,
	})
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/admin/users", req.Path)
	assert.JSONEq(t, `{"username":"carol","email":"carol@example.com","password":"hunter2","role":"SUPPORT_AGENT","active":true}`, req.Body)
}

func TestAdminUpdateUserSendsOnlyPresentFields(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, userJSON)
	api := testClient(t, backend)

	email := "carol@corp.example.com"
	active := false

	_, err := api.Admin.UpdateUser(context.Background(), 5, &models.UserUpdate{
		Email:  &email,
		Active: &active,
	})
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/admin/users/5", req.Path)
	assert.JSONEq(t, `{"email":"carol@corp.example.com","active":false}`, req.Body)
	assert.NotContains(t, req.Body, "username")
	assert.NotContains(t, req.Body, "password")
}

func TestAdminDeleteUser(t *testing.T) {
	backend := newFakeBackend(http.StatusNoContent, "")
	api := testClient(t, backend)

	require.NoError(t, api.Admin.DeleteUser(context.Background(), 5))

	req := backend.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/admin/users/5", req.Path)
}

func TestAdminListTickets(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, "["+ticketJSON+"]")
	api := testClient(t, backend)

	tickets, err := api.Admin.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 1)

	assert.Equal(t, "/admin/tickets", backend.last(t).Path)
}

func TestAdminForceUpdateStatus(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Admin.ForceUpdateStatus(context.Background(), 7, models.StatusClosed)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/admin/tickets/7/status", req.Path)
	assert.JSONEq(t, `{"status":"CLOSED"}`, req.Body)
}

func TestAdminForceAssign(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, ticketJSON)
	api := testClient(t, backend)

	_, err := api.Admin.ForceAssign(context.Background(), 7, 2)
	require.NoError(t, err)

	req := backend.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/admin/tickets/7/assign", req.Path)
	assert.JSONEq(t, `{"assigneeId":2}`, req.Body)
}

func TestAuthLogin(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `{"token":"jwt-here","username":"alice","email":"alice@example.com","role":"ADMIN","userId":1}`)
	api := testClient(t, backend)

	auth, err := api.Auth.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-here", auth.Token)
	assert.Equal(t, int64(1), auth.UserID)
	assert.Equal(t, models.RoleAdmin, auth.Role)

	req := backend.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/auth/login", req.Path)
	assert.JSONEq(t, `{"username":"alice","password":"secret"}`, req.Body)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	backend := newFakeBackend(http.StatusUnauthorized, `{"message":"Bad credentials"}`)
	api := testClient(t, backend)

	_, err := api.Auth.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Bad credentials", UserMessage(err, "fallback"))
}

func TestAuthRegister(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `{"token":"jwt-here","username":"dave","email":"dave@example.com","role":"USER","userId":9}`)
	api := testClient(t, backend)

	auth, err := api.Auth.Register(context.Background(), "dave", "dave@example.com", "secret", "Dave Lister")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, auth.Role)

	req := backend.last(t)
	assert.Equal(t, "/auth/register", req.Path)
	assert.JSONEq(t, `{"username":"dave","email":"dave@example.com","password":"secret","fullName":"Dave Lister"}`, req.Body)
}

func TestAuthRegisterOmitsEmptyFullName(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `{"token":"jwt-here","username":"dave","email":"dave@example.com","role":"USER","userId":9}`)
	api := testClient(t, backend)

	_, err := api.Auth.Register(context.Background(), "dave", "dave@example.com", "secret", "")
	require.NoError(t, err)

	assert.JSONEq(t, `{"username":"dave","email":"dave@example.com","password":"secret"}`, backend.last(t).Body)
}
