package service

import (
	"context"
	"net/http"
	"testing"

	"arogya-storefront/internal/api"
	"arogya-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Login(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK,
		`{"token":"tok-xyz","user":{"_id":"u1","name":"Asha","mobile":"9876543210"}}`)
	svc := NewUserService(newAPIClient(server, ""), zerolog.Nop())

	session, err := svc.Login(context.Background(), "9876543210", "secret")
	require.NoError(t, err)
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/users/login", req.Path)
	assert.JSONEq(t, `{"mobile":"9876543210","password":"secret"}`, string(req.Body))
	assert.Empty(t, req.Auth, "login itself is unauthenticated")

	assert.Equal(t, "tok-xyz", session.Token)
	assert.Equal(t, "u1", session.User.ID)
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusUnauthorized, `{"error":"UNAUTHORIZED","message":"wrong password"}`)
	svc := NewUserService(newAPIClient(server, ""), zerolog.Nop())

	session, err := svc.Login(context.Background(), "9876543210", "nope")
	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, api.IsUnauthorized(err))
}

func TestUserService_Register_MapsEmailField(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK,
		`{"token":"tok-new","user":{"_id":"u2","name":"Ravi"}}`)
	svc := NewUserService(newAPIClient(server, ""), zerolog.Nop())

	session, err := svc.Register(context.Background(), model.RegisterInput{
		Name:     "Ravi",
		Mobile:   "9123456789",
		Password: "secret",
		Email:    "ravi@example.com",
	})
	require.NoError(t, err)
	require.Len(t, *requests, 1)

	// The API expects "emailAddress", not "email".
	assert.JSONEq(t,
		`{"name":"Ravi","mobile":"9123456789","password":"secret","emailAddress":"ravi@example.com"}`,
		string((*requests)[0].Body))
	assert.Equal(t, "tok-new", session.Token)
}

func TestUserService_Me_UsesStoredToken(t *testing.T) {
	server, requests := newRecordingServer(t, http.StatusOK, `{"_id":"u1","name":"Asha","role":"customer"}`)
	svc := NewUserService(newAPIClient(server, "tok-xyz"), zerolog.Nop())

	user, err := svc.Me(context.Background())
	require.NoError(t, err)
	require.Len(t, *requests, 1)
	assert.Equal(t, "Bearer tok-xyz", (*requests)[0].Auth)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, model.RoleCustomer, user.Role)
}
