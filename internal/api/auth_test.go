package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantrypal/internal/common"
)

func TestAuthClient_Login_SendsFormEncodedGrant(t *testing.T) {
	var gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"T1","token_type":"bearer"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	token, err := c.Login(context.Background(), "a@b.com", "pw123")
	require.NoError(t, err)

	assert.Equal(t, "T1", token)
	assert.Equal(t, "/auth/login", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	// The email travels in the form field literally named "username".
	assert.Equal(t, "password=pw123&username=a%40b.com", gotBody)
}

func TestAuthClient_Login_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthClient_Login_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@b.com", "pw123")
	require.Error(t, err)
}

func TestAuthClient_Login_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "a@b.com", "pw123")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestAuthClient_Register_SendsJSONBody(t *testing.T) {
	var gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"id":1,"email":"a@b.com","username":"a"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	require.NoError(t, c.Register(context.Background(), "a@b.com", "a", "pw123"))

	assert.Equal(t, "/auth/register", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"email":"a@b.com","username":"a","password":"pw123"}`, gotBody)
}

func TestAuthClient_Register_DuplicateAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	err := c.Register(context.Background(), "a@b.com", "a", "pw123")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Email already registered", statusErr.Detail)
}

func TestAuthClient_CurrentUser(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/auth/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"email":"a@b.com","username":"a","created_at":"2026-01-02T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	id, err := c.CurrentUser(context.Background(), "T1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer T1", gotAuth)
	assert.Equal(t, 7, id.ID)
	assert.Equal(t, "a@b.com", id.Email)
}

func TestAuthClient_CurrentUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewAuthClient(srv.URL, time.Second)
	_, err := c.CurrentUser(context.Background(), "Texpired")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}
