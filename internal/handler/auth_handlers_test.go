package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registros/internal/session"
)

func TestSignupDuplicateUsername(t *testing.T) {
	creds := newFakeCredentialStore()
	require.NoError(t, creds.Create("ana", "pw1"))
	h := NewSignupHandler(creds)

	rec := postForm(t, h.Signup, "/signup", url.Values{
		"username": {"ana"}, "password": {"other"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")

	// The original credential is untouched.
	cred, err := creds.FindByUsername("ana")
	require.NoError(t, err)
	assert.True(t, creds.Verify("pw1", cred.PasswordHash))
}

func TestSignupStoresOnlyAHash(t *testing.T) {
	creds := newFakeCredentialStore()
	h := NewSignupHandler(creds)

	rec := postForm(t, h.Signup, "/signup", url.Values{
		"username": {"ana"}, "password": {"pw1"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	cred, err := creds.FindByUsername("ana")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.NotEqual(t, "pw1", cred.PasswordHash)
	assert.True(t, creds.Verify("pw1", cred.PasswordHash))
}

func TestLoginUnknownUserRendersInvalidMessage(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-key"))
	manager := session.NewManager()
	h := NewLoginHandler(newFakeCredentialStore(), manager, store)

	rec := postForm(t, h.Login, "/login", url.Values{
		"username": {"ghost"}, "password": {"pw"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user or password")
	assert.Equal(t, "", manager.ActiveUser())
}

func TestLoginWrongPasswordRendersInvalidMessage(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-key"))
	manager := session.NewManager()
	creds := newFakeCredentialStore()
	require.NoError(t, creds.Create("ana", "pw1"))
	h := NewLoginHandler(creds, manager, store)

	rec := postForm(t, h.Login, "/login", url.Values{
		"username": {"ana"}, "password": {"wrong"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user or password")
	assert.Equal(t, "", manager.ActiveUser())
}
