package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theatre-booking/internal/auth"
)

func issueCookie(t *testing.T, sessions *auth.Sessions, userID int64, isAdmin bool) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(rec, userID, isAdmin))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSessionRoundTrip(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	cookie := issueCookie(t, sessions, 5, true)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)

	sess, ok := sessions.Read(req)
	require.True(t, ok)
	assert.Equal(t, int64(5), sess.UserID)
	assert.True(t, sess.IsAdmin)
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	cookie := issueCookie(t, auth.NewSessions("secret-one", time.Hour), 5, false)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)

	_, ok := auth.NewSessions("secret-two", time.Hour).Read(req)
	assert.False(t, ok)
}

func TestSessionRejectsExpired(t *testing.T) {
	sessions := auth.NewSessions("test-secret", -time.Minute)
	cookie := issueCookie(t, sessions, 5, false)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)

	_, ok := sessions.Read(req)
	assert.False(t, ok)
}

func TestSessionMissingCookie(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	_, ok := sessions.Read(req)
	assert.False(t, ok)
}

func TestSessionClear(t *testing.T) {
	sessions := auth.NewSessions("test-secret", time.Hour)

	rec := httptest.NewRecorder()
	sessions.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
