package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testStore() *Store {
	return NewStore(StoreConfig{TTL: time.Hour})
}

func contextWithCookies(t *testing.T, cookies []*http.Cookie) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c
}

// loginCookies runs Login on a throwaway response and returns the
// cookies a browser would hold afterwards.
func loginCookies(t *testing.T, store *Store, token string, profile Profile) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	store.Login(c, token, profile)
	return w.Result().Cookies()
}

func TestLoginThenLoadReturnsSameSession(t *testing.T) {
	store := testStore()
	profile := Profile{ID: "u-1", Username: "ana", Role: RoleSeller, Approved: true}

	cookies := loginCookies(t, store, "tok-123", profile)
	require.Len(t, cookies, 2)

	sess := store.Load(contextWithCookies(t, cookies))
	assert.Equal(t, "tok-123", sess.Token)
	require.NotNil(t, sess.Profile)
	assert.Equal(t, profile, *sess.Profile)
	assert.True(t, sess.LoggedIn())
	assert.Equal(t, RoleSeller, sess.Role())
}

func TestLogoutExpiresBothCookies(t *testing.T) {
	store := testStore()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

	store.Logout(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := testStore()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)

	store.Logout(c)
	store.Logout(c)

	sess := store.Load(contextWithCookies(t, nil))
	assert.False(t, sess.LoggedIn())
	assert.Nil(t, sess.Profile)
}

func TestLoadWithoutCookiesIsLoggedOut(t *testing.T) {
	sess := testStore().Load(contextWithCookies(t, nil))
	assert.False(t, sess.LoggedIn())
	assert.Equal(t, RoleUnknown, sess.Role())
}

func TestLoadCorruptProfileFailsSafe(t *testing.T) {
	store := testStore()
	cookies := []*http.Cookie{
		{Name: "artisan_token", Value: "tok-123"},
		{Name: "artisan_user", Value: "%%%not-base64%%%"},
	}

	sess := store.Load(contextWithCookies(t, cookies))
	assert.Equal(t, "tok-123", sess.Token)
	assert.Nil(t, sess.Profile)
	assert.Equal(t, RoleUnknown, sess.Role())
}

func TestLoadCorruptProfileJSONFailsSafe(t *testing.T) {
	store := testStore()
	// Valid base64 wrapping invalid JSON.
	cookies := []*http.Cookie{
		{Name: "artisan_token", Value: "tok-123"},
		{Name: "artisan_user", Value: "bm90LWpzb24"},
	}

	sess := store.Load(contextWithCookies(t, cookies))
	assert.Equal(t, "tok-123", sess.Token)
	assert.Nil(t, sess.Profile)
}

func TestLoadProfileWithoutTokenIsLoggedOut(t *testing.T) {
	store := testStore()
	cookies := loginCookies(t, store, "tok-123", Profile{ID: "u-1", Role: RoleCustomer})

	var withoutToken []*http.Cookie
	for _, ck := range cookies {
		if ck.Name != "artisan_token" {
			withoutToken = append(withoutToken, ck)
		}
	}

	sess := store.Load(contextWithCookies(t, withoutToken))
	assert.False(t, sess.LoggedIn())
	assert.Nil(t, sess.Profile)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoadExpiredJWTTreatedAsAbsent(t *testing.T) {
	store := testStore()
	cookies := loginCookies(t, store, signedToken(t, time.Now().Add(-time.Minute)),
		Profile{ID: "u-1", Role: RoleCustomer})

	sess := store.Load(contextWithCookies(t, cookies))
	assert.False(t, sess.LoggedIn())
}

func TestLoadLiveJWTAccepted(t *testing.T) {
	store := testStore()
	cookies := loginCookies(t, store, signedToken(t, time.Now().Add(time.Hour)),
		Profile{ID: "u-1", Role: RoleCustomer})

	sess := store.Load(contextWithCookies(t, cookies))
	assert.True(t, sess.LoggedIn())
}

func TestLoadOpaqueTokenAccepted(t *testing.T) {
	// Tokens that are not JWTs pass through without an expiry check.
	store := testStore()
	cookies := loginCookies(t, store, "opaque-bearer-credential", Profile{ID: "u-1", Role: RoleCustomer})

	sess := store.Load(contextWithCookies(t, cookies))
	assert.True(t, sess.LoggedIn())
}
