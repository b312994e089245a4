package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artisanalley/web/internal/session"
)

const sessionKey = "current_session"

// RequireSession gates a route subtree on the presence of a session
// token. The store is read fresh on every request; the guard itself
// never writes cookies.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Load(c)
		if !sess.LoggedIn() {
			c.Redirect(http.StatusFound, session.PathLogin)
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireRoles additionally checks the session's canonical role against
// the allowed set. A token with a missing or corrupt profile carries
// RoleUnknown and is denied like any other mismatch.
func RequireRoles(store *session.Store, roles ...session.Role) gin.HandlerFunc {
	roleSet := make(map[session.Role]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := store.Load(c)
		if !sess.LoggedIn() {
			c.Redirect(http.StatusFound, session.PathLogin)
			c.Abort()
			return
		}

		if len(roleSet) > 0 {
			if _, ok := roleSet[sess.Role()]; !ok {
				c.Redirect(http.StatusFound, session.PathUnauthorized)
				c.Abort()
				return
			}
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session a guard stored for this request.
// Handlers outside a guarded subtree get a zero session.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{}
}
