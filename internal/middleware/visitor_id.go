package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

const visitorCookie = "artisan_visitor"

// VisitorID tags every browser with a stable anonymous id so request
// logs can be correlated across a visit without a login.
func VisitorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || id == "" {
			id = ksuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   365 * 24 * 3600,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(visitorCookie, id)
		c.Next()
	}
}
