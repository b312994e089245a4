package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("error", r).
					Str("request_id", c.Writer.Header().Get(requestIDHeader)).
					Msg("panic recovered")
				c.Abort()
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Title":   "Something went wrong",
					"Message": "An unexpected error occurred. Please try again.",
				})
			}
		}()
		c.Next()
	}
}
