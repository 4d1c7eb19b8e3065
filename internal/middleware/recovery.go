package middleware

import (
	"github.com/gin-gonic/gin"

	"frostwatch-srv/pkg/discord"
	"frostwatch-srv/pkg/log"
	"frostwatch-srv/pkg/response"
)

// Recovery converts handler panics into 500 responses and reports them.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
