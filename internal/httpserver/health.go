package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frostwatch-srv/pkg/errors"
	"frostwatch-srv/pkg/response"
)

// healthCheck reports service health.
// @Summary Health Check
// @Description Check the service and its database connection
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.ErrorResp "Database unreachable"
// @Router /api/health [GET]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.dbPing(ctx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.healthCheck: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable,
			"Database connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "frostwatch-srv",
	})
}
