package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Registers the Swagger docs via its init function.
	_ "frostwatch-srv/docs"

	"frostwatch-srv/internal/middleware"
	subscriptionHTTP "frostwatch-srv/internal/subscription/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.metrics, promhttp.HandlerOpts{})))
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := srv.gin.Group("/api")
	api.GET("/health", srv.healthCheck)

	h := subscriptionHTTP.New(srv.logger, srv.subUC, srv.digestUC)
	h.RegisterRoutes(api)

	return nil
}
