package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "multilingual-chat/internal/chat/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.indexFile != "" {
		srv.gin.StaticFile("/", srv.indexFile)
	}
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat domain registered under /api/v1")
}
