package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushelp/helpdesk/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	if cfg.Web.TemplatesGlob != "" {
		router.LoadHTMLGlob(cfg.Web.TemplatesGlob)
		router.GET("/", handler.Home)
	}
	if cfg.Web.StaticDir != "" {
		router.Static("/static", cfg.Web.StaticDir)
	}
	router.GET("/qr", handler.QR)

	api := router.Group("/api/v1")
	{
		api.POST("/ask", handler.Ask)
		api.GET("/trending", handler.Trending)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
