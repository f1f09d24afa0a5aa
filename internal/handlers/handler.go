package handlers

import (
	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

	_ "expense_tracker/docs"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	allowedOrigins []string
}

// Option customizes a Handler.
type Option func(*Handler)

// WithAllowedOrigins sets the CORS origins; "*" or an empty list allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestID, h.accessLog, gin.Recovery(), h.cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
	}
}
