package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with middleware and routes
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/strategies", h.Strategies)
		api.POST("/solve", h.Solve)
		api.POST("/terms/:termID/solve", h.SolveTerm)
	}

	return r
}
