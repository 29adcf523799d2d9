package rest

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter - registers the game endpoints.
func NewRouter(logger *slog.Logger, uGame uGame) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	h := newHandlers(logger, uGame)

	r.GET("/ping", h.ping)

	r.POST("/games", h.newGame)
	r.GET("/games/:id", h.getGame)
	r.POST("/games/:id/turn", h.makeTurn)

	r.POST("/analyse", h.analyse)

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "http")

	return func(c *gin.Context) {
		c.Next()

		log.Debug("request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
		)
	}
}
