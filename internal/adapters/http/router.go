// Package http adapts the room service to its HTTP polling clients.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Poker/internal/app"
	"github.com/dkeye/Poker/internal/config"
)

func SetupRouter(cfg *config.Config, svc *app.RoomService) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	log.Info().Str("module", "adapters.http").Msg("router setup")

	ctrl := NewRoomController(svc)
	rooms := r.Group("/api/v1/rooms")
	rooms.POST("", ctrl.Create)
	rooms.POST("/:room_id/join", ctrl.Join)
	rooms.GET("/:room_id", ctrl.State)
	rooms.POST("/:room_id/vote", ctrl.Vote)
	rooms.POST("/:room_id/reveal", ctrl.Reveal)
	rooms.POST("/:room_id/reset", ctrl.Reset)

	return r
}
