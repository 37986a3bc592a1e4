package routes

import (
	"time"

	"commuterhub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, ah *handlers.AssistantHandler, rh *handlers.ReservationsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		assistantAPI := api.Group("/assistant")
		{
			assistantAPI.POST("/session", ah.OpenSession)
			assistantAPI.POST("/chat", ah.Chat)
		}

		api.GET("/reservations", rh.GetReservations)
		api.GET("/resources", rh.GetResources)

		availability := api.Group("/availability")
		{
			availability.GET("/locker/:number", rh.CheckLocker)
			availability.GET("/rack/:number", rh.CheckRack)
			availability.GET("/slot", rh.CheckSlot)
		}
	}
}
