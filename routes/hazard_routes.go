package routes

import (
	"hazardwatch/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHazardRoutes mounts the hazard CRUD endpoints.
func SetupHazardRoutes(r *gin.RouterGroup, h *handlers.HazardHandler) {
	hazards := r.Group("/hazards")
	{
		hazards.GET("", h.ListHazards)
		hazards.GET("/:id", h.GetHazard)
		hazards.POST("", h.CreateHazard)
		hazards.PUT("/:id", h.UpdateHazard)
		hazards.DELETE("/:id", h.DeleteHazard)
	}
}
