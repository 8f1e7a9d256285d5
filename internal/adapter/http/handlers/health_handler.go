package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers liveness probes. No dependencies are touched.

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "consultas-app-cliente",
	})
}
