package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.GET("/me", authHandler.Me)
	}
}
