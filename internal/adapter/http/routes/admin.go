package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middleware.RequireCapability(entities.CapAdmin))
	{
		admin.POST("/sync-users", adminHandler.SyncUsers)
	}
}
