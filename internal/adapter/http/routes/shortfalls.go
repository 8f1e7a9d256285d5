package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

const PathShortfalls = "/ppc"

func addShortfallRoutes(rg *gin.RouterGroup, shortfallHandler *handlers.ShortfallHandler) {
	ppc := rg.Group(PathShortfalls, middleware.RequireCapability(entities.CapViewCoverage))
	{
		ppc.GET("/total", shortfallHandler.Total)
		ppc.GET("/todas-instalaciones", shortfallHandler.AllInstallations)
		ppc.GET("/por-instalacion/:instalacion_rol", shortfallHandler.ByInstallation)
	}
}
