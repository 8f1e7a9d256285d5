package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

const (
	PathCoverageSnapshot = "/cobertura/instantanea"
	PathCoverageHistory  = "/cobertura/historico"
)

func addCoverageRoutes(rg *gin.RouterGroup, coverageHandler *handlers.CoverageHandler) {
	viewCoverage := middleware.RequireCapability(entities.CapViewCoverage)

	snapshot := rg.Group(PathCoverageSnapshot, viewCoverage)
	{
		snapshot.GET("/general", coverageHandler.General)
		snapshot.GET("/por-instalacion", coverageHandler.ByInstallation)
		snapshot.GET("/por-instalacion-fast", coverageHandler.ByInstallationFast)
		// The service-type split ships as a nested version; the mobile client
		// migrates screen by screen.
		snapshot.GET("/por-instalacion-fast/v2", coverageHandler.ByService)
		snapshot.GET("/detalle-todas", coverageHandler.ShiftDetailAll)
		snapshot.GET("/detalle/:instalacion_rol", coverageHandler.ShiftDetail)
	}

	history := rg.Group(PathCoverageHistory, viewCoverage)
	{
		history.GET("/semanal", coverageHandler.WeeklyHistory)
		history.GET("/por-instalacion", coverageHandler.HistoryByInstallation)
	}
}
