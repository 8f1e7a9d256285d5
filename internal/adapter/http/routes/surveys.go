package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

const PathSurveys = "/encuestas"

func addSurveyRoutes(rg *gin.RouterGroup, surveyHandler *handlers.SurveyHandler) {
	surveys := rg.Group(PathSurveys, middleware.RequireCapability(entities.CapViewSurveys))
	{
		surveys.GET("/mis-encuestas", surveyHandler.ListMine)
		surveys.GET("/:encuesta_id/preguntas", surveyHandler.Questions)
		surveys.POST("/:encuesta_id/responder", surveyHandler.Respond)
		surveys.GET("/:encuesta_id/respuestas", surveyHandler.Answers)
	}
}
