package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

const PathMessaging = "/whatsapp"

func addMessagingRoutes(rg *gin.RouterGroup, messageHandler *handlers.MessageHandler) {
	whatsapp := rg.Group(PathMessaging)
	{
		whatsapp.POST("/enviar-mensaje",
			middleware.RequireCapability(entities.CapSendMessages), messageHandler.Send)
		whatsapp.GET("/mensajes-recibidos",
			middleware.RequireCapability(entities.CapViewReceivedMessages), messageHandler.Received)
	}
}
