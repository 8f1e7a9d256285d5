package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
)

const PathNotifications = "/fcm"

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	fcm := rg.Group(PathNotifications)
	{
		fcm.POST("/update-token", notificationHandler.UpdateToken)
		fcm.POST("/send-message-notification", notificationHandler.SendMessageNotification)
	}
}
