package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/request"
	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

var errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Cuerpo de notificación inválido", http.StatusBadRequest)

// NotificationHandler handles device token registration and push fan-outs.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// UpdateToken stores the caller's current device token.
func (h *NotificationHandler) UpdateToken(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var payload request.FCMTokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateDeviceToken(c.Request.Context(), principal.Email, payload.FCMToken); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TokenUpdateResponse{
		Success: true,
		Message: "Token actualizado correctamente",
	})
}

// SendMessageNotification queues a push fan-out to the other users of an
// installation. Delivery is asynchronous; the response only confirms the
// queueing.
func (h *NotificationHandler) SendMessageNotification(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var payload request.SendNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	dispatch, err := h.usecase.SendMessageNotification(
		c.Request.Context(),
		principal,
		payload.InstallationRole,
		payload.Title,
		payload.Body,
		payload.Data,
	)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotificationDispatch(dispatch))
}

func mapNotificationError(err error) *pkg.AppError {
	if appErr := storeUnavailable(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrEmptyDeviceToken):
		return pkg.NewDomainErrorSimple("EMPTY_TOKEN", "El token no puede estar vacío", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyTitle):
		return pkg.NewDomainErrorSimple("EMPTY_TITLE", "El título no puede estar vacío", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al procesar la notificación", http.StatusInternalServerError, err)
	}
}
