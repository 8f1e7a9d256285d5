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

var errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Cuerpo de mensaje inválido", http.StatusBadRequest)

// MessageHandler handles HTTP requests for WhatsApp-style messaging.

type MessageHandler struct {
	usecase usecase.IMessagingUseCase
}

func NewMessageHandler(uc usecase.IMessagingUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

// Send records one pending message per reachable contact of every selected
// installation.
func (h *MessageHandler) Send(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	sent, err := h.usecase.SendToInstallations(c.Request.Context(), principal, payload.Installations, payload.Message)
	if err != nil {
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SendMessagesResponse{
		Success:   true,
		Message:   "Mensajes registrados correctamente",
		TotalSent: len(sent),
	})
}

// Received lists the caller's inbound messages, newest first.
func (h *MessageHandler) Received(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	messages, err := h.usecase.ReceivedMessages(c.Request.Context(), principal.Email)
	if err != nil {
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceivedMessages(messages))
}

func mapMessageError(err error) *pkg.AppError {
	if appErr := storeUnavailable(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("EMPTY_MESSAGE", "El mensaje no puede estar vacío", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoInstallations):
		return pkg.NewDomainErrorSimple("NO_INSTALLATIONS", "Debe seleccionar al menos una instalación", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al enviar mensajes", http.StatusInternalServerError, err)
	}
}
