package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

// ContactHandler handles HTTP requests for installation contact directories.

type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// ByInstallation lists the active contacts of one visible installation.
func (h *ContactHandler) ByInstallation(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	installationRole := c.Param("instalacion_rol")

	contacts, err := h.usecase.ByInstallation(c.Request.Context(), principal.Email, installationRole)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContacts(installationRole, contacts))
}

// PeerClients lists tenant-side accounts sharing installations with the
// requested email. Non-admins may only ask about themselves.
func (h *ContactHandler) PeerClients(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	targetEmail := c.Param("email")

	contacts, err := h.usecase.PeerClients(c.Request.Context(), principal, targetEmail)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientContacts(contacts))
}

// WFSAUsers lists the operator accounts assigned to one installation.
func (h *ContactHandler) WFSAUsers(c *gin.Context) {
	installationRole := c.Param("instalacion_rol")

	users, err := h.usecase.WFSAUsersForInstallation(c.Request.Context(), installationRole)
	if err != nil {
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWFSAUsers(users))
}

func mapContactError(err error) *pkg.AppError {
	if appErr := storeUnavailable(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrForeignContacts):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "No puede ver los contactos de otro usuario", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al consultar contactos", http.StatusInternalServerError, err)
	}
}
