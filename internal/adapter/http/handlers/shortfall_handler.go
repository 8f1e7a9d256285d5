package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

// ShortfallHandler handles HTTP requests for staffing shortfall (PPC)
// queries.

type ShortfallHandler struct {
	usecase usecase.IShortfallUseCase
}

func NewShortfallHandler(uc usecase.IShortfallUseCase) *ShortfallHandler {
	return &ShortfallHandler{usecase: uc}
}

// Total returns the headline PPC count over the caller's installations.
func (h *ShortfallHandler) Total(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	total, err := h.usecase.Total(c.Request.Context(), principal.Email)
	if err != nil {
		appErr := mapShortfallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ShortfallTotalResponse{Total: total})
}

// AllInstallations returns per-shift PPC windows grouped by installation.
func (h *ShortfallHandler) AllInstallations(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	details, err := h.usecase.AllInstallations(c.Request.Context(), principal.Email)
	if err != nil {
		appErr := mapShortfallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAllInstallationShortfalls(details))
}

// ByInstallation returns the PPC windows of one installation.
func (h *ShortfallHandler) ByInstallation(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	installationRole := c.Param("instalacion_rol")

	detail, err := h.usecase.ByInstallation(c.Request.Context(), principal.Email, installationRole)
	if err != nil {
		appErr := mapShortfallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationShortfalls(detail))
}

func mapShortfallError(err error) *pkg.AppError {
	if appErr := storeUnavailable(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al consultar PPC", http.StatusInternalServerError, err)
}
