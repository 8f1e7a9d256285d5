package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

// AdminHandler handles operator-only maintenance endpoints.

type AdminHandler struct {
	usecase usecase.ISyncUseCase
}

func NewAdminHandler(uc usecase.ISyncUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// SyncUsers mirrors every active account into the profile document store.
// Per-account failures are collected, not fatal.
func (h *AdminHandler) SyncUsers(c *gin.Context) {
	result, err := h.usecase.SyncUsers(c.Request.Context())
	if err != nil {
		appErr := storeUnavailable(err)
		if appErr == nil {
			appErr = pkg.NewDomainError("INTERNAL_ERROR", "Error interno al sincronizar usuarios", http.StatusInternalServerError, err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSyncResult(result))
}
