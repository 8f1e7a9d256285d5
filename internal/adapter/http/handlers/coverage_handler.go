package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

// CoverageHandler handles HTTP requests for coverage aggregates, shift-level
// detail and weekly history.

type CoverageHandler struct {
	usecase usecase.ICoverageUseCase
}

func NewCoverageHandler(uc usecase.ICoverageUseCase) *CoverageHandler {
	return &CoverageHandler{usecase: uc}
}

// General returns the tenant-wide aggregate over the caller's visible
// installations.
func (h *CoverageHandler) General(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	general, err := h.usecase.General(c.Request.Context(), principal.Email)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGeneralCoverage(general))
}

// ByInstallation returns one row per visible installation.
func (h *CoverageHandler) ByInstallation(c *gin.Context) {
	h.byInstallation(c, false)
}

// ByInstallationFast is the reduced-precision variant used by the mobile
// client's dashboard refresh.
func (h *CoverageHandler) ByInstallationFast(c *gin.Context) {
	h.byInstallation(c, true)
}

func (h *CoverageHandler) byInstallation(c *gin.Context, fast bool) {
	principal := middleware.PrincipalFrom(c)

	items, err := h.usecase.ByInstallation(c.Request.Context(), principal.Email, fast)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationCoverageItems(items, false, fast))
}

// ByService splits each installation by service type.
func (h *CoverageHandler) ByService(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	items, err := h.usecase.ByService(c.Request.Context(), principal.Email)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationCoverageItems(items, true, true))
}

// ShiftDetailAll returns shift-level rows plus shortfall windows for every
// visible installation.
func (h *CoverageHandler) ShiftDetailAll(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	details, err := h.usecase.ShiftDetailAll(c.Request.Context(), principal.Email)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationShiftDetails(details))
}

// ShiftDetail returns the shift-level rows of one installation.
func (h *CoverageHandler) ShiftDetail(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	installationRole := c.Param("instalacion_rol")

	detail, err := h.usecase.ShiftDetail(c.Request.Context(), principal.Email, installationRole)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationShiftDetail(detail))
}

// WeeklyHistory returns week-by-week aggregates over the requested window.
func (h *CoverageHandler) WeeklyHistory(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	days, appErr := parseDaysQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.WeeklyHistory(c.Request.Context(), principal.Email, days)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWeeklyCoverageItems(items, days))
}

// HistoryByInstallation returns week-by-week aggregates split per
// installation.
func (h *CoverageHandler) HistoryByInstallation(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	days, appErr := parseDaysQuery(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.usecase.HistoryByInstallation(c.Request.Context(), principal.Email, days)
	if err != nil {
		appErr := mapCoverageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationWeekItems(items, days))
}

// parseDaysQuery reads the optional dias query param. Zero means "use the
// configured default"; the use case fills it in.
func parseDaysQuery(c *gin.Context) (int, *pkg.AppError) {
	raw := c.Query("dias")
	if raw == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, pkg.NewDomainErrorSimple("INVALID_DAYS", "El parámetro dias debe ser un entero positivo", http.StatusBadRequest)
	}
	return days, nil
}

func mapCoverageError(err error) *pkg.AppError {
	if appErr := storeUnavailable(err); appErr != nil {
		return appErr
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al consultar cobertura", http.StatusInternalServerError, err)
}
