package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

const principalKey = "principal"

// Authenticate resolves the Authorization header into a Principal and stores
// it in the gin context. Requests without a resolvable principal never reach
// the handlers.
func Authenticate(authUseCase usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authUseCase.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireCapability gates a route group on one capability of the resolved
// principal. Must run after Authenticate.
func RequireCapability(capability entities.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFrom(c)
		if !principal.Has(capability) {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "No tiene permisos para acceder a este recurso", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by Authenticate. The zero value
// is returned on routes that skipped authentication.
func PrincipalFrom(c *gin.Context) entities.Principal {
	value, ok := c.Get(principalKey)
	if !ok {
		return entities.Principal{}
	}
	principal, ok := value.(entities.Principal)
	if !ok {
		return entities.Principal{}
	}
	return principal
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("UNAVAILABLE", "El servicio de datos no respondió a tiempo, intente nuevamente", http.StatusServiceUnavailable, err)
	case errors.Is(err, usecase.ErrMissingToken):
		return pkg.NewDomainErrorSimple("MISSING_TOKEN", "Falta el token de autorización", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Token inválido o expirado", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuario no registrado en la plataforma", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserInactive):
		return pkg.NewDomainErrorSimple("USER_INACTIVE", "Usuario desactivado", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al autenticar", http.StatusInternalServerError, err)
	}
}
