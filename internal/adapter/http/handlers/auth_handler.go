package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
)

// AuthHandler exposes the resolved caller. Resolution itself happens in the
// authentication middleware; this handler only renders the result.

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me returns the caller's identity, role and permission set.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	c.JSON(http.StatusOK, response.FromPrincipal(principal))
}
