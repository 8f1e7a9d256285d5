package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers"
)

const PathContacts = "/contactos"

func addContactRoutes(rg *gin.RouterGroup, contactHandler *handlers.ContactHandler) {
	contacts := rg.Group(PathContacts)
	{
		contacts.GET("/usuario/:email", contactHandler.PeerClients)
		contacts.GET("/:instalacion_rol", contactHandler.ByInstallation)
	}

	rg.GET("/usuarios-wfsa/instalacion/:instalacion_rol", contactHandler.WFSAUsers)
}
