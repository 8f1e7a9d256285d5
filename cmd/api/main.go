package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/wwdiegovarela/consultas-app-cliente/docs"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/routes"
)

// @title           Consultas App Cliente API
// @version         1.0
// @description     Backend-for-frontend exposing coverage, PPC, surveys and messaging data to the mobile client.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.

func main() {
	routes.Run()
}
