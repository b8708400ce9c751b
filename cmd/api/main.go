package main

import (
	_ "mecanica_workorder/docs"
	"mecanica_workorder/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Work Order Service API
// @version         1.0
// @description     Work order lifecycle (status, stages, quality gate and history) for the auto-service apps.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
