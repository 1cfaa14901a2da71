package main

import (
	"context"
	"log"
	"time"

	_ "taskilo_billing/docs"
	"taskilo_billing/internal/adapter/http/routes"
	"taskilo_billing/internal/app"
	"taskilo_billing/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Billing Service API
// @version         1.0
// @description     Time tracking and billing reconciliation for service orders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, err := app.Build(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Failed to build the application: %v", err)
	}
	defer c.Close()

	routes.Run(c)
}
