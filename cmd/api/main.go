package main

import (
	_ "company_payments/docs"
	"company_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Company Payment Service API
// @version         1.0
// @description     Stripe checkout sessions + webhook reconciliation for company payments, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
