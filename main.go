package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/marketstall/market-api/cmd/app"
)

// @title          Market stall management API
// @description    Stands, reservations, payments, cleaning inspections and incidents of a marketplace.
//
// @contact.name   Market office
// @contact.email  biuro@targowisko.pl
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
