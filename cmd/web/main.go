// @title           Servibook API
// @version         1.0
// @description     Service-booking backend: customers, workers and the services they offer.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "servibook_backend/internal/app"

func main() {
	app.Run()
}
