// Package main is the entry point for the meal-planner application.
//
// @title           Meal Planner API
// @version         1.0.0
// @description     API for household meal planning: inventory tracking, daily
// @description     meal suggestions, cooking plans and shopping lists.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/casaplan/meal-planner
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Inventory
// @tag.description Household inventory operations
//
// @tag.name        Suggestions
// @tag.description Daily meal suggestion operations
//
// @tag.name        Plans
// @tag.description Cooking plan decisions
//
// @tag.name        ShoppingList
// @tag.description Shopping list computation
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/casaplan/meal-planner/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
