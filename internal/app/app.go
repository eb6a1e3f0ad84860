// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup function closes the database connection.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	serviceComponents := InitializeServices(dbComponents, cfg.Planner)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	cleanup := func() {
		_ = dbComponents.DB.Close(context.Background())
	}

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), cleanup, nil
}
