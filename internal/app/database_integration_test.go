//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/domain/model"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		URI:                            testutilURI(),
		DatabaseName:                   testutilDBName(t),
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	components, err := InitializeDatabase(integrationDatabaseConfig(t))
	require.NoError(t, err)
	require.NotNil(t, components)
	defer func() { _ = components.DB.Close(context.Background()) }()

	assert.NotNil(t, components.InventoryRepo)
	assert.NotNil(t, components.RecipeRepo)
	assert.NotNil(t, components.SuggestionRepo)
	assert.NotNil(t, components.InventoryCircuitBreaker)
	assert.NotNil(t, components.RecipeCircuitBreaker)
	assert.NotNil(t, components.SuggestionCircuitBreaker)
}

func TestInitializeDatabase_RoundTrip(t *testing.T) {
	components, err := InitializeDatabase(integrationDatabaseConfig(t))
	require.NoError(t, err)
	defer func() { _ = components.DB.Close(context.Background()) }()

	ctx := context.Background()

	inventory := model.NewInventory()
	require.NoError(t, inventory.AddIngredient("milk", model.MustQuantity(2), nil))

	require.NoError(t, components.InventoryRepo.Save(ctx, "hh-round-trip", inventory))

	loaded, err := components.InventoryRepo.GetByHouseholdID(ctx, "hh-round-trip")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	item, ok := loaded.Item("milk")
	require.True(t, ok)
	assert.InDelta(t, 2, item.Quantity().Value(), 1e-9)
}
