// Command seed_demo loads a demo household into MongoDB: a small recipe
// catalog and a starting inventory, enough to exercise every API endpoint.
//
// Usage: go run scripts/seed_demo.go [household_id]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/casaplan/meal-planner/config"
	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
)

func main() {
	householdID := "hh-demo"
	if len(os.Args) > 1 {
		householdID = os.Args[1]
	}

	cfg := config.Load()

	db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() { _ = db.Close(context.Background()) }()

	if err := seed(ctx, db, householdID); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded household %q in database %q\n", householdID, cfg.Database.DatabaseName)
}

func seed(ctx context.Context, db *repository.MongoDB, householdID string) error {
	recipeRepo := repository.NewRecipeRepository(db)

	recipes := []repository.RecipeDocument{
		{
			ID:          householdID + "-r-rice-pudding",
			HouseholdID: householdID,
			Name:        "Rice pudding",
			Position:    0,
			Ingredients: []repository.RecipeIngredientDocument{
				{IngredientID: "milk", Amount: 2},
				{IngredientID: "rice", Amount: 1},
				{IngredientID: "sugar", Amount: 0.5},
			},
		},
		{
			ID:          householdID + "-r-omelette",
			HouseholdID: householdID,
			Name:        "Omelette",
			Position:    1,
			Ingredients: []repository.RecipeIngredientDocument{
				{IngredientID: "eggs", Amount: 3},
				{IngredientID: "butter", Amount: 0.2},
			},
		},
		{
			ID:          householdID + "-r-pancakes",
			HouseholdID: householdID,
			Name:        "Pancakes",
			Position:    2,
			Ingredients: []repository.RecipeIngredientDocument{
				{IngredientID: "milk", Amount: 1},
				{IngredientID: "eggs", Amount: 2},
				{IngredientID: "flour", Amount: 1.5},
			},
		},
	}

	for _, doc := range recipes {
		if err := recipeRepo.Insert(ctx, doc); err != nil {
			return fmt.Errorf("insert recipe %s: %w", doc.ID, err)
		}
	}

	inventory := model.NewInventory()
	soon := time.Now().AddDate(0, 0, 2)
	later := time.Now().AddDate(0, 0, 14)

	additions := []struct {
		ingredientID string
		amount       float64
		expiration   *time.Time
	}{
		{"milk", 2, &soon},
		{"rice", 1, nil},
		{"eggs", 6, &later},
		{"butter", 0.5, nil},
	}
	for _, a := range additions {
		if err := inventory.AddIngredient(a.ingredientID, model.MustQuantity(a.amount), a.expiration); err != nil {
			return fmt.Errorf("add %s: %w", a.ingredientID, err)
		}
	}

	inventoryRepo := repository.NewInventoryRepository(db)
	if err := inventoryRepo.Save(ctx, householdID, inventory); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}

	return nil
}
