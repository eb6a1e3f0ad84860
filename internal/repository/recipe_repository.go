// Package repository provides data access for recipe catalogs.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/casaplan/meal-planner/internal/domain/model"
)

// RecipeIngredientDocument is one required ingredient of a stored recipe.
type RecipeIngredientDocument struct {
	IngredientID string  `bson:"ingredient_id" json:"ingredient_id"`
	Amount       float64 `bson:"amount" json:"amount"`
}

// RecipeDocument is the stored shape of a recipe.
type RecipeDocument struct {
	ID          string                     `bson:"_id" json:"id"`
	HouseholdID string                     `bson:"household_id" json:"household_id"`
	Name        string                     `bson:"name" json:"name"`
	Ingredients []RecipeIngredientDocument `bson:"ingredients" json:"ingredients"`
	// Position fixes the catalog listing order; the planner's tie-breaking
	// depends on a deterministic listing.
	Position  int       `bson:"position" json:"position"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// RecipeRepository provides MongoDB-backed recipe storage.
type RecipeRepository struct {
	collection *mongo.Collection
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *MongoDB) *RecipeRepository {
	return &RecipeRepository{
		collection: db.Recipes,
	}
}

// ListByHouseholdID returns the household's recipes in catalog order.
func (r *RecipeRepository) ListByHouseholdID(ctx context.Context, householdID string) ([]*model.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"household_id": householdID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []RecipeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return hydrateRecipes(docs)
}

// GetByIDs returns the subset of the household's recipes matching the given
// ids, in catalog order. Unknown ids are silently dropped.
func (r *RecipeRepository) GetByIDs(ctx context.Context, householdID string, recipeIDs []string) ([]*model.Recipe, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"household_id": householdID,
		"_id":          bson.M{"$in": recipeIDs},
	}
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []RecipeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return hydrateRecipes(docs)
}

// Insert stores a recipe document. Used by seeding; the service reads recipes
// but never authors them.
func (r *RecipeRepository) Insert(ctx context.Context, doc RecipeDocument) error {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func hydrateRecipes(docs []RecipeDocument) ([]*model.Recipe, error) {
	recipes := make([]*model.Recipe, 0, len(docs))
	for _, doc := range docs {
		ingredients := make([]model.RecipeIngredient, 0, len(doc.Ingredients))
		for _, ing := range doc.Ingredients {
			amount, err := model.NewQuantity(ing.Amount)
			if err != nil {
				return nil, err
			}
			ingredients = append(ingredients, model.RecipeIngredient{
				IngredientID: ing.IngredientID,
				Amount:       amount,
			})
		}
		recipe, err := model.NewRecipe(doc.ID, doc.Name, ingredients)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
