// Package service implements the meal-planning use cases on top of the
// repository interfaces.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/casaplan/meal-planner/internal/domain/model"
	"github.com/casaplan/meal-planner/internal/repository"
)

const (
	// DefaultMaxSuggestions is how many recipes a generated suggestion carries.
	DefaultMaxSuggestions = 3
	// DefaultExpiringDaysThreshold is the expiring-soon window in days.
	DefaultExpiringDaysThreshold = 3

	dateLayout = "2006-01-02"
)

// GenerateSuggestionInput parameterizes suggestion generation.
// Zero MaxSuggestions and ExpiringDaysThreshold fall back to the defaults.
type GenerateSuggestionInput struct {
	HouseholdID           string
	Date                  string // YYYY-MM-DD
	Slot                  model.MealSlot
	MaxSuggestions        int
	ExpiringDaysThreshold int
}

// SuggestionTransition reports the outcome of a lifecycle operation.
type SuggestionTransition struct {
	SuggestionID string                 `json:"suggestion_id"`
	Status       model.SuggestionStatus `json:"status"`
}

// SuggestionService provides suggestion generation and lifecycle operations.
type SuggestionService interface {
	// Generate scores the household's candidate recipes against the
	// inventory and returns the top-ranked ones with reasoning.
	Generate(ctx context.Context, input GenerateSuggestionInput) (model.DailySuggestion, error)
	// GenerateAndStore generates and upserts the result as a PROPOSED
	// suggestion keyed by (household, date, slot).
	GenerateAndStore(ctx context.Context, input GenerateSuggestionInput) (*repository.SuggestionRecord, error)
	// Accept consumes the suggestion's recipe ingredients from the inventory
	// and marks the suggestion ACCEPTED. Accepting twice is a no-op success.
	Accept(ctx context.Context, suggestionID string) (SuggestionTransition, error)
	// Modify replaces the suggestion's recipes with the given ids, in the
	// given order, and marks it MODIFIED.
	Modify(ctx context.Context, suggestionID string, recipeIDs []string) (SuggestionTransition, error)
	// GetDaily looks up the persisted suggestion for a household/day/slot.
	GetDaily(ctx context.Context, householdID, date string, slot model.MealSlot) (*repository.SuggestionRecord, error)
}

// SuggestionServiceImpl implements SuggestionService.
type SuggestionServiceImpl struct {
	inventoryRepo  repository.InventoryRepositoryInterface
	recipeRepo     repository.RecipeRepositoryInterface
	suggestionRepo repository.SuggestionRepositoryInterface

	defaultMaxSuggestions int
	defaultExpiringDays   int
}

// Option configures a SuggestionServiceImpl.
type Option func(*SuggestionServiceImpl)

// WithGenerationDefaults overrides the fallback values used when a generation
// request does not set MaxSuggestions or ExpiringDaysThreshold. Non-positive
// values are ignored.
func WithGenerationDefaults(maxSuggestions, expiringDays int) Option {
	return func(s *SuggestionServiceImpl) {
		if maxSuggestions > 0 {
			s.defaultMaxSuggestions = maxSuggestions
		}
		if expiringDays > 0 {
			s.defaultExpiringDays = expiringDays
		}
	}
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(
	inventoryRepo repository.InventoryRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
	suggestionRepo repository.SuggestionRepositoryInterface,
	opts ...Option,
) *SuggestionServiceImpl {
	s := &SuggestionServiceImpl{
		inventoryRepo:         inventoryRepo,
		recipeRepo:            recipeRepo,
		suggestionRepo:        suggestionRepo,
		defaultMaxSuggestions: DefaultMaxSuggestions,
		defaultExpiringDays:   DefaultExpiringDaysThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scoredRecipe pairs a candidate with the expiring ingredients it would use.
type scoredRecipe struct {
	recipe       *model.Recipe
	score        int
	usedExpiring []string
}

// Generate implements the expiring-first scoring algorithm.
func (s *SuggestionServiceImpl) Generate(ctx context.Context, input GenerateSuggestionInput) (model.DailySuggestion, error) {
	maxSuggestions := input.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = s.defaultMaxSuggestions
	}
	expiringDays := input.ExpiringDaysThreshold
	if expiringDays <= 0 {
		expiringDays = s.defaultExpiringDays
	}

	out := model.DailySuggestion{
		HouseholdID: input.HouseholdID,
		Date:        input.Date,
		Slot:        input.Slot,
		Recipes:     []model.SuggestedRecipe{},
		Reasoning: model.SuggestionReasoning{
			UsedExpiringIngredients: []string{},
		},
	}

	inventory, err := s.inventoryRepo.GetByHouseholdID(ctx, input.HouseholdID)
	if err != nil {
		return model.DailySuggestion{}, err
	}
	if inventory == nil {
		// Nothing is known about what the household holds, so there is
		// nothing to base a suggestion on.
		return out, nil
	}

	reference, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return model.DailySuggestion{}, fmt.Errorf("parse date %q: %w", input.Date, err)
	}

	recipes, err := s.recipeRepo.ListByHouseholdID(ctx, input.HouseholdID)
	if err != nil {
		return model.DailySuggestion{}, err
	}

	expiringIDs := make(map[string]bool)
	for _, item := range inventory.ExpiringSoon(reference, expiringDays) {
		expiringIDs[item.IngredientID()] = true
	}

	// Candidate = every required ingredient is present in inventory.
	// Quantity sufficiency is deliberately not checked here; the planner
	// performs the full check.
	var candidates []scoredRecipe
	for _, recipe := range recipes {
		present := true
		var used []string
		for _, ing := range recipe.Ingredients() {
			if _, ok := inventory.Item(ing.IngredientID); !ok {
				present = false
				break
			}
			if expiringIDs[ing.IngredientID] {
				used = append(used, ing.IngredientID)
			}
		}
		if present {
			candidates = append(candidates, scoredRecipe{
				recipe:       recipe,
				score:        len(used),
				usedExpiring: used,
			})
		}
	}

	// Stable: candidates with equal scores keep catalog order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	chosen := candidates
	if len(chosen) > maxSuggestions {
		chosen = chosen[:maxSuggestions]
	}

	seen := make(map[string]bool)
	for _, c := range chosen {
		out.Recipes = append(out.Recipes, model.SuggestedRecipe{
			RecipeID: c.recipe.ID(),
			Name:     c.recipe.Name(),
		})
		for _, id := range c.usedExpiring {
			if !seen[id] {
				seen[id] = true
				out.Reasoning.UsedExpiringIngredients = append(out.Reasoning.UsedExpiringIngredients, id)
			}
		}
	}
	out.Reasoning.TotalCandidateRecipes = len(candidates)

	return out, nil
}

// GenerateAndStore persists the generated suggestion as PROPOSED.
func (s *SuggestionServiceImpl) GenerateAndStore(ctx context.Context, input GenerateSuggestionInput) (*repository.SuggestionRecord, error) {
	generated, err := s.Generate(ctx, input)
	if err != nil {
		return nil, err
	}

	recipes := make([]model.SuggestionRecipe, 0, len(generated.Recipes))
	for i, r := range generated.Recipes {
		recipes = append(recipes, model.SuggestionRecipe{
			RecipeID: r.RecipeID,
			Name:     r.Name,
			Position: i,
		})
	}

	return s.suggestionRepo.UpsertDailySuggestion(ctx, repository.SuggestionUpsert{
		HouseholdID: generated.HouseholdID,
		Date:        generated.Date,
		Slot:        generated.Slot,
		Status:      model.StatusProposed,
		Recipes:     recipes,
	})
}

// Accept implements the accept workflow. The inventory is mutated fully in
// memory and saved only after every consumption succeeded, then the status
// flips to ACCEPTED.
func (s *SuggestionServiceImpl) Accept(ctx context.Context, suggestionID string) (SuggestionTransition, error) {
	record, err := s.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		return SuggestionTransition{}, err
	}
	if record == nil {
		return SuggestionTransition{}, fmt.Errorf("%w: %s", model.ErrSuggestionNotFound, suggestionID)
	}

	// Re-accepting is defined success, not an error.
	if record.Status == model.StatusAccepted {
		return SuggestionTransition{SuggestionID: record.ID, Status: model.StatusAccepted}, nil
	}

	if !record.Status.CanTransitionTo(model.StatusAccepted) {
		return SuggestionTransition{}, fmt.Errorf("suggestion %s: illegal transition %s -> %s",
			record.ID, record.Status, model.StatusAccepted)
	}

	inventory, err := s.inventoryRepo.GetByHouseholdID(ctx, record.HouseholdID)
	if err != nil {
		return SuggestionTransition{}, err
	}
	if inventory == nil {
		return SuggestionTransition{}, fmt.Errorf("%w: household %s", model.ErrInventoryNotFound, record.HouseholdID)
	}

	recipeIDs := make([]string, 0, len(record.Recipes))
	for _, r := range record.Recipes {
		recipeIDs = append(recipeIDs, r.RecipeID)
	}

	recipes, err := s.recipeRepo.GetByIDs(ctx, record.HouseholdID, recipeIDs)
	if err != nil {
		return SuggestionTransition{}, err
	}

	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients() {
			if err := inventory.ConsumeIngredient(ing.IngredientID, ing.Amount); err != nil {
				return SuggestionTransition{}, err
			}
		}
	}

	if err := s.inventoryRepo.Save(ctx, record.HouseholdID, inventory); err != nil {
		return SuggestionTransition{}, err
	}
	if err := s.suggestionRepo.SetStatus(ctx, record.ID, model.StatusAccepted); err != nil {
		return SuggestionTransition{}, err
	}

	return SuggestionTransition{SuggestionID: record.ID, Status: model.StatusAccepted}, nil
}

// Modify implements the modify workflow: accepted suggestions are immutable,
// and every requested recipe id must resolve.
func (s *SuggestionServiceImpl) Modify(ctx context.Context, suggestionID string, recipeIDs []string) (SuggestionTransition, error) {
	record, err := s.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		return SuggestionTransition{}, err
	}
	if record == nil {
		return SuggestionTransition{}, fmt.Errorf("%w: %s", model.ErrSuggestionNotFound, suggestionID)
	}

	if !record.Status.CanTransitionTo(model.StatusModified) {
		return SuggestionTransition{}, fmt.Errorf("%w: %s", model.ErrSuggestionAccepted, record.ID)
	}

	recipes, err := s.recipeRepo.GetByIDs(ctx, record.HouseholdID, recipeIDs)
	if err != nil {
		return SuggestionTransition{}, err
	}
	if len(recipes) != len(recipeIDs) {
		return SuggestionTransition{}, fmt.Errorf("%w: requested %d, resolved %d",
			model.ErrRecipesNotFound, len(recipeIDs), len(recipes))
	}

	byID := make(map[string]*model.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID()] = r
	}

	// Positions follow the caller's order, not the catalog's.
	replacement := make([]model.SuggestionRecipe, 0, len(recipeIDs))
	for i, id := range recipeIDs {
		recipe, ok := byID[id]
		if !ok {
			return SuggestionTransition{}, fmt.Errorf("%w: %s", model.ErrRecipesNotFound, id)
		}
		replacement = append(replacement, model.SuggestionRecipe{
			RecipeID: recipe.ID(),
			Name:     recipe.Name(),
			Position: i,
		})
	}

	if _, err := s.suggestionRepo.UpsertDailySuggestion(ctx, repository.SuggestionUpsert{
		HouseholdID: record.HouseholdID,
		Date:        record.Date,
		Slot:        record.Slot,
		Status:      model.StatusModified,
		Recipes:     replacement,
	}); err != nil {
		return SuggestionTransition{}, err
	}

	return SuggestionTransition{SuggestionID: record.ID, Status: model.StatusModified}, nil
}

// GetDaily returns the persisted suggestion for the key, or (nil, nil).
func (s *SuggestionServiceImpl) GetDaily(ctx context.Context, householdID, date string, slot model.MealSlot) (*repository.SuggestionRecord, error) {
	return s.suggestionRepo.GetDailySuggestion(ctx, householdID, date, slot)
}
