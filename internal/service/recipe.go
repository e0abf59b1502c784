package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	store    IRecipeStore
	validate *validator.Validate
	newID    func() string
}

// Option configures a RecipeService
type Option func(*RecipeService)

// WithIDGenerator replaces the default UUID generator
func WithIDGenerator(fn func() string) Option {
	return func(s *RecipeService) { s.newID = fn }
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store IRecipeStore, opts ...Option) *RecipeService {
	s := &RecipeService{
		store:    store,
		validate: newValidator(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRecipes returns every recipe in insertion order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	recipe, err := s.store.Get(ctx, id)
	if errors.Is(err, database.ErrRecipeNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// CreateRecipe validates the request, assigns a fresh id and appends the recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	if req == nil {
		return nil, &ValidationError{Message: "request body is required"}
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	recipe := &model.Recipe{
		ID:          s.newID(),
		Name:        req.Name,
		Ingredients: append(model.StringArray{}, req.Ingredients...),
	}
	if err := s.store.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// ReplaceRecipe overwrites name and ingredients of the recipe with the given id.
// The body id must match the path id.
func (s *RecipeService) ReplaceRecipe(ctx context.Context, id string, req *types.UpdateRecipeRequest) error {
	if req == nil {
		return &ValidationError{Message: "request body is required"}
	}
	if err := s.validate.Struct(req); err != nil {
		return toValidationError(err)
	}
	if req.ID != id {
		return &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("request path id (%s) and request body id (%s) must match", id, req.ID),
		}
	}

	err := s.store.Update(ctx, &model.Recipe{
		ID:          id,
		Name:        req.Name,
		Ingredients: append(model.StringArray{}, req.Ingredients...),
	})
	if errors.Is(err, database.ErrRecipeNotFound) {
		return &NotFoundError{ID: id}
	}
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// DeleteRecipe removes the recipe if it exists; unknown ids are not an error
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}
