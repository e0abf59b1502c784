package service

import (
	"context"

	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/types"
)

// IRecipeStore defines the storage operations behind the recipe service.
// Implementations return database.ErrRecipeNotFound for unknown ids.
type IRecipeStore interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id string) (bool, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error)
	ReplaceRecipe(ctx context.Context, id string, req *types.UpdateRecipeRequest) error
	DeleteRecipe(ctx context.Context, id string) error
}
