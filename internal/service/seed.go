package service

import (
	"context"
	"fmt"
	"log"

	"github.com/pageza/recipebox/backend/internal/types"
)

// DefaultRecipes are loaded into a fresh store so the list is never empty on startup
var DefaultRecipes = []types.CreateRecipeRequest{
	{
		Name:        "boiled white rice",
		Ingredients: []string{"1 cup white rice", "2 cups water", "pinch of salt"},
	},
	{
		Name:        "milkshake",
		Ingredients: []string{"2 tbsp cocoa", "2 cups vanilla ice cream", "1 cup milk"},
	},
}

// SeedRecipes creates each recipe in order through the normal create path
func (s *RecipeService) SeedRecipes(ctx context.Context, recipes []types.CreateRecipeRequest) error {
	for i := range recipes {
		if _, err := s.CreateRecipe(ctx, &recipes[i]); err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipes[i].Name, err)
		}
	}
	log.Printf("Seeded %d recipes", len(recipes))
	return nil
}
