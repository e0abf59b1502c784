package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/mocks"
	"github.com/pageza/recipebox/backend/internal/model"
	"github.com/pageza/recipebox/backend/internal/types"
)

func newTestService() *RecipeService {
	return NewRecipeService(database.NewMemoryRecipeStore())
}

func coffee() *types.CreateRecipeRequest {
	return &types.CreateRecipeRequest{
		Name:        "coffee",
		Ingredients: []string{"brown water", "sugar"},
	}
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.CreateRecipe(ctx, coffee())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "coffee", created.Name)
	assert.Equal(t, model.StringArray{"brown water", "sugar"}, created.Ingredients)

	list, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *created, list[0])
}

func TestCreateRecipeAllowsEmptyIngredientList(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Name:        "water",
		Ingredients: []string{},
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Ingredients)
	assert.Empty(t, created.Ingredients)
}

func TestCreateRecipeValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   *types.CreateRecipeRequest
		field string
	}{
		{"nil request", nil, ""},
		{"missing name", &types.CreateRecipeRequest{Ingredients: []string{"a"}}, "name"},
		{"missing ingredients", &types.CreateRecipeRequest{Name: "coffee"}, "ingredients"},
		{"empty ingredient", &types.CreateRecipeRequest{Name: "coffee", Ingredients: []string{"a", ""}}, "ingredients[1]"},
		{"blank name", &types.CreateRecipeRequest{Name: "   ", Ingredients: []string{"a"}}, "name"},
		{"blank ingredient", &types.CreateRecipeRequest{Name: "coffee", Ingredients: []string{" \t"}}, "ingredients[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()

			_, err := svc.CreateRecipe(context.Background(), tt.req)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)

			list, err := svc.ListRecipes(context.Background())
			require.NoError(t, err)
			assert.Empty(t, list)
		})
	}
}

func TestCreateRecipeIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		created, err := svc.CreateRecipe(ctx, coffee())
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCreateRecipeCopiesIngredients(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	req := coffee()

	created, err := svc.CreateRecipe(ctx, req)
	require.NoError(t, err)
	req.Ingredients[0] = "tea"

	got, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "brown water", got.Ingredients[0])
}

func TestCreateRecipeUsesIDGenerator(t *testing.T) {
	n := 0
	svc := NewRecipeService(database.NewMemoryRecipeStore(), WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("recipe-%d", n)
	}))

	first, err := svc.CreateRecipe(context.Background(), coffee())
	require.NoError(t, err)
	second, err := svc.CreateRecipe(context.Background(), coffee())
	require.NoError(t, err)

	assert.Equal(t, "recipe-1", first.ID)
	assert.Equal(t, "recipe-2", second.ID)
}

func TestCreateRecipeIDCollision(t *testing.T) {
	svc := NewRecipeService(database.NewMemoryRecipeStore(), WithIDGenerator(func() string { return "same" }))

	_, err := svc.CreateRecipe(context.Background(), coffee())
	require.NoError(t, err)

	_, err = svc.CreateRecipe(context.Background(), coffee())
	assert.ErrorIs(t, err, database.ErrDuplicateID)
}

func TestGetRecipeNotFound(t *testing.T) {
	_, err := newTestService().GetRecipe(context.Background(), "missing")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.ID)
}

func TestReplaceRecipe(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	first, err := svc.CreateRecipe(ctx, coffee())
	require.NoError(t, err)
	second, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{Name: "tea", Ingredients: []string{"leaves"}})
	require.NoError(t, err)

	err = svc.ReplaceRecipe(ctx, first.ID, &types.UpdateRecipeRequest{
		ID:          first.ID,
		Name:        "iced coffee",
		Ingredients: []string{"brown water", "ice"},
	})
	require.NoError(t, err)

	list, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, model.Recipe{ID: first.ID, Name: "iced coffee", Ingredients: model.StringArray{"brown water", "ice"}}, list[0])
	assert.Equal(t, *second, list[1])
}

func TestReplaceRecipeValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created, err := svc.CreateRecipe(ctx, coffee())
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   *types.UpdateRecipeRequest
		field string
	}{
		{"nil request", nil, ""},
		{"missing id", &types.UpdateRecipeRequest{Name: "x", Ingredients: []string{"a"}}, "id"},
		{"missing name", &types.UpdateRecipeRequest{ID: created.ID, Ingredients: []string{"a"}}, "name"},
		{"missing ingredients", &types.UpdateRecipeRequest{ID: created.ID, Name: "x"}, "ingredients"},
		{"blank name", &types.UpdateRecipeRequest{ID: created.ID, Name: "\n", Ingredients: []string{"a"}}, "name"},
		{"mismatched id", &types.UpdateRecipeRequest{ID: "other", Name: "x", Ingredients: []string{"a"}}, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ReplaceRecipe(ctx, created.ID, tt.req)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)

			got, err := svc.GetRecipe(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "coffee", got.Name)
		})
	}
}

func TestBlankNameMessage(t *testing.T) {
	_, err := newTestService().CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Name:        " ",
		Ingredients: []string{"a"},
	})
	assert.EqualError(t, err, "name: `name` must not be blank")
}

func TestCreateRecipeKeepsNameAsSent(t *testing.T) {
	created, err := newTestService().CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Name:        " iced coffee ",
		Ingredients: []string{" ice "},
	})
	require.NoError(t, err)
	assert.Equal(t, " iced coffee ", created.Name)
	assert.Equal(t, model.StringArray{" ice "}, created.Ingredients)
}

func TestReplaceRecipeMismatchMessage(t *testing.T) {
	err := newTestService().ReplaceRecipe(context.Background(), "a", &types.UpdateRecipeRequest{
		ID: "b", Name: "x", Ingredients: []string{"y"},
	})
	assert.EqualError(t, err, "id: request path id (a) and request body id (b) must match")
}

func TestReplaceRecipeNotFound(t *testing.T) {
	err := newTestService().ReplaceRecipe(context.Background(), "missing", &types.UpdateRecipeRequest{
		ID: "missing", Name: "x", Ingredients: []string{"y"},
	})

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "recipe missing not found", err.Error())
}

func TestDeleteRecipeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	created, err := svc.CreateRecipe(ctx, coffee())
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, coffee())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))
	list, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))
	list, err = svc.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStoreFailuresAreWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	store := new(mocks.MockRecipeStore)
	store.On("List", ctx).Return(nil, boom)
	store.On("Create", ctx, mock.AnythingOfType("*model.Recipe")).Return(boom)
	store.On("Update", ctx, mock.AnythingOfType("*model.Recipe")).Return(boom)
	store.On("Delete", ctx, "x").Return(false, boom)
	svc := NewRecipeService(store)

	_, err := svc.ListRecipes(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.CreateRecipe(ctx, coffee())
	assert.ErrorIs(t, err, boom)

	err = svc.ReplaceRecipe(ctx, "x", &types.UpdateRecipeRequest{ID: "x", Name: "n", Ingredients: []string{"i"}})
	assert.ErrorIs(t, err, boom)

	err = svc.DeleteRecipe(ctx, "x")
	assert.ErrorIs(t, err, boom)

	store.AssertExpectations(t)
}

func TestListRecipesNeverNil(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.MockRecipeStore)
	store.On("List", ctx).Return(nil, nil)

	list, err := NewRecipeService(store).ListRecipes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
}

func TestSeedRecipes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.SeedRecipes(ctx, DefaultRecipes))

	list, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "boiled white rice", list[0].Name)
	assert.Equal(t, "milkshake", list[1].Name)

	err = svc.SeedRecipes(ctx, []types.CreateRecipeRequest{{Name: ""}})
	assert.Error(t, err)
}
