package types

// Request bodies are only decoded by gin. The validate tags are checked by
// the recipe service before anything reaches the store.

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Ingredients []string `json:"ingredients" validate:"required,dive,required,notblank"`
}

// UpdateRecipeRequest represents the request body for replacing a recipe
type UpdateRecipeRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required,notblank"`
	Ingredients []string `json:"ingredients" validate:"required,dive,required,notblank"`
}
