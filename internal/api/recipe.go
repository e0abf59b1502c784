package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
)

// RecipeHandler serves the recipe collection over HTTP.
// Errors are recorded with c.Error and rendered by middleware.ErrorHandler.
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe routes. writeMiddleware runs only on
// routes that change the collection.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, writeMiddleware ...gin.HandlerFunc) {
	write := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), handler)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", write(h.CreateRecipe)...)
		recipes.PUT("/:id", write(h.ReplaceRecipe)...)
		recipes.DELETE("/:id", write(h.DeleteRecipe)...)
	}
}

// ListRecipes returns every recipe in insertion order
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns a single recipe by id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe adds a recipe and returns it with its new id
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// ReplaceRecipe overwrites a recipe's name and ingredients
func (h *RecipeHandler) ReplaceRecipe(c *gin.Context) {
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	if err := h.recipeService.ReplaceRecipe(c.Request.Context(), c.Param("id"), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteRecipe answers 204 whether or not the recipe existed
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
