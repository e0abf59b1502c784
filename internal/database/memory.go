package database

import (
	"context"
	"sync"

	"github.com/pageza/recipebox/backend/internal/model"
)

// MemoryRecipeStore keeps recipes in insertion order in a slice.
// Writers hold the lock exclusively; readers share it.
type MemoryRecipeStore struct {
	mu      sync.RWMutex
	recipes []model.Recipe
}

// NewMemoryRecipeStore creates an empty in-memory store
func NewMemoryRecipeStore() *MemoryRecipeStore {
	return &MemoryRecipeStore{}
}

// List returns a copy of every recipe in insertion order
func (s *MemoryRecipeStore) List(ctx context.Context) ([]model.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out, nil
}

// Get returns the recipe with the given id
func (s *MemoryRecipeStore) Get(ctx context.Context, id string) (*model.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrRecipeNotFound
	}
	r := s.recipes[i].Clone()
	return &r, nil
}

// Create appends a recipe to the end of the collection
func (s *MemoryRecipeStore) Create(ctx context.Context, recipe *model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(recipe.ID) >= 0 {
		return ErrDuplicateID
	}
	s.recipes = append(s.recipes, recipe.Clone())
	return nil
}

// Update overwrites name and ingredients of an existing recipe in place
func (s *MemoryRecipeStore) Update(ctx context.Context, recipe *model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(recipe.ID)
	if i < 0 {
		return ErrRecipeNotFound
	}
	s.recipes[i].Name = recipe.Name
	s.recipes[i].Ingredients = append(model.StringArray{}, recipe.Ingredients...)
	return nil
}

// Delete removes the recipe with the given id and reports whether it existed
func (s *MemoryRecipeStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	return true, nil
}

// indexOf must be called with the lock held
func (s *MemoryRecipeStore) indexOf(id string) int {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return i
		}
	}
	return -1
}
