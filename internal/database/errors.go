package database

import "errors"

// ErrRecipeNotFound is returned by the recipe stores when no row matches an id
var ErrRecipeNotFound = errors.New("recipe not found")

// ErrDuplicateID is returned when a recipe is inserted with an id already in use
var ErrDuplicateID = errors.New("recipe id already exists")
