package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/recipebox/backend/internal/model"
)

// OpenSQLite opens a gorm connection to sqlite and migrates the recipe table.
// In-memory databases live only as long as their connection, so the pool is
// pinned to a single connection which also serializes writes.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	log.Printf("Opened sqlite recipe store (%s)", dsn)
	return db, nil
}

// RunMigrations creates or updates the recipe table
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}

// GormRecipeStore stores recipes through gorm
type GormRecipeStore struct {
	db *gorm.DB
}

// NewGormRecipeStore creates a store backed by an already migrated gorm connection
func NewGormRecipeStore(db *gorm.DB) *GormRecipeStore {
	return &GormRecipeStore{db: db}
}

// List returns every recipe in insertion order
func (s *GormRecipeStore) List(ctx context.Context) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := s.db.WithContext(ctx).Order("seq").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Get returns the recipe with the given id
func (s *GormRecipeStore) Get(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// Create inserts a recipe as the last row
func (s *GormRecipeStore) Create(ctx context.Context, recipe *model.Recipe) error {
	row := recipe.Clone()
	row.Seq = 0
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// Update overwrites name and ingredients of an existing recipe
func (s *GormRecipeStore) Update(ctx context.Context, recipe *model.Recipe) error {
	result := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"name":        recipe.Name,
			"ingredients": recipe.Ingredients,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// Delete removes the recipe with the given id and reports whether it existed
func (s *GormRecipeStore) Delete(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Recipe{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
