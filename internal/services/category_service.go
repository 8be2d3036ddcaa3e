package services

import (
	"context"

	"fintrack/internal/core"
)

type CategoryStore interface {
	CreateCategory(ctx context.Context, c core.Category) (core.Category, error)
	GetCategory(ctx context.Context, userID, categoryID int64) (core.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]core.Category, error)
	UpdateCategory(ctx context.Context, userID int64, c core.Category) error
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
}

// CategoryService manages user categories. System categories (nil owner) are
// readable by everyone and writable by no one.
type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, userID int64, name, categoryType, classification, icon string) (core.Category, error) {
	c := core.Category{
		UserID: &userID,
		Name:   name,
		Icon:   icon,
	}

	var err error
	if c.Type, err = core.ParseCategoryType(categoryType); err != nil {
		return core.Category{}, err
	}
	if c.Classification, err = core.ParseClassification(classification); err != nil {
		return core.Category{}, err
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	return s.store.CreateCategory(ctx, c)
}

func (s *CategoryService) Get(ctx context.Context, userID, categoryID int64) (core.Category, error) {
	return s.store.GetCategory(ctx, userID, categoryID)
}

// List returns the shared system categories followed by the user's own.
func (s *CategoryService) List(ctx context.Context, userID int64) ([]core.Category, error) {
	return s.store.ListCategories(ctx, userID)
}

// Update edits a user-owned category. System categories come back as not
// found, same as categories owned by someone else.
func (s *CategoryService) Update(ctx context.Context, userID, categoryID int64, name, categoryType, classification, icon string) (core.Category, error) {
	c := core.Category{
		ID:     categoryID,
		UserID: &userID,
		Name:   name,
		Icon:   icon,
	}

	var err error
	if c.Type, err = core.ParseCategoryType(categoryType); err != nil {
		return core.Category{}, err
	}
	if c.Classification, err = core.ParseClassification(classification); err != nil {
		return core.Category{}, err
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	if err := s.store.UpdateCategory(ctx, userID, c); err != nil {
		return core.Category{}, err
	}
	return s.store.GetCategory(ctx, userID, categoryID)
}

// Delete removes a user-owned category. Categories still referenced by
// transactions or budgets are refused.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	return s.store.DeleteCategory(ctx, userID, categoryID)
}
