// categories.go - Category table access

package gormstore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"time"    // Prepare timestamp

	"storefront-backend/models" // Entities
)

type categoryStore struct {
	t table[models.Category]
}

func (s *categoryStore) Create(ctx context.Context, c *models.Category) error {
	if err := models.Prepare(c, time.Now()); err != nil {
		return err
	}
	return s.t.create(ctx, c) // Duplicate names hit the unique index
}

func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	return s.t.list(ctx, byName)
}

func (s *categoryStore) Update(ctx context.Context, id string, patch models.CategoryPatch) (*models.Category, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	c, err := s.t.find(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := s.t.update(ctx, c, models.Columns(patch)); err != nil { // Renaming onto a taken name fails here
		return nil, err
	}
	return c, nil
}

func (s *categoryStore) Delete(ctx context.Context, id string) error {
	return s.t.delete(ctx, id)
}
