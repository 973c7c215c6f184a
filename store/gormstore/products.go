// products.go - Product table access

package gormstore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"time"    // Prepare timestamp

	"storefront-backend/models" // Entities
)

type productStore struct {
	t table[models.Product]
}

func (s *productStore) Create(ctx context.Context, p *models.Product) error {
	if err := models.Prepare(p, time.Now()); err != nil { // Status, images and createdAt defaults
		return err
	}
	return s.t.create(ctx, p)
}

func (s *productStore) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.t.list(ctx, byCreation)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Images == nil { // Rows written by other clients may hold NULL
			products[i].Images = []string{}
		}
	}
	return products, nil
}

// Update writes only the columns present in patch; a zero stock or empty
// description is written too.
func (s *productStore) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	p, err := s.t.find(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := s.t.update(ctx, p, models.Columns(patch)); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productStore) Delete(ctx context.Context, id string) error {
	return s.t.delete(ctx, id)
}
