// orders.go - Order rows plus their items in order_items

package gormstore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"slices"  // Column filtering
	"time"    // Prepare timestamp

	"gorm.io/gorm" // GORM ORM

	"storefront-backend/models" // Entities
)

// Items live in order_items and come back in the order they were sent.
func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

type orderStore struct {
	t table[models.Order]
}

func (s *orderStore) Create(ctx context.Context, o *models.Order) error {
	if err := models.Prepare(o, time.Now()); err != nil {
		return err
	}
	// Order row and item rows are inserted in one transaction
	return translate(s.t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	}))
}

func (s *orderStore) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.t.list(ctx, withItems, byOrderDate)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []models.OrderItem{}
		}
	}
	return orders, nil
}

// Update changes the supplied columns. Supplied items replace the stored list;
// the total is left as the client sent it.
func (s *orderStore) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	o, err := s.t.find(ctx, id, withItems)
	if err != nil {
		return nil, err
	}
	patch.Apply(o)

	columns := slices.DeleteFunc(models.Columns(patch), func(c string) bool { return c == "items" })
	err = s.t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(columns) > 0 {
			if err := tx.Model(o).Select(columns).Updates(o).Error; err != nil {
				return err
			}
		}
		if patch.Items == nil {
			return nil
		}
		// Supplied items replace the previous ones
		if err := tx.Where("order_id = ?", o.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		return tx.Create(&o.Items).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return o, nil
}

func (s *orderStore) Delete(ctx context.Context, id string) error {
	return s.t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite does not enforce the cascade unless foreign keys are switched on
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Order{}).Error
	})
}
