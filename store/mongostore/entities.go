// entities.go - Per-entity collections on top of collection[T]

package mongostore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"time"    // Prepare timestamp

	"go.mongodb.org/mongo-driver/bson" // Sorts and projections

	"storefront-backend/models" // Entities
)

type userStore struct {
	c collection[models.User]
}

// hidePassword returns the users collection with the hash projected out.
func (s *userStore) hidePassword() collection[models.User] {
	c := s.c
	c.projection = bson.M{"password": 0}
	return c
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	if err := models.Prepare(u, time.Now()); err != nil {
		return err
	}
	return s.c.create(ctx, u) // Duplicate emails fail on the unique index as store.ErrDuplicate
}

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	return s.hidePassword().list(ctx, bson.D{{Key: "name", Value: 1}})
}

// FindByEmail is the only read that returns the password hash.
func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.c.findOne(ctx, bson.M{"email": email}, false)
}

func (s *userStore) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.hidePassword().update(ctx, id, patch.Fields())
}

func (s *userStore) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

type productStore struct {
	c collection[models.Product]
}

func (s *productStore) Create(ctx context.Context, p *models.Product) error {
	if err := models.Prepare(p, time.Now()); err != nil {
		return err
	}
	return s.c.create(ctx, p)
}

func (s *productStore) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.c.list(ctx, bson.D{{Key: "created_at", Value: 1}})
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Images == nil {
			products[i].Images = []string{}
		}
	}
	return products, nil
}

func (s *productStore) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.c.update(ctx, id, patch.Fields())
}

func (s *productStore) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

type categoryStore struct {
	c collection[models.Category]
}

func (s *categoryStore) Create(ctx context.Context, c *models.Category) error {
	if err := models.Prepare(c, time.Now()); err != nil {
		return err
	}
	return s.c.create(ctx, c)
}

func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	return s.c.list(ctx, bson.D{{Key: "name", Value: 1}})
}

func (s *categoryStore) Update(ctx context.Context, id string, patch models.CategoryPatch) (*models.Category, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.c.update(ctx, id, patch.Fields())
}

func (s *categoryStore) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

// Orders embed their items, so one document write covers the whole order.
type orderStore struct {
	c collection[models.Order]
}

func (s *orderStore) Create(ctx context.Context, o *models.Order) error {
	if err := models.Prepare(o, time.Now()); err != nil {
		return err
	}
	return s.c.create(ctx, o)
}

func (s *orderStore) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.c.list(ctx, bson.D{{Key: "order_date", Value: 1}})
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

func (s *orderStore) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	return s.c.update(ctx, id, orderFields(id, patch))
}

func (s *orderStore) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, id)
}

// orderFields is patch.Fields with replacement items given fresh identities.
func orderFields(id string, patch models.OrderPatch) map[string]any {
	fields := patch.Fields()
	if patch.Items != nil {
		o := models.Order{ID: id}
		patch.Apply(&o)
		fields["items"] = o.Items
	}
	return fields
}
