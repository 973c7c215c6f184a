// store.go - Persistence contract shared by the SQL and mongo backends

package store // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"errors"  // Sentinel errors

	"storefront-backend/models" // Entities
)

var (
	// ErrNotFound is returned when a lookup or update targets a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate wraps a write rejected by a unique index (user email, category name).
	ErrDuplicate = errors.New("already exists")
	// ErrUnavailable wraps the reason the store could not be reached at startup.
	ErrUnavailable = errors.New("store unavailable")
)

// Errors other than ErrNotFound, ErrDuplicate and *models.ValidationError are
// failures of the store itself.

// Store is the process-wide connection handed to every handler.
type Store interface {
	Users() UserStore
	Products() ProductStore
	Categories() CategoryStore
	Orders() OrderStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// UserStore never returns password hashes from List. FindByEmail does, for login.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// ProductStore persists catalog products.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id string, patch models.CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// OrderStore persists orders together with their items.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}
