// unavailable.go - Placeholder store used when the startup handshake failed

package store // Declares the package name

import ( // Import required packages
	"context" // Interface signatures
	"fmt"     // Error wrapping

	"storefront-backend/models" // Entities
)

// Unavailable returns a Store whose every call fails with ErrUnavailable, keeping
// cause in the message. It lets the process keep serving health checks.
func Unavailable(cause error) Store {
	return &unavailable{err: fmt.Errorf("%w: %v", ErrUnavailable, cause)}
}

type unavailable struct{ err error }

func (u *unavailable) Users() UserStore            { return unavailableUsers{u.err} }
func (u *unavailable) Products() ProductStore      { return unavailableProducts{u.err} }
func (u *unavailable) Categories() CategoryStore   { return unavailableCategories{u.err} }
func (u *unavailable) Orders() OrderStore          { return unavailableOrders{u.err} }
func (u *unavailable) Ping(context.Context) error  { return u.err }
func (u *unavailable) Close(context.Context) error { return nil }

type unavailableUsers struct{ err error }

func (s unavailableUsers) Create(context.Context, *models.User) error  { return s.err }
func (s unavailableUsers) List(context.Context) ([]models.User, error) { return nil, s.err }
func (s unavailableUsers) Delete(context.Context, string) error        { return s.err }
func (s unavailableUsers) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, s.err
}
func (s unavailableUsers) Update(context.Context, string, models.UserPatch) (*models.User, error) {
	return nil, s.err
}

type unavailableProducts struct{ err error }

func (s unavailableProducts) Create(context.Context, *models.Product) error  { return s.err }
func (s unavailableProducts) List(context.Context) ([]models.Product, error) { return nil, s.err }
func (s unavailableProducts) Delete(context.Context, string) error           { return s.err }
func (s unavailableProducts) Update(context.Context, string, models.ProductPatch) (*models.Product, error) {
	return nil, s.err
}

type unavailableCategories struct{ err error }

func (s unavailableCategories) Create(context.Context, *models.Category) error  { return s.err }
func (s unavailableCategories) List(context.Context) ([]models.Category, error) { return nil, s.err }
func (s unavailableCategories) Delete(context.Context, string) error            { return s.err }
func (s unavailableCategories) Update(context.Context, string, models.CategoryPatch) (*models.Category, error) {
	return nil, s.err
}

type unavailableOrders struct{ err error }

func (s unavailableOrders) Create(context.Context, *models.Order) error  { return s.err }
func (s unavailableOrders) List(context.Context) ([]models.Order, error) { return nil, s.err }
func (s unavailableOrders) Delete(context.Context, string) error         { return s.err }
func (s unavailableOrders) Update(context.Context, string, models.OrderPatch) (*models.Order, error) {
	return nil, s.err
}
