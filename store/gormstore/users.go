// users.go - User table access; hashes never leave through reads except FindByEmail

package gormstore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"time"    // Prepare timestamp

	"gorm.io/gorm" // GORM ORM

	"storefront-backend/models" // Entities
)

// Columns safe to return from reads
var userProjection = []string{"id", "name", "email", "role"}

func withoutPassword(db *gorm.DB) *gorm.DB { return db.Select(userProjection) }

type userStore struct {
	t table[models.User]
}

func (s *userStore) Create(ctx context.Context, u *models.User) error {
	if err := models.Prepare(u, time.Now()); err != nil { // Defaults, then validation
		return err
	}
	return s.t.create(ctx, u) // Duplicate email comes back as store.ErrDuplicate
}

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	return s.t.list(ctx, withoutPassword)
}

// FindByEmail is the only read that loads the password hash.
func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.t.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *userStore) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	u, err := s.t.find(ctx, id, withoutPassword) // Loaded without the hash, so it is never rewritten
	if err != nil {
		return nil, err
	}
	patch.Apply(u)
	if err := s.t.update(ctx, u, models.Columns(patch)); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userStore) Delete(ctx context.Context, id string) error {
	return s.t.delete(ctx, id)
}
