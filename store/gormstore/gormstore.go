// gormstore.go - Relational store backed by GORM (sqlite, mysql, postgres)

package gormstore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"errors"  // Sentinel checks
	"fmt"     // Error wrapping

	"gorm.io/gorm" // GORM ORM

	"storefront-backend/models" // Entities
	"storefront-backend/store"  // Store contract
)

// Store implements store.Store on top of a *gorm.DB.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New pings db, migrates the schema and returns the store. ctx bounds the handshake.
// db should be opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
func New(ctx context.Context, db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Create tables and unique indexes if needed
	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Users() store.UserStore          { return &userStore{table[models.User]{s.db}} }
func (s *Store) Products() store.ProductStore    { return &productStore{table[models.Product]{s.db}} }
func (s *Store) Categories() store.CategoryStore { return &categoryStore{table[models.Category]{s.db}} }
func (s *Store) Orders() store.OrderStore        { return &orderStore{table[models.Order]{s.db}} }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// table holds the CRUD calls every entity shares.
type table[T any] struct {
	db *gorm.DB
}

type scope = func(*gorm.DB) *gorm.DB

func (t table[T]) create(ctx context.Context, rec *T) error {
	return translate(t.db.WithContext(ctx).Create(rec).Error)
}

func (t table[T]) list(ctx context.Context, scopes ...scope) ([]T, error) {
	out := []T{}
	if err := t.db.WithContext(ctx).Scopes(scopes...).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (t table[T]) find(ctx context.Context, id string, scopes ...scope) (*T, error) {
	var rec T
	if err := t.db.WithContext(ctx).Scopes(scopes...).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// update writes only columns of rec. Zero values are written too.
func (t table[T]) update(ctx context.Context, rec *T, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	return translate(t.db.WithContext(ctx).Model(rec).Select(columns).Updates(rec).Error)
}

// delete does not report whether a row existed.
func (t table[T]) delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}

// translate maps gorm's miss and unique violations onto the store sentinels.
// Anything else is passed through untouched.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	return err
}

// List orderings
func byCreation(db *gorm.DB) *gorm.DB  { return db.Order("created_at") }
func byName(db *gorm.DB) *gorm.DB      { return db.Order("name") }
func byOrderDate(db *gorm.DB) *gorm.DB { return db.Order("order_date") }
