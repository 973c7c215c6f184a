// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"context" // Handshake timeout
	"errors"  // Sentinel checks
	"fmt"     // Error wrapping
	"time"    // Pool lifetimes

	"go.uber.org/zap"                // Structured logging
	"gorm.io/driver/mysql"           // MySQL driver for GORM
	"gorm.io/driver/postgres"        // Postgres driver for GORM
	"gorm.io/driver/sqlite"          // SQLite driver for GORM
	"gorm.io/gorm"                   // GORM ORM
	gormlogger "gorm.io/gorm/logger" // GORM query logging

	"storefront-backend/config"           // Project config
	"storefront-backend/models"           // Entities
	"storefront-backend/security"         // Password hashing
	"storefront-backend/store"            // Store contract
	"storefront-backend/store/gormstore"  // SQL backend
	"storefront-backend/store/mongostore" // Mongo backend
)

// Open connects to the store selected by cfg.DBDriver. The whole handshake,
// including migrations, is bounded by cfg.ConnectTimeout.
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if cfg.DBDriver == config.DriverMongo {
		return mongostore.Open(ctx, cfg.DatabaseURL, cfg.MongoDatabase)
	}

	dialector, err := Dialector(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Warn),
		DisableAutomaticPing: true, // gormstore pings with ctx instead
		TranslateError:       true, // Unique violations become gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	if err := configurePool(db, cfg.DBDriver); err != nil {
		return nil, err
	}

	s, err := gormstore.New(ctx, db)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return s, nil
}

// Dialector maps a driver name and connection string onto a GORM dialector.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported relational driver %q", driver)
}

func configurePool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1) // One writer at a time avoids "database is locked"
		return nil
	}
	sqlDB.SetMaxOpenConns(25)                 // Maximum open connections
	sqlDB.SetMaxIdleConns(5)                  // Maximum idle connections
	sqlDB.SetConnMaxLifetime(5 * time.Minute) // Connection lifetime
	return nil
}

// SeedAdmin creates the configured admin user if it does not exist yet.
// It does nothing unless cfg.CreateAdmin is set.
func SeedAdmin(ctx context.Context, s store.Store, hasher security.Hasher, cfg *config.Config, log *zap.Logger) error {
	// Only create admin if explicitly configured
	if !cfg.CreateAdmin {
		return nil
	}

	// Check if the admin user exists
	_, err := s.Users().FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := s.Users().Create(ctx, &admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info("seeded admin user", zap.String("email", admin.Email), zap.String("id", admin.ID))
	return nil
}
