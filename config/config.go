// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"errors"  // Config validation errors
	"fmt"     // Error formatting
	"strings" // Driver name normalisation
	"time"    // Timeouts

	"github.com/joho/godotenv" // Loads .env files into the environment
	"github.com/spf13/viper"   // Environment lookup with defaults
)

// Supported values for DB_DRIVER
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct { // Config struct holds all configuration values
	Port            string        // HTTP listen port
	GinMode         string        // gin.DebugMode / gin.ReleaseMode / gin.TestMode
	DBDriver        string        // One of the Driver* constants
	DatabaseURL     string        // DSN, file path or mongodb:// URI depending on the driver
	MongoDatabase   string        // Database name used by the mongo driver
	ConnectTimeout  time.Duration // Upper bound for the initial store handshake
	ShutdownTimeout time.Duration // Upper bound for graceful HTTP shutdown
	BcryptCost      int           // Work factor for password hashing
	LogLevel        string        // debug, info, warn, error
	LogFormat       string        // json or console
	CreateAdmin     bool          // Seed an admin user at startup
	AdminName       string        // Seeded admin display name
	AdminEmail      string        // Seeded admin email
	AdminPassword   string        // Seeded admin plaintext password (hashed before storing)
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	v := viper.New() // Private instance, tests can call Load repeatedly
	v.AutomaticEnv() // Every key below is looked up in the environment
	setDefaults(v)   // Fallback values

	cfg := &Config{
		Port:            v.GetString("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		DBDriver:        strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		MongoDatabase:   v.GetString("MONGO_DATABASE"),
		ConnectTimeout:  v.GetDuration("DB_CONNECT_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		BcryptCost:      v.GetInt("BCRYPT_COST"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		CreateAdmin:     v.GetBool("CREATE_ADMIN"),
		AdminName:       v.GetString("ADMIN_NAME"),
		AdminEmail:      v.GetString("ADMIN_EMAIL"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
	}

	if cfg.DBDriver == DriverSQLite && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "storefront.db" // Local file, same as the default dev setup
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MONGO_DATABASE", "storefront")
	v.SetDefault("DB_CONNECT_TIMEOUT", 10*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CREATE_ADMIN", false)
	v.SetDefault("ADMIN_NAME", "Administrator")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
}

// Validate reports configuration that cannot produce a working process.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unsupported GIN_MODE %q", c.GinMode) // gin.SetMode panics on these
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required for driver %q", c.DBDriver)
	}
	if c.CreateAdmin && (c.AdminEmail == "" || c.AdminPassword == "") {
		return errors.New("config: CREATE_ADMIN requires ADMIN_EMAIL and ADMIN_PASSWORD")
	}
	return nil
}
