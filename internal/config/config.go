package config

import (
	"fmt"     // For error wrapping and DSN formatting
	"strings" // For driver name normalization
	"time"    // For durations

	"github.com/caarlos0/env/v11" // For parsing environment variables into the struct
	"github.com/joho/godotenv"    // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string        `env:"APP_PORT" envDefault:"3000"`          // Application port
	DBDriver        string        `env:"DB_DRIVER" envDefault:"mysql"`        // Relational driver: mysql or sqlite
	DBUser          string        `env:"DB_USER"`                             // Database user
	DBPassword      string        `env:"DB_PASSWORD"`                         // Database password
	DBHost          string        `env:"DB_HOST" envDefault:"127.0.0.1"`      // Database host
	DBPort          string        `env:"DB_PORT" envDefault:"3306"`           // Database port
	DBName          string        `env:"DB_NAME" envDefault:"maets"`          // Database name
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"maets.db"`   // SQLite file when DB_DRIVER=sqlite
	JWTSecret       string        `env:"JWT_SECRET,required,notEmpty"`        // JWT signing secret
	JWTTTL          time.Duration `env:"JWT_TTL" envDefault:"24h"`            // Token lifetime
	MongoURI        string        `env:"MONGODB_URI"`                         // Document store URI, empty keeps configs in SQL
	MongoDatabase   string        `env:"MONGODB_DATABASE" envDefault:"maets"` // Document store database name
	RedisAddr       string        `env:"REDIS_ADDR"`                          // Redis server address, empty disables the cache
	RedisPass       string        `env:"REDIS_PASS"`                          // Redis password
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`             // Redis database number
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"60s"`          // Catalog cache lifetime
	TLSCertFile     string        `env:"TLS_CERT_FILE"`                       // TLS certificate path
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`                        // TLS key path
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`       // Allowed origins, empty allows all
	IsProd          bool          `env:"IS_PROD" envDefault:"false"`          // Is production environment
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`         // Logrus level
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`   // Graceful shutdown budget
}

// LoadConfig loads configuration from the environment, reading .env first if present
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver)) // Normalize driver name
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return &cfg, nil
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// TLSEnabled reports whether both certificate and key are configured
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.AppPort
}
