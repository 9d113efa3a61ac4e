package db

import (
	"context" // Context for connection checks
	"fmt"     // Error wrapping
	"strings" // DSN building
	"time"    // Pool and timeout settings

	"maets/internal/config" // Custom package for configuration

	"github.com/redis/go-redis/v9"                  // Redis client
	"github.com/sirupsen/logrus"                    // Logrus for structured logging
	"go.mongodb.org/mongo-driver/v2/mongo"          // MongoDB client
	"go.mongodb.org/mongo-driver/v2/mongo/options"  // MongoDB client options
	"go.mongodb.org/mongo-driver/v2/mongo/readpref" // MongoDB read preferences for ping
	"gorm.io/driver/mysql"                          // MySQL driver for GORM
	"gorm.io/driver/sqlite"                         // SQLite driver for GORM
	"gorm.io/gorm"                                  // GORM ORM library
	"gorm.io/gorm/logger"                           // GORM logger
)

// Open connects to the relational database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		gdb, err = OpenSQLite(sqliteDSN(cfg.SQLitePath)) // FK cascades need the pragma
	default:
		gdb, err = OpenMySQL(cfg.MySQLDSN())
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	// Connection Pool Settings
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return gdb, nil
}

// sqliteDSN turns on foreign keys, keeping any query string already in path
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// OpenMySQL opens a MySQL database from a DSN
func OpenMySQL(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), gormConfig())
}

// OpenSQLite opens a SQLite database from a DSN
func OpenSQLite(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), gormConfig())
}

// gormConfig routes GORM logs through logrus and turns driver errors into gorm sentinels
func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true, // Duplicate keys become gorm.ErrDuplicatedKey
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Warn on slow queries
			LogLevel:                  logger.Warn,            // Only warnings and errors
			IgnoreRecordNotFoundError: true,                   // Not found is a normal outcome
		}),
	}
}

// Close releases the relational connection pool
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenMongo connects to MongoDB and checks the connection
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// OpenRedis connects to Redis. An empty address returns a nil client, which disables caching.
func OpenRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	// Setup Redis client
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	// Test Redis connection
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
