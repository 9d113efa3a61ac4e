package main

import (
	"context"   // Lifecycle and shutdown contexts
	"errors"    // Server closed detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Graceful shutdown
	"syscall"   // SIGTERM

	"maets/internal/api"     // HTTP handlers and router
	"maets/internal/config"  // Custom package for configuration
	"maets/internal/db"      // Store connections
	"maets/internal/service" // Business services
	"maets/internal/store"   // Repositories
	"maets/internal/utils"   // Logger setup

	"github.com/gin-gonic/gin"                                  // Gin web framework
	"github.com/prometheus/client_golang/prometheus"            // Metrics registry
	"github.com/prometheus/client_golang/prometheus/collectors" // Runtime collectors
	"github.com/sirupsen/logrus"                                // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	// Setup logger
	if err := utils.ConfigureLogger(cfg.IsProd, cfg.LogLevel); err != nil {
		logrus.Fatalf("failed to configure logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// run opens every store, serves HTTP until ctx is cancelled and closes the stores on the way out
func run(ctx context.Context, cfg *config.Config) error {
	// Relational database
	gdb, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logrus.WithError(err).Warn("failed to close database")
		}
	}()

	// Config documents live in MongoDB when configured, in the relational database otherwise
	var configs store.ConfigStore = store.NewSQLConfigStore(gdb)
	if cfg.MongoURI != "" {
		client, err := db.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logrus.WithError(err).Warn("failed to disconnect from MongoDB")
			}
		}()
		mongoConfigs := store.NewMongoConfigStore(client.Database(cfg.MongoDatabase))
		if err := mongoConfigs.EnsureIndexes(ctx); err != nil {
			return err
		}
		configs = mongoConfigs
	}

	// Redis cache, nil when disabled
	rdb, err := db.OpenRedis(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	users := store.NewUserStore(gdb)
	roles := store.NewRoleStore(gdb)
	games := store.NewGameStore(gdb)
	owned := store.NewOwnershipStore(gdb)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := api.NewRouter(api.Services{
		Auth:    service.NewAuthService(users, roles, cfg.JWTSecret, cfg.JWTTTL),
		Authz:   service.NewAuthorizer(roles),
		Catalog: service.NewCatalogService(games, rdb, cfg.CacheTTL),
		Library: service.NewLibraryService(users, games, owned),
		Configs: service.NewConfigService(configs, users, games),
		Users:   service.NewUserService(users, roles),
	}, api.RouterOptions{
		Registry:       reg,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: []string{"127.0.0.1"},
	})
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr": cfg.Addr(),       // Listen address
			"tls":  cfg.TLSEnabled(), // HTTPS enabled
		}).Info("Server running")
		if cfg.TLSEnabled() {
			serveErr <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logrus.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
