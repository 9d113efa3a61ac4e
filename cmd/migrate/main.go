package main

import (
	"context" // Context for the admin bootstrap
	"os"      // Exit codes

	"maets/internal/config"  // Custom import path (Config)
	"maets/internal/db"      // Custom import path (Database)
	"maets/internal/domain"  // Role names
	"maets/internal/service" // Account creation
	"maets/internal/store"   // Repositories
	"maets/internal/utils"   // Logger setup

	"github.com/samber/oops"     // Coded errors
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"github.com/spf13/cobra"     // CLI
)

// Main entry point for migration
func main() {
	if err := newMigrateCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newMigrateCmd creates the migrate command
func newMigrateCmd() *cobra.Command {
	var adminEmail, adminPassword string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and seed the roles",
		Long: `Create or update the relational schema, seed the user and admin roles,
create the MongoDB index when MONGODB_URI is set and optionally create an admin account
or promote an existing one.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig() // Load configuration
			if err != nil {
				return oops.Code("CONFIG_INVALID").Wrap(err)
			}
			if err := utils.ConfigureLogger(cfg.IsProd, cfg.LogLevel); err != nil {
				return oops.Code("CONFIG_INVALID").Wrap(err)
			}
			return runMigrate(cmd.Context(), cfg, adminEmail, adminPassword)
		},
	}
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "create or promote an admin account with this email")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "password of the bootstrapped admin account")
	cmd.MarkFlagsRequiredTogether("admin-email", "admin-password")
	return cmd
}

func runMigrate(ctx context.Context, cfg *config.Config, adminEmail, adminPassword string) error {
	gdb, err := db.Open(cfg)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer db.Close(gdb)

	logrus.Info("Running migrations")
	if err := db.Migrate(gdb); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}
	if err := db.SeedRoles(gdb); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "seed roles").Wrap(err)
	}

	if cfg.MongoURI != "" {
		client, err := db.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to mongo").Wrap(err)
		}
		defer client.Disconnect(context.Background())
		configs := store.NewMongoConfigStore(client.Database(cfg.MongoDatabase))
		if err := configs.EnsureIndexes(ctx); err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "create config index").Wrap(err)
		}
	}

	if adminEmail != "" {
		users, roleStore := store.NewUserStore(gdb), store.NewRoleStore(gdb)
		auth := service.NewAuthService(users, roleStore, cfg.JWTSecret, cfg.JWTTTL)
		roles := []string{string(domain.RoleUser), string(domain.RoleAdmin)}
		account, err := auth.Register(ctx, adminEmail, adminPassword, roles)
		if service.IsCode(err, service.CodeConflict) {
			// Existing account: promote it, the password is left unchanged
			account, err = service.NewUserService(users, roleStore).GrantAdmin(ctx, adminEmail)
		}
		if err != nil {
			return oops.With("operation", "create admin").Wrap(err)
		}
		logrus.WithFields(logrus.Fields{
			"user_id": account.ID,    // Admin account
			"email":   account.Email, // Admin email
		}).Info("Admin account ready")
	}

	logrus.Info("Migrations completed successfully")
	return nil
}
