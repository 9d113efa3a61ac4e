package api

import (
	"net/http" // HTTP status codes

	"maets/internal/middleware" // Auth, admin, logging and metrics middleware
	"maets/internal/service"    // Business services

	"github.com/gin-contrib/cors"                             // CORS middleware
	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus"          // Metrics registry
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics exposition
)

// Services groups everything the HTTP layer calls into
type Services struct {
	Auth    *service.AuthService
	Authz   *service.Authorizer
	Catalog *service.CatalogService
	Library *service.LibraryService
	Configs *service.ConfigService
	Users   *service.UserService
}

// RouterOptions carries the transport settings of the router
type RouterOptions struct {
	Registry       *prometheus.Registry // Metrics registry served on /metrics
	CORSOrigins    []string             // Allowed origins, empty allows all
	TrustedProxies []string             // Proxies allowed to set client IP headers
}

// NewRouter builds the gin engine with every route of the service
func NewRouter(svc Services, opts RouterOptions) (*gin.Engine, error) {
	r := gin.New() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}

	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(opts.Registry)

	corsCfg := cors.DefaultConfig()
	if len(opts.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.CORSOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	corsCfg.AddAllowHeaders("Authorization")
	corsCfg.AddExposeHeaders(middleware.RequestIDHeader)

	r.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware(), cors.New(corsCfg))

	requireAuth := middleware.JWTAuthMiddleware(svc.Auth)     // Valid bearer token
	requireAdmin := middleware.AdminOnlyMiddleware(svc.Authz) // Admin role, checked on every request

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "msg": "Welcome to Maets !"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/register", RegisterHandler(svc.Auth)) // Registration endpoint
	authGroup.POST("/login", LoginHandler(svc.Auth))       // Login endpoint

	// Catalog routes, reads are public
	gamesGroup := r.Group("/games")
	gamesGroup.GET("", ListGamesHandler(svc.Catalog))
	gamesGroup.GET("/:id", GetGameHandler(svc.Catalog))
	gamesGroup.POST("", requireAuth, requireAdmin, CreateGameHandler(svc.Catalog))
	gamesGroup.PATCH("/:id", requireAuth, requireAdmin, RenameGameHandler(svc.Catalog))
	gamesGroup.DELETE("/:id", requireAuth, requireAdmin, DeleteGameHandler(svc.Catalog))

	// Library routes (protected by JWT)
	libraryGroup := r.Group("/library")
	libraryGroup.Use(requireAuth)
	libraryGroup.GET("", ListLibraryHandler(svc.Library))
	libraryGroup.POST("/add/user/:userId/game/:gameId", requireAdmin, AddToLibraryHandler(svc.Library))
	libraryGroup.DELETE("/:id", RemoveFromLibraryHandler(svc.Library))
	libraryGroup.GET("/:id/config", GetConfigHandler(svc.Configs))
	libraryGroup.POST("/:id/config", CreateConfigHandler(svc.Configs))
	libraryGroup.PATCH("/:id/config", UpdateConfigHandler(svc.Configs))
	libraryGroup.DELETE("/:id/config", DeleteConfigHandler(svc.Configs))

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(requireAuth, requireAdmin)
	adminGroup.GET("/users", ListUsersHandler(svc.Users))
	adminGroup.DELETE("/users/:id", DeleteUserHandler(svc.Users))

	return r, nil
}
