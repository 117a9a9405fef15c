package app

import (
	"challengeboard/internal/auth"
	"challengeboard/internal/cache"
	"challengeboard/internal/config"
	"challengeboard/internal/handlers"
	"challengeboard/internal/repo"
	"challengeboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc, cfg.Session.TTL.Duration())
	registerAuthRoutes(api, authHandler)

	challengeRepo := repo.NewPGChallengeRepo(db)
	completionRepo := repo.NewPGCompletionRepo(db)
	boardCache := cache.NewLeaderboardCache(rdb, cfg.Redis.DefaultTTL.Duration())

	catalogSvc := service.NewCatalogService(challengeRepo)
	ledgerSvc := service.NewLedgerService(challengeRepo, completionRepo, userRepo, boardCache)
	boardSvc := service.NewLeaderboardService(userRepo, completionRepo, boardCache)

	boardHandler := handlers.NewLeaderboardHandler(boardSvc)
	api.GET("/leaderboard", boardHandler.Full)
	api.GET("/leaderboard/top", boardHandler.Top)

	protected := api.Group("", auth.RequireSession(sessionStore))
	challengeHandler := handlers.NewChallengeHandler(catalogSvc, ledgerSvc, boardSvc)
	protected.GET("/me", authHandler.Me)
	protected.GET("/challenges", challengeHandler.List)
	protected.POST("/challenges/:id/complete", challengeHandler.Complete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Challenge Board API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}
