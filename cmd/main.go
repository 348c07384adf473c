package main

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamestore/cache"
	"gamestore/config"
	"gamestore/db"
	"gamestore/handlers"
	"gamestore/middleware"
	"gamestore/monitoring"
	"gamestore/repository"
	"gamestore/services"
	"gamestore/utils"
)

func main() {
	cfg := config.Load()

	utils.InitLogger()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		utils.Log.Fatal(err)
	}
	utils.Log.Info("Database connected and migrated")

	if err := cache.InitRedis(cfg.RedisAddr, cfg.RedisPass); err != nil {
		utils.Log.Warn("Redis unavailable, running without cache: ", err)
	}
	defer cache.CloseRedis()

	monitoring.InitMetrics()

	userRepo := repository.NewAppUserRepository(database)
	gameRepo := repository.NewGameRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	tokens := utils.NewTokenManager(cfg.JWTSecret)

	cartHandler := handlers.NewCartHandler(services.NewCartService(userRepo, gameRepo))
	catalog := services.NewCatalogService(gameRepo, categoryRepo)
	gameHandler := handlers.NewGameHandler(catalog)
	categoryHandler := handlers.NewCategoryHandler(catalog)
	userHandler := handlers.NewUserHandler(userRepo, catalog)
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo, tokens))
	statsHandler := handlers.NewStatsHandler(services.NewStatsService(statsRepo))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())
	r.Use(middleware.RateLimit(1000, time.Hour))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	r.POST("/authenticate", authHandler.Authenticate)
	r.POST("/register", authHandler.Register)
	r.GET("/games", gameHandler.FindGames)
	r.GET("/games/:id", gameHandler.FindGameByID)
	r.GET("/categories", categoryHandler.FindCategories)
	r.GET("/categories/:id", categoryHandler.FindCategoryByID)
	r.GET("/users", userHandler.FindUsers)
	r.GET("/users/:userId", userHandler.FindUserByID)
	r.GET("/users/:userId/library", userHandler.FindLibrary)

	protected := r.Group("/", middleware.Auth(tokens))
	{
		protected.GET("/users/:userId/cart", cartHandler.ViewCart)
		protected.POST("/users/:userId/cart", cartHandler.AddGameToCart)
		protected.DELETE("/users/:userId/cart", cartHandler.RemoveGameFromCart)
		protected.POST("/users/:userId/cart/buy", cartHandler.Checkout)
	}

	admin := r.Group("/", middleware.Auth(tokens), middleware.RequireAdmin())
	{
		admin.POST("/games", gameHandler.AddGame)
		admin.PATCH("/games/:id", gameHandler.PatchGame)
		admin.DELETE("/games/:id", gameHandler.RemoveGame)
		admin.POST("/categories", categoryHandler.AddCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.RemoveCategory)
		admin.GET("/stats", statsHandler.Dashboard)
	}

	if cfg.UseHTTPS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		utils.Log.Info("Starting server with HTTPS on port ", cfg.Port)

		tlsConfig := &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
		}

		server := &http.Server{
			Addr:      ":" + cfg.Port,
			Handler:   r,
			TLSConfig: tlsConfig,
		}

		if err := server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile); err != nil {
			utils.Log.Fatal("Failed to start HTTPS server: ", err)
		}
	} else {
		utils.Log.Info("Starting server with HTTP on port ", cfg.Port)
		utils.Log.Warn("Running without HTTPS. Set USE_HTTPS=true for production")

		if err := r.Run(":" + cfg.Port); err != nil {
			utils.Log.Fatal("Failed to start server: ", err)
		}
	}
}
