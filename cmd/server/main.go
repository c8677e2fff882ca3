package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/campus-project/campus-server/internal/api"
	"github.com/campus-project/campus-server/internal/api/handlers"
	"github.com/campus-project/campus-server/internal/auth"
	"github.com/campus-project/campus-server/internal/cache"
	"github.com/campus-project/campus-server/internal/config"
	"github.com/campus-project/campus-server/internal/database"
	"github.com/campus-project/campus-server/internal/database/queries"
	"github.com/redis/go-redis/v9"
)

func main() {
	var migrateOnly bool
	flag.BoolVar(&migrateOnly, "migrate", false, "Run database migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrationsPath := filepath.Join("internal", "database", "migrations")
	if err := db.Migrate(migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if migrateOnly {
		log.Println("Database migrations completed")
		return
	}

	// Optional role cache; without REDIS_ADDR lookups go straight to the store.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	userQueries := queries.NewUserQueries(db.DB)
	lugarQueries := queries.NewLugarQueries(db.DB)
	categoriaQueries := queries.NewCategoriaQueries(db.DB)
	edificioQueries := queries.NewEdificioQueries(db.DB)
	bloqueQueries := queries.NewBloqueQueries(db.DB)
	evaluacionQueries := queries.NewEvaluacionQueries(db.DB)
	wifiQueries := queries.NewWifiQueries(db.DB)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	roleCache := cache.NewRoleCache(userQueries, redisClient, cfg.RoleCacheTTL)

	router := api.NewRouter(api.RouterDeps{
		Tokens:     tokens,
		Roles:      roleCache,
		Auth:       handlers.NewAuthHandler(userQueries, tokens),
		Users:      handlers.NewUserHandler(userQueries, roleCache),
		Lugares:    handlers.NewLugarHandler(lugarQueries),
		Categorias: handlers.NewCategoriaHandler(categoriaQueries),
		Edificios:  handlers.NewEdificioHandler(edificioQueries),
		Bloques:    handlers.NewBloqueHandler(bloqueQueries),
		Evaluacion: handlers.NewEvaluacionHandler(evaluacionQueries),
		Wifi:       handlers.NewWifiHandler(wifiQueries),
		BasePath:   cfg.BasePath,
		StaticDir:  cfg.StaticDir,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Campus server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
